package tables

type WindStrength string

const (
	WindCalm     WindStrength = "calm"
	WindLight    WindStrength = "light"
	WindModerate WindStrength = "moderate"
	WindFresh    WindStrength = "fresh"
	WindStrong   WindStrength = "strong"
	WindGale     WindStrength = "gale"
)

type WindDirection string

const (
	DirNorth     WindDirection = "north"
	DirNorthEast WindDirection = "north_east"
	DirEast      WindDirection = "east"
	DirSouthEast WindDirection = "south_east"
	DirSouth     WindDirection = "south"
	DirSouthWest WindDirection = "south_west"
	DirWest      WindDirection = "west"
	DirNorthWest WindDirection = "north_west"
)

func WindStrengths() []WindStrength {
	return []WindStrength{WindCalm, WindLight, WindModerate, WindFresh, WindStrong, WindGale}
}

func WindDirections() []WindDirection {
	return []WindDirection{
		DirNorth, DirNorthEast, DirEast, DirSouthEast,
		DirSouth, DirSouthWest, DirWest, DirNorthWest,
	}
}

// WindEffect is the travel impact of one strength/direction pairing.
// SpeedPct is the travel speed as a percentage of the calm baseline.
type WindEffect struct {
	SpeedPct        int
	HandlingPenalty int
	RequiresTacking bool
}

type windKey struct {
	Strength  WindStrength
	Direction WindDirection
}

// WindEffects looks up the modifier row for a strength/direction pair.
func (s *Set) WindEffects(strength WindStrength, direction WindDirection) (WindEffect, error) {
	effect, ok := s.wind[windKey{strength, direction}]
	if !ok {
		return WindEffect{}, &ConfigurationError{
			Table: "wind modifier",
			Key:   string(strength) + "/" + string(direction),
		}
	}
	return effect, nil
}

// The river runs north to south and travellers head downstream, so winds out
// of the northern quarter push the boat along while southern winds fight it.
func directionClass(direction WindDirection) int {
	switch direction {
	case DirNorth, DirNorthEast, DirNorthWest:
		return 1 // tailwind
	case DirSouth, DirSouthEast, DirSouthWest:
		return -1 // headwind
	default:
		return 0 // crosswind
	}
}

func defaultWindEffects() map[windKey]WindEffect {
	type strengthProfile struct {
		SpeedSwing      int
		HandlingPenalty int
		TackOnHeadwind  bool
	}

	profiles := map[WindStrength]strengthProfile{
		WindCalm:     {SpeedSwing: 0, HandlingPenalty: 0},
		WindLight:    {SpeedSwing: 5, HandlingPenalty: 0},
		WindModerate: {SpeedSwing: 10, HandlingPenalty: 1},
		WindFresh:    {SpeedSwing: 15, HandlingPenalty: 2},
		WindStrong:   {SpeedSwing: 25, HandlingPenalty: 3, TackOnHeadwind: true},
		WindGale:     {SpeedSwing: 35, HandlingPenalty: 5, TackOnHeadwind: true},
	}

	out := make(map[windKey]WindEffect, len(profiles)*len(WindDirections()))
	for strength, profile := range profiles {
		for _, direction := range WindDirections() {
			class := directionClass(direction)
			effect := WindEffect{SpeedPct: 100 + class*profile.SpeedSwing}
			if class != 1 {
				effect.HandlingPenalty = profile.HandlingPenalty
			}
			if class == -1 && profile.TackOnHeadwind {
				effect.RequiresTacking = true
			}
			out[windKey{strength, direction}] = effect
		}
	}
	return out
}
