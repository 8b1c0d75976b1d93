package journey

import (
	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

// windShiftChanceIn is the per-period chance of the wind shifting: a 1 on a
// d10, i.e. 10%.
const windShiftChanceIn = 10

// GenerateWind produces the day's four-period wind timeline. Each period has
// a 10% chance of rolling a fresh strength/direction pair; otherwise it
// carries the previous period forward unchanged. The dawn period carries from
// the previous day's midnight reading, passed as prev (nil on day one).
func GenerateWind(set *tables.Set, rng RollSource, prev *WindReading) ([]WindReading, error) {
	out := make([]WindReading, 0, len(WindPeriods()))

	var carried *WindReading
	if prev != nil {
		p := *prev
		carried = &p
	}

	for _, period := range WindPeriods() {
		var reading WindReading
		switch {
		case carried == nil:
			reading = rollWind(rng)
			reading.Changed = false
		case rng.Roll(windShiftChanceIn) == 1:
			reading = rollWind(rng)
			reading.Changed = reading.Strength != carried.Strength || reading.Direction != carried.Direction
		default:
			reading = WindReading{Strength: carried.Strength, Direction: carried.Direction}
		}
		reading.Period = period

		effect, err := set.WindEffects(reading.Strength, reading.Direction)
		if err != nil {
			return nil, err
		}
		reading.SpeedPct = effect.SpeedPct
		reading.HandlingPenalty = effect.HandlingPenalty
		reading.RequiresTacking = effect.RequiresTacking

		out = append(out, reading)
		carried = &out[len(out)-1]
	}

	return out, nil
}

func rollWind(rng RollSource) WindReading {
	strengths := tables.WindStrengths()
	directions := tables.WindDirections()
	return WindReading{
		Strength:  strengths[rng.Roll(len(strengths))-1],
		Direction: directions[rng.Roll(len(directions))-1],
	}
}
