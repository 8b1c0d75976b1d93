package tables

import "fmt"

// Region identifies one stretch of the traveller's world. Base temperatures
// and descriptions key off it together with the season.
type Region string

const (
	RegionLowlands   Region = "lowlands"
	RegionRiverDelta Region = "river_delta"
	RegionHighlands  Region = "highlands"
	RegionDeepForest Region = "deep_forest"
	RegionCoast      Region = "coast"
	RegionSteppe     Region = "steppe"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

func Regions() []Region {
	return []Region{
		RegionLowlands,
		RegionRiverDelta,
		RegionHighlands,
		RegionDeepForest,
		RegionCoast,
		RegionSteppe,
	}
}

func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// ConfigurationError reports a lookup against a key the tables do not carry.
// It is fatal to the single call and never mutates state.
type ConfigurationError struct {
	Table string
	Key   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tables: no %s entry for %q", e.Table, e.Key)
}

// Set holds every static lookup the generators consume. All tables are
// validated for total coverage at construction, so lookups only fail on
// unknown enum values, never on gaps.
type Set struct {
	baseTemps  map[Region]map[Season]int
	weather    map[Season][]weatherRange
	wind       map[windKey]WindEffect
	variations []VariationBucket
}

// Default returns the standard rulebook tables. Construction cannot fail for
// the built-in data; the error path exists for alternates loaded elsewhere.
func Default() *Set {
	set, err := NewSet(defaultBaseTemps(), defaultWeatherRanges(), defaultWindEffects(), defaultVariations())
	if err != nil {
		panic(err)
	}
	return set
}

func NewSet(
	baseTemps map[Region]map[Season]int,
	weather map[Season][]weatherRange,
	wind map[windKey]WindEffect,
	variations []VariationBucket,
) (*Set, error) {
	for _, region := range Regions() {
		seasons, ok := baseTemps[region]
		if !ok {
			return nil, fmt.Errorf("base temperature table missing region %q", region)
		}
		for _, season := range Seasons() {
			if _, ok := seasons[season]; !ok {
				return nil, fmt.Errorf("base temperature table missing %q/%q", region, season)
			}
		}
	}

	for _, season := range Seasons() {
		ranges, ok := weather[season]
		if !ok {
			return nil, fmt.Errorf("weather table missing season %q", season)
		}
		if err := checkRollCoverage(season, ranges); err != nil {
			return nil, err
		}
	}

	for _, strength := range WindStrengths() {
		for _, direction := range WindDirections() {
			if _, ok := wind[windKey{strength, direction}]; !ok {
				return nil, fmt.Errorf("wind table missing %q/%q", strength, direction)
			}
		}
	}

	next := 1
	for _, bucket := range variations {
		if bucket.Low != next {
			return nil, fmt.Errorf("variation table gap at roll %d", next)
		}
		if bucket.High < bucket.Low {
			return nil, fmt.Errorf("variation bucket %q inverted", bucket.Label)
		}
		next = bucket.High + 1
	}
	if next != 101 {
		return nil, fmt.Errorf("variation table ends at roll %d, want 100", next-1)
	}

	return &Set{
		baseTemps:  baseTemps,
		weather:    weather,
		wind:       wind,
		variations: variations,
	}, nil
}

func checkRollCoverage(season Season, ranges []weatherRange) error {
	next := 1
	for _, r := range ranges {
		if r.Low != next {
			return fmt.Errorf("weather table for %q has a gap at roll %d", season, next)
		}
		if r.High < r.Low {
			return fmt.Errorf("weather table for %q has inverted range for %q", season, r.Key)
		}
		next = r.High + 1
	}
	if next != 101 {
		return fmt.Errorf("weather table for %q ends at roll %d, want 100", season, next-1)
	}
	return nil
}

// BaseTemperature returns the seasonal baseline in Celsius before any daily
// variation or event modifier.
func (s *Set) BaseTemperature(region Region, season Season) (int, error) {
	seasons, ok := s.baseTemps[region]
	if !ok {
		return 0, &ConfigurationError{Table: "base temperature", Key: string(region)}
	}
	temp, ok := seasons[season]
	if !ok {
		return 0, &ConfigurationError{Table: "base temperature", Key: string(season)}
	}
	return temp, nil
}

func defaultBaseTemps() map[Region]map[Season]int {
	return map[Region]map[Season]int{
		RegionLowlands:   {SeasonSpring: 8, SeasonSummer: 22, SeasonAutumn: 10, SeasonWinter: -2},
		RegionRiverDelta: {SeasonSpring: 10, SeasonSummer: 24, SeasonAutumn: 12, SeasonWinter: 1},
		RegionHighlands:  {SeasonSpring: 2, SeasonSummer: 14, SeasonAutumn: 4, SeasonWinter: -12},
		RegionDeepForest: {SeasonSpring: 6, SeasonSummer: 19, SeasonAutumn: 8, SeasonWinter: -5},
		RegionCoast:      {SeasonSpring: 9, SeasonSummer: 18, SeasonAutumn: 11, SeasonWinter: 3},
		RegionSteppe:     {SeasonSpring: 7, SeasonSummer: 26, SeasonAutumn: 6, SeasonWinter: -9},
	}
}
