package journey

import (
	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

// WeatherTypeResult is one d100 roll resolved against the season's table.
type WeatherTypeResult struct {
	Roll int
	Key  tables.WeatherKey
}

// RollWeatherType rolls the day's weather type for the season. Unknown
// seasons surface the table lookup's ConfigurationError unchanged.
func RollWeatherType(set *tables.Set, rng RollSource, season tables.Season) (WeatherTypeResult, error) {
	roll := rng.Roll(100)
	key, err := set.WeatherType(season, roll)
	if err != nil {
		return WeatherTypeResult{}, err
	}
	return WeatherTypeResult{Roll: roll, Key: key}, nil
}
