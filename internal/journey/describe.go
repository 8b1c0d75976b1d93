package journey

import (
	"fmt"
	"strings"

	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

// Describe composes the one-line human summary stored on the day record.
func Describe(weather tables.WeatherKey, temp TemperatureResult, wind []WindReading) string {
	parts := []string{
		fmt.Sprintf("%s, %s (%d°C, %s)",
			tables.WeatherLabel(weather),
			strings.ToLower(tables.CategoryLabel(temp.Category)),
			temp.TemperatureC,
			temp.Variation.Label,
		),
	}

	if last, ok := lastReading(wind); ok {
		windPart := fmt.Sprintf("%s wind out of the %s", last.Strength, directionLabel(last.Direction))
		if last.RequiresTacking {
			windPart += ", tacking required"
		}
		parts = append(parts, windPart)
	}

	if temp.ColdFront.Active {
		parts = append(parts, eventPhrase("Cold front", temp.ColdFront))
	}
	if temp.HeatWave.Active {
		parts = append(parts, eventPhrase("Heat wave", temp.HeatWave))
	}

	return strings.Join(parts, ". ")
}

func eventPhrase(name string, status EventStatus) string {
	phrase := fmt.Sprintf("%s, day %d of %d", name, status.DaysElapsed, status.Total)
	switch {
	case status.Started:
		phrase += " (rolling in)"
	case status.FinalDay:
		phrase += " (breaking)"
	}
	return phrase
}

func lastReading(wind []WindReading) (WindReading, bool) {
	if len(wind) == 0 {
		return WindReading{}, false
	}
	return wind[len(wind)-1], true
}

func directionLabel(direction tables.WindDirection) string {
	return strings.ReplaceAll(string(direction), "_", " ")
}
