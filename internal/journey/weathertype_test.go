package journey

import (
	"errors"
	"testing"

	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

func TestRollWeatherTypeResolvesAgainstSeasonTable(t *testing.T) {
	set := tables.Default()

	out, err := RollWeatherType(set, &ScriptedSource{Rolls: []int{70}}, tables.SeasonWinter)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if out.Roll != 70 {
		t.Fatalf("expected the roll echoed back, got %d", out.Roll)
	}
	if out.Key != tables.WeatherSnow {
		t.Fatalf("winter roll 70 should be snow, got %s", out.Key)
	}
}

func TestRollWeatherTypeUnknownSeason(t *testing.T) {
	set := tables.Default()

	_, err := RollWeatherType(set, &ScriptedSource{Rolls: []int{50}}, tables.Season("monsoon"))
	var confErr *tables.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
