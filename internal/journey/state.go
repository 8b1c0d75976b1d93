package journey

import (
	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

// EventState carries the cross-day temperature event fields threaded from one
// engine call into the next and persisted between sessions. At most one of
// the two events is ever active (remaining > 0).
type EventState struct {
	ColdFrontRemaining int `json:"cold_front_remaining"`
	ColdFrontTotal     int `json:"cold_front_total"`
	HeatWaveRemaining  int `json:"heat_wave_remaining"`
	HeatWaveTotal      int `json:"heat_wave_total"`
	DaysSinceColdFront int `json:"days_since_cold_front"`
	DaysSinceHeatWave  int `json:"days_since_heat_wave"`
}

// NewEventState is the state of a journey that has never seen either event:
// both cooldown counters sit at the "never" sentinel so triggers are armed
// from day one.
func NewEventState() EventState {
	return EventState{
		DaysSinceColdFront: CooldownNever,
		DaysSinceHeatWave:  CooldownNever,
	}
}

// JourneyState is the per-party record the orchestrator reads before a day
// and writes back after it. Day and Stage start at 1.
type JourneyState struct {
	Key         string        `json:"key"`
	Day         int           `json:"day"`
	Stage       int           `json:"stage"`
	StageLength int           `json:"stage_length"`
	Region      tables.Region `json:"region"`
	Season      tables.Season `json:"season"`
	Events      EventState    `json:"events"`
}

// WindPeriod names one of the four wind readings in a day, in order.
type WindPeriod string

const (
	PeriodDawn     WindPeriod = "dawn"
	PeriodMidday   WindPeriod = "midday"
	PeriodDusk     WindPeriod = "dusk"
	PeriodMidnight WindPeriod = "midnight"
)

func WindPeriods() []WindPeriod {
	return []WindPeriod{PeriodDawn, PeriodMidday, PeriodDusk, PeriodMidnight}
}

// WindReading is one period's wind plus its derived travel modifiers.
type WindReading struct {
	Period          WindPeriod           `json:"period"`
	Strength        tables.WindStrength  `json:"strength"`
	Direction       tables.WindDirection `json:"direction"`
	SpeedPct        int                  `json:"speed_pct"`
	HandlingPenalty int                  `json:"handling_penalty"`
	RequiresTacking bool                 `json:"requires_tacking"`
	Changed         bool                 `json:"changed"`
}

// DailyWeatherRecord is the immutable output for one generated day.
// Re-generation via the override path replaces it wholesale.
type DailyWeatherRecord struct {
	Day             int                        `json:"day"`
	Region          tables.Region              `json:"region"`
	Season          tables.Season              `json:"season"`
	Wind            []WindReading              `json:"wind"`
	WeatherRoll     int                        `json:"weather_roll"`
	WeatherType     tables.WeatherKey          `json:"weather_type"`
	TemperatureRoll int                        `json:"temperature_roll"`
	TemperatureC    int                        `json:"temperature_c"`
	Category        tables.TemperatureCategory `json:"category"`
	Description     string                     `json:"description"`

	ColdFrontRemaining int `json:"cold_front_remaining"`
	ColdFrontTotal     int `json:"cold_front_total"`
	HeatWaveRemaining  int `json:"heat_wave_remaining"`
	HeatWaveTotal      int `json:"heat_wave_total"`
}

// LastWind returns the final-period reading carried into the next day's
// generation, or false for an empty timeline.
func (r DailyWeatherRecord) LastWind() (WindReading, bool) {
	if len(r.Wind) == 0 {
		return WindReading{}, false
	}
	return r.Wind[len(r.Wind)-1], true
}
