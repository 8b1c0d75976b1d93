package journey

import (
	"fmt"

	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

const (
	// Trigger rolls for the two long-running events. Disjoint values; the
	// cold front check is the defined tie-break if fed malformed input.
	ColdFrontTriggerRoll = 2
	HeatWaveTriggerRoll  = 99

	ColdFrontModifierC = -10
	HeatWaveModifierC  = 10

	ColdFrontMaxDays = 5
	HeatWaveMinDays  = 11
	HeatWaveMaxDays  = 20
)

// TemperatureInput is everything one engine call reads: the day's location,
// the day's single d100 roll, and the previous day's outgoing event state.
type TemperatureInput struct {
	Region tables.Region
	Season tables.Season
	Roll   int
	Events EventState
}

// EventStatus describes one event type's standing on the generated day, for
// display. Remaining counts today: a final day shows Remaining 1 and
// DaysElapsed equal to Total.
type EventStatus struct {
	Active      bool
	Started     bool
	FinalDay    bool
	Remaining   int
	Total       int
	DaysElapsed int
}

// TemperatureResult is one day's temperature outcome plus the event state to
// thread into the next day's call.
type TemperatureResult struct {
	TemperatureC int
	Category     tables.TemperatureCategory
	Roll         int
	Variation    tables.VariationBucket
	ColdFront    EventStatus
	HeatWave     EventStatus
	Events       EventState
}

// StepTemperature advances the temperature event machine by one day. It is a
// pure function of its inputs: nothing global, nothing cached, so distinct
// journeys can step concurrently.
//
// Order of operations: continuing events consume one remaining day, then the
// activity check gates trigger evaluation (an active event suppresses the
// trigger rolls entirely), then cooldown counters advance for inactive types,
// then temperature and category are derived from the same roll. Category
// always comes from the post-modifier temperature.
func StepTemperature(set *tables.Set, rng RollSource, in TemperatureInput) (TemperatureResult, error) {
	if err := validateEventState(in.Events); err != nil {
		return TemperatureResult{}, err
	}

	ev := in.Events

	// A continuing event consumes one day up front; the day whose incoming
	// remaining was 1 therefore advances to 0 and is the first inactive day.
	// A just-started event keeps its full duration through its first day.
	if ev.ColdFrontRemaining > 0 {
		ev.ColdFrontRemaining--
		if ev.ColdFrontRemaining == 0 {
			ev.ColdFrontTotal = 0
		}
	}
	if ev.HeatWaveRemaining > 0 {
		ev.HeatWaveRemaining--
		if ev.HeatWaveRemaining == 0 {
			ev.HeatWaveTotal = 0
		}
	}

	coldActive := ev.ColdFrontRemaining > 0
	heatActive := ev.HeatWaveRemaining > 0
	if coldActive && heatActive {
		return TemperatureResult{}, &InvariantViolation{Detail: "cold front and heat wave active simultaneously"}
	}

	coldStarted := false
	heatStarted := false
	coldCooldown := Cooldown{DaysSince: ev.DaysSinceColdFront}
	heatCooldown := Cooldown{DaysSince: ev.DaysSinceHeatWave}

	if !coldActive && !heatActive {
		switch {
		case in.Roll == ColdFrontTriggerRoll && coldCooldown.Ready():
			duration := rng.Roll(ColdFrontMaxDays)
			ev.ColdFrontTotal = duration
			ev.ColdFrontRemaining = duration
			coldCooldown = coldCooldown.Start()
			coldStarted = true
			coldActive = true
		case in.Roll == HeatWaveTriggerRoll && heatCooldown.Ready():
			duration := HeatWaveMinDays - 1 + rng.Roll(HeatWaveMaxDays-HeatWaveMinDays+1)
			ev.HeatWaveTotal = duration
			ev.HeatWaveRemaining = duration
			heatCooldown = heatCooldown.Start()
			heatStarted = true
			heatActive = true
		}
	}

	if !coldActive {
		coldCooldown = coldCooldown.Advance()
	}
	if !heatActive {
		heatCooldown = heatCooldown.Advance()
	}
	ev.DaysSinceColdFront = coldCooldown.DaysSince
	ev.DaysSinceHeatWave = heatCooldown.DaysSince

	base, err := set.BaseTemperature(in.Region, in.Season)
	if err != nil {
		return TemperatureResult{}, err
	}

	bucket := set.Variation(in.Roll)
	temp := base
	switch {
	case coldActive:
		temp += ColdFrontModifierC + bucket.EventDelta
	case heatActive:
		temp += HeatWaveModifierC + bucket.EventDelta
	default:
		temp += bucket.Delta
	}

	return TemperatureResult{
		TemperatureC: temp,
		Category:     tables.CategoryFor(temp),
		Roll:         in.Roll,
		Variation:    bucket,
		ColdFront:    statusFor(coldActive, coldStarted, ev.ColdFrontRemaining, ev.ColdFrontTotal),
		HeatWave:     statusFor(heatActive, heatStarted, ev.HeatWaveRemaining, ev.HeatWaveTotal),
		Events:       ev,
	}, nil
}

func statusFor(active, started bool, remaining, total int) EventStatus {
	status := EventStatus{
		Active:    active,
		Started:   started,
		Remaining: remaining,
		Total:     total,
	}
	if active {
		status.DaysElapsed = total - remaining + 1
		status.FinalDay = remaining == 1
	}
	return status
}

func validateEventState(ev EventState) error {
	if ev.ColdFrontRemaining > 0 && ev.HeatWaveRemaining > 0 {
		return &InvariantViolation{Detail: "cold front and heat wave active simultaneously"}
	}
	if ev.ColdFrontRemaining < 0 || ev.ColdFrontTotal < 0 || ev.HeatWaveRemaining < 0 || ev.HeatWaveTotal < 0 {
		return &InvariantViolation{Detail: "negative event duration"}
	}
	if ev.ColdFrontTotal > ColdFrontMaxDays {
		return &InvariantViolation{Detail: fmt.Sprintf("cold front total %d exceeds %d", ev.ColdFrontTotal, ColdFrontMaxDays)}
	}
	if ev.HeatWaveTotal > HeatWaveMaxDays {
		return &InvariantViolation{Detail: fmt.Sprintf("heat wave total %d exceeds %d", ev.HeatWaveTotal, HeatWaveMaxDays)}
	}
	if ev.ColdFrontRemaining > ev.ColdFrontTotal {
		return &InvariantViolation{Detail: "cold front remaining exceeds total"}
	}
	if ev.HeatWaveRemaining > ev.HeatWaveTotal {
		return &InvariantViolation{Detail: "heat wave remaining exceeds total"}
	}
	return nil
}
