package journey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

// ErrJourneyNotFound is returned when a journey key has no stored state.
var ErrJourneyNotFound = errors.New("journey not found")

// Orchestrator drives the generators across consecutive days, threading each
// day's outgoing event state into the next day's input. It owns the only
// mutable reference: the injected store.
type Orchestrator struct {
	store  Store
	tables *tables.Set
	log    *slog.Logger
}

func NewOrchestrator(store Store, set *tables.Set, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{store: store, tables: set, log: log}
}

// StageResult is the output of one stage call: one record per generated day
// plus the final persisted state.
type StageResult struct {
	Records []DailyWeatherRecord
	State   JourneyState
}

// StartJourney creates and persists fresh state for the key. Region and
// season are validated against the tables before anything is written.
func (o *Orchestrator) StartJourney(ctx context.Context, key string, region tables.Region, season tables.Season, stageLength int) (JourneyState, error) {
	if _, err := o.tables.BaseTemperature(region, season); err != nil {
		return JourneyState{}, err
	}
	if stageLength < 1 {
		return JourneyState{}, fmt.Errorf("stage length must be at least 1, got %d", stageLength)
	}

	state := JourneyState{
		Key:         key,
		Day:         1,
		Stage:       1,
		StageLength: stageLength,
		Region:      region,
		Season:      season,
		Events:      NewEventState(),
	}
	if err := o.store.SaveJourney(ctx, state); err != nil {
		return JourneyState{}, &StorageError{Op: "save journey", Err: err}
	}
	o.log.Info("journey started", "key", key, "region", region, "season", season)
	return state, nil
}

// EndJourney removes the journey's state and records.
func (o *Orchestrator) EndJourney(ctx context.Context, key string) error {
	if err := o.store.DeleteJourney(ctx, key); err != nil {
		return &StorageError{Op: "delete journey", Err: err}
	}
	o.log.Info("journey ended", "key", key)
	return nil
}

// AdvanceStage generates the requested number of days and then advances the
// stage counter. Persistence is per-day: a write failure on day k leaves days
// 1..k-1 committed and the stage counter untouched, so the caller can resume
// by re-requesting the remaining days.
func (o *Orchestrator) AdvanceStage(ctx context.Context, key string, days int, rng RollSource) (StageResult, error) {
	if days < 1 {
		return StageResult{}, fmt.Errorf("stage must cover at least 1 day, got %d", days)
	}

	state, err := o.loadJourney(ctx, key)
	if err != nil {
		return StageResult{}, err
	}

	records := make([]DailyWeatherRecord, 0, days)
	for i := 0; i < days; i++ {
		record, next, err := o.generateDay(ctx, state, state.Region, state.Season, rng)
		if err != nil {
			return StageResult{}, err
		}
		if i == days-1 {
			next.Stage++
		}
		if err := o.persistDay(ctx, record, next); err != nil {
			return StageResult{}, err
		}
		records = append(records, record)
		state = next
	}

	o.log.Info("stage generated",
		"key", key, "days", days, "stage", state.Stage, "next_day", state.Day)
	return StageResult{Records: records, State: state}, nil
}

// GenerateDay generates exactly one day without touching the stage counter.
// Given the same roll sequence, N calls are state-for-state identical to one
// N-day stage call.
func (o *Orchestrator) GenerateDay(ctx context.Context, key string, rng RollSource) (DailyWeatherRecord, error) {
	state, err := o.loadJourney(ctx, key)
	if err != nil {
		return DailyWeatherRecord{}, err
	}
	record, next, err := o.generateDay(ctx, state, state.Region, state.Season, rng)
	if err != nil {
		return DailyWeatherRecord{}, err
	}
	if err := o.persistDay(ctx, record, next); err != nil {
		return DailyWeatherRecord{}, err
	}
	return record, nil
}

// OverrideDay generates the journey's next day with an explicit region and
// season in place of the stored ones. Input selection is the only thing
// bypassed: the day still runs through the full event state machine, so
// cooldowns, suppression and durations behave exactly as in normal
// generation.
func (o *Orchestrator) OverrideDay(ctx context.Context, key string, region tables.Region, season tables.Season, rng RollSource) (DailyWeatherRecord, error) {
	state, err := o.loadJourney(ctx, key)
	if err != nil {
		return DailyWeatherRecord{}, err
	}
	record, next, err := o.generateDay(ctx, state, region, season, rng)
	if err != nil {
		return DailyWeatherRecord{}, err
	}
	if err := o.persistDay(ctx, record, next); err != nil {
		return DailyWeatherRecord{}, err
	}
	o.log.Info("day overridden", "key", key, "day", record.Day, "region", region, "season", season)
	return record, nil
}

// DayRecord is a pure read of a previously generated day. It never re-invokes
// the generators and never mutates state.
func (o *Orchestrator) DayRecord(ctx context.Context, key string, day int) (DailyWeatherRecord, bool, error) {
	record, ok, err := o.store.DayRecord(ctx, key, day)
	if err != nil {
		return DailyWeatherRecord{}, false, &StorageError{Op: "load day record", Err: err}
	}
	return record, ok, nil
}

func (o *Orchestrator) loadJourney(ctx context.Context, key string) (JourneyState, error) {
	state, ok, err := o.store.LoadJourney(ctx, key)
	if err != nil {
		return JourneyState{}, &StorageError{Op: "load journey", Err: err}
	}
	if !ok {
		return JourneyState{}, fmt.Errorf("%w: %s", ErrJourneyNotFound, key)
	}
	return state, nil
}

// generateDay runs the three generators for the day the state currently
// points at and returns the record plus the advanced state. Nothing is
// persisted here.
func (o *Orchestrator) generateDay(ctx context.Context, state JourneyState, region tables.Region, season tables.Season, rng RollSource) (DailyWeatherRecord, JourneyState, error) {
	prevWind, err := o.previousWind(ctx, state)
	if err != nil {
		return DailyWeatherRecord{}, JourneyState{}, err
	}

	wind, err := GenerateWind(o.tables, rng, prevWind)
	if err != nil {
		return DailyWeatherRecord{}, JourneyState{}, err
	}

	weather, err := RollWeatherType(o.tables, rng, season)
	if err != nil {
		return DailyWeatherRecord{}, JourneyState{}, err
	}

	temp, err := StepTemperature(o.tables, rng, TemperatureInput{
		Region: region,
		Season: season,
		Roll:   rng.Roll(100),
		Events: state.Events,
	})
	if err != nil {
		return DailyWeatherRecord{}, JourneyState{}, err
	}

	record := DailyWeatherRecord{
		Day:             state.Day,
		Region:          region,
		Season:          season,
		Wind:            wind,
		WeatherRoll:     weather.Roll,
		WeatherType:     weather.Key,
		TemperatureRoll: temp.Roll,
		TemperatureC:    temp.TemperatureC,
		Category:        temp.Category,
		Description:     Describe(weather.Key, temp, wind),

		ColdFrontRemaining: temp.Events.ColdFrontRemaining,
		ColdFrontTotal:     temp.Events.ColdFrontTotal,
		HeatWaveRemaining:  temp.Events.HeatWaveRemaining,
		HeatWaveTotal:      temp.Events.HeatWaveTotal,
	}

	next := state
	next.Day = state.Day + 1
	next.Events = temp.Events

	o.log.Debug("day generated",
		"key", state.Key, "day", record.Day,
		"weather", record.WeatherType, "temperature_c", record.TemperatureC,
		"cold_front_remaining", record.ColdFrontRemaining,
		"heat_wave_remaining", record.HeatWaveRemaining)
	return record, next, nil
}

// previousWind fetches the prior day's final-period reading for continuity.
// Day one has no carry-forward.
func (o *Orchestrator) previousWind(ctx context.Context, state JourneyState) (*WindReading, error) {
	if state.Day <= 1 {
		return nil, nil
	}
	record, ok, err := o.store.DayRecord(ctx, state.Key, state.Day-1)
	if err != nil {
		return nil, &StorageError{Op: "load previous day record", Err: err}
	}
	if !ok {
		return nil, nil
	}
	if last, ok := record.LastWind(); ok {
		return &last, nil
	}
	return nil, nil
}

// persistDay commits one day: the record first, then the advanced state. The
// day only counts as committed once both writes land.
func (o *Orchestrator) persistDay(ctx context.Context, record DailyWeatherRecord, next JourneyState) error {
	if err := o.store.SaveDayRecord(ctx, next.Key, record); err != nil {
		return &StorageError{Op: "save day record", Err: err}
	}
	if err := o.store.SaveJourney(ctx, next); err != nil {
		return &StorageError{Op: "save journey", Err: err}
	}
	return nil
}
