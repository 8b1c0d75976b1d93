// Package store persists journey state and day records in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/IT-Learning-Consulting/river-traveller/internal/journey"
	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

// SQLite implements journey.Store on a single database file.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS journeys (
			key TEXT PRIMARY KEY,
			day INTEGER NOT NULL,
			stage INTEGER NOT NULL,
			stage_length INTEGER NOT NULL,
			region TEXT NOT NULL,
			season TEXT NOT NULL,
			cold_front_remaining INTEGER NOT NULL,
			cold_front_total INTEGER NOT NULL,
			heat_wave_remaining INTEGER NOT NULL,
			heat_wave_total INTEGER NOT NULL,
			days_since_cold_front INTEGER NOT NULL,
			days_since_heat_wave INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS day_records (
			journey_key TEXT NOT NULL,
			day INTEGER NOT NULL,
			region TEXT NOT NULL,
			season TEXT NOT NULL,
			wind TEXT NOT NULL,
			weather_roll INTEGER NOT NULL,
			weather_type TEXT NOT NULL,
			temperature_roll INTEGER NOT NULL,
			temperature_c INTEGER NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL,
			cold_front_remaining INTEGER NOT NULL,
			cold_front_total INTEGER NOT NULL,
			heat_wave_remaining INTEGER NOT NULL,
			heat_wave_total INTEGER NOT NULL,
			PRIMARY KEY (journey_key, day)
		);
	`)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

func (s *SQLite) LoadJourney(ctx context.Context, key string) (journey.JourneyState, bool, error) {
	var state journey.JourneyState
	var region, season string
	err := s.db.QueryRowContext(ctx, `
		SELECT key, day, stage, stage_length, region, season,
		       cold_front_remaining, cold_front_total,
		       heat_wave_remaining, heat_wave_total,
		       days_since_cold_front, days_since_heat_wave
		FROM journeys WHERE key = ?`, key,
	).Scan(
		&state.Key, &state.Day, &state.Stage, &state.StageLength, &region, &season,
		&state.Events.ColdFrontRemaining, &state.Events.ColdFrontTotal,
		&state.Events.HeatWaveRemaining, &state.Events.HeatWaveTotal,
		&state.Events.DaysSinceColdFront, &state.Events.DaysSinceHeatWave,
	)
	if err == sql.ErrNoRows {
		return journey.JourneyState{}, false, nil
	}
	if err != nil {
		return journey.JourneyState{}, false, fmt.Errorf("querying journey: %w", err)
	}
	state.Region = tables.Region(region)
	state.Season = tables.Season(season)
	return state, true, nil
}

func (s *SQLite) SaveJourney(ctx context.Context, state journey.JourneyState) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journeys (
			key, day, stage, stage_length, region, season,
			cold_front_remaining, cold_front_total,
			heat_wave_remaining, heat_wave_total,
			days_since_cold_front, days_since_heat_wave
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			day = excluded.day,
			stage = excluded.stage,
			stage_length = excluded.stage_length,
			region = excluded.region,
			season = excluded.season,
			cold_front_remaining = excluded.cold_front_remaining,
			cold_front_total = excluded.cold_front_total,
			heat_wave_remaining = excluded.heat_wave_remaining,
			heat_wave_total = excluded.heat_wave_total,
			days_since_cold_front = excluded.days_since_cold_front,
			days_since_heat_wave = excluded.days_since_heat_wave`,
		state.Key, state.Day, state.Stage, state.StageLength,
		string(state.Region), string(state.Season),
		state.Events.ColdFrontRemaining, state.Events.ColdFrontTotal,
		state.Events.HeatWaveRemaining, state.Events.HeatWaveTotal,
		state.Events.DaysSinceColdFront, state.Events.DaysSinceHeatWave,
	)
	if err != nil {
		return fmt.Errorf("saving journey: %w", err)
	}
	return nil
}

func (s *SQLite) DeleteJourney(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM day_records WHERE journey_key = ?`, key); err != nil {
		return fmt.Errorf("deleting day records: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM journeys WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting journey: %w", err)
	}
	return nil
}

func (s *SQLite) SaveDayRecord(ctx context.Context, key string, record journey.DailyWeatherRecord) error {
	wind, err := json.Marshal(record.Wind)
	if err != nil {
		return fmt.Errorf("encoding wind timeline: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO day_records (
			journey_key, day, region, season, wind,
			weather_roll, weather_type, temperature_roll, temperature_c,
			category, description,
			cold_front_remaining, cold_front_total,
			heat_wave_remaining, heat_wave_total
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(journey_key, day) DO UPDATE SET
			region = excluded.region,
			season = excluded.season,
			wind = excluded.wind,
			weather_roll = excluded.weather_roll,
			weather_type = excluded.weather_type,
			temperature_roll = excluded.temperature_roll,
			temperature_c = excluded.temperature_c,
			category = excluded.category,
			description = excluded.description,
			cold_front_remaining = excluded.cold_front_remaining,
			cold_front_total = excluded.cold_front_total,
			heat_wave_remaining = excluded.heat_wave_remaining,
			heat_wave_total = excluded.heat_wave_total`,
		key, record.Day, string(record.Region), string(record.Season), string(wind),
		record.WeatherRoll, string(record.WeatherType),
		record.TemperatureRoll, record.TemperatureC,
		string(record.Category), record.Description,
		record.ColdFrontRemaining, record.ColdFrontTotal,
		record.HeatWaveRemaining, record.HeatWaveTotal,
	)
	if err != nil {
		return fmt.Errorf("saving day record: %w", err)
	}
	return nil
}

func (s *SQLite) DayRecord(ctx context.Context, key string, day int) (journey.DailyWeatherRecord, bool, error) {
	var record journey.DailyWeatherRecord
	var region, season, wind, weatherType, category string
	err := s.db.QueryRowContext(ctx, `
		SELECT day, region, season, wind,
		       weather_roll, weather_type, temperature_roll, temperature_c,
		       category, description,
		       cold_front_remaining, cold_front_total,
		       heat_wave_remaining, heat_wave_total
		FROM day_records WHERE journey_key = ? AND day = ?`, key, day,
	).Scan(
		&record.Day, &region, &season, &wind,
		&record.WeatherRoll, &weatherType,
		&record.TemperatureRoll, &record.TemperatureC,
		&category, &record.Description,
		&record.ColdFrontRemaining, &record.ColdFrontTotal,
		&record.HeatWaveRemaining, &record.HeatWaveTotal,
	)
	if err == sql.ErrNoRows {
		return journey.DailyWeatherRecord{}, false, nil
	}
	if err != nil {
		return journey.DailyWeatherRecord{}, false, fmt.Errorf("querying day record: %w", err)
	}
	if err := json.Unmarshal([]byte(wind), &record.Wind); err != nil {
		return journey.DailyWeatherRecord{}, false, fmt.Errorf("decoding wind timeline: %w", err)
	}
	record.Region = tables.Region(region)
	record.Season = tables.Season(season)
	record.WeatherType = tables.WeatherKey(weatherType)
	record.Category = tables.TemperatureCategory(category)
	return record, true, nil
}
