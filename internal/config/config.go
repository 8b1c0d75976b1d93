// Package config loads runtime settings from the environment.
// Falls back to defaults if variables are not set.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	// DatabasePath is where the SQLite store lives.
	DatabasePath string
	// DefaultStageLength is the number of days a stage covers when the
	// caller does not say otherwise.
	DefaultStageLength int
	// Seed fixes the roll source; 0 means seed from the clock.
	Seed int64
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

func Default() Config {
	return Config{
		DatabasePath:       "data/river-traveller.db",
		DefaultStageLength: 7,
		LogLevel:           "info",
	}
}

func FromEnv() Config {
	cfg := Default()

	if val := os.Getenv("RIVER_DB_PATH"); val != "" {
		cfg.DatabasePath = val
	}
	if val := getEnvInt("RIVER_STAGE_LENGTH"); val > 0 {
		cfg.DefaultStageLength = val
	}
	if val := os.Getenv("RIVER_SEED"); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if val := os.Getenv("RIVER_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
