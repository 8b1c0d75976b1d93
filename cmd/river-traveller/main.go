package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/IT-Learning-Consulting/river-traveller/internal/config"
	"github.com/IT-Learning-Consulting/river-traveller/internal/journey"
	"github.com/IT-Learning-Consulting/river-traveller/internal/resolve"
	"github.com/IT-Learning-Consulting/river-traveller/internal/store"
	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showVersion bool
		key         string
		start       bool
		end         bool
		region      string
		season      string
		days        int
		showDay     int
		override    bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&key, "journey", "default", "journey key (one per travelling party)")
	flag.BoolVar(&start, "start", false, "start a new journey (requires -region and -season)")
	flag.BoolVar(&end, "end", false, "end the journey and drop its records")
	flag.StringVar(&region, "region", "", "region name, fuzzy-matched")
	flag.StringVar(&season, "season", "", "season name, fuzzy-matched")
	flag.IntVar(&days, "days", 0, "advance the journey by a stage of N days")
	flag.IntVar(&showDay, "day", 0, "show a previously generated day")
	flag.BoolVar(&override, "override", false, "generate the next day with explicit -region/-season")
	flag.Parse()

	if showVersion {
		fmt.Printf("river-traveller %s (%s) %s\n", version, commit, date)
		return nil
	}

	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()
	cfg := config.FromEnv()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(log)

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	orch := journey.NewOrchestrator(db, tables.Default(), log)
	ctx := context.Background()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := journey.NewSeededSource(seed)

	switch {
	case start:
		r, s, err := resolvePlace(region, season)
		if err != nil {
			return err
		}
		state, err := orch.StartJourney(ctx, key, r, s, cfg.DefaultStageLength)
		if err != nil {
			return err
		}
		fmt.Printf("journey %q started in the %s, %s, day %d\n", key, state.Region, state.Season, state.Day)
		return nil

	case end:
		return orch.EndJourney(ctx, key)

	case override:
		r, s, err := resolvePlace(region, season)
		if err != nil {
			return err
		}
		record, err := orch.OverrideDay(ctx, key, r, s, rng)
		if err != nil {
			return err
		}
		printRecord(record)
		return nil

	case days > 0:
		result, err := orch.AdvanceStage(ctx, key, days, rng)
		if err != nil {
			return err
		}
		for _, record := range result.Records {
			printRecord(record)
		}
		fmt.Printf("stage %d begins on day %d\n", result.State.Stage, result.State.Day)
		return nil

	case showDay > 0:
		record, ok, err := orch.DayRecord(ctx, key, showDay)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no record for day %d of journey %q", showDay, key)
		}
		printRecord(record)
		return nil

	default:
		flag.Usage()
		return nil
	}
}

func resolvePlace(region, season string) (tables.Region, tables.Season, error) {
	r, ok := resolve.Region(region)
	if !ok {
		return "", "", fmt.Errorf("unknown region %q (try one of %v)", region, tables.Regions())
	}
	s, ok := resolve.Season(season)
	if !ok {
		return "", "", fmt.Errorf("unknown season %q (try one of %v)", season, tables.Seasons())
	}
	return r, s, nil
}

func printRecord(record journey.DailyWeatherRecord) {
	fmt.Printf("Day %d — %s\n", record.Day, record.Description)
	for _, w := range record.Wind {
		marker := " "
		if w.Changed {
			marker = "*"
		}
		fmt.Printf("  %s%-9s %s from %s (speed %d%%, handling -%d)\n",
			marker, w.Period, w.Strength, w.Direction, w.SpeedPct, w.HandlingPenalty)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
