package journey

import (
	"testing"

	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

func TestGenerateWindFirstDayRollsFreshThenCarries(t *testing.T) {
	set := tables.Default()
	// Strength 3 = moderate, direction 1 = north, then three no-shift checks.
	rng := &ScriptedSource{Rolls: []int{3, 1, 5, 5, 5}}

	wind, err := GenerateWind(set, rng, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(wind) != 4 {
		t.Fatalf("expected 4 periods, got %d", len(wind))
	}

	for i, reading := range wind {
		if reading.Period != WindPeriods()[i] {
			t.Fatalf("period %d: got %s", i, reading.Period)
		}
		if reading.Strength != tables.WindModerate || reading.Direction != tables.DirNorth {
			t.Fatalf("period %s: expected carried moderate/north, got %s/%s",
				reading.Period, reading.Strength, reading.Direction)
		}
		if reading.Changed {
			t.Fatalf("period %s: nothing shifted, changed flag set", reading.Period)
		}
		// Moderate tailwind out of the north pushes the boat downstream.
		if reading.SpeedPct != 110 || reading.HandlingPenalty != 0 || reading.RequiresTacking {
			t.Fatalf("period %s: unexpected modifiers %+v", reading.Period, reading)
		}
	}
}

func TestGenerateWindCarriesPreviousDayMidnight(t *testing.T) {
	set := tables.Default()
	prev := &WindReading{
		Period:    PeriodMidnight,
		Strength:  tables.WindLight,
		Direction: tables.DirWest,
	}
	rng := &ScriptedSource{Rolls: []int{5, 5, 5, 5}} // no shifts

	wind, err := GenerateWind(set, rng, prev)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, reading := range wind {
		if reading.Strength != tables.WindLight || reading.Direction != tables.DirWest {
			t.Fatalf("period %s: expected previous day's wind carried, got %s/%s",
				reading.Period, reading.Strength, reading.Direction)
		}
		if reading.Changed {
			t.Fatalf("period %s: carried reading marked as changed", reading.Period)
		}
	}
}

func TestGenerateWindShiftRerollsAndFlags(t *testing.T) {
	set := tables.Default()
	prev := &WindReading{Strength: tables.WindCalm, Direction: tables.DirEast}
	// Dawn shifts (1) to strong (5) out of the south (5); the rest carry.
	rng := &ScriptedSource{Rolls: []int{1, 5, 5, 5, 5, 5}}

	wind, err := GenerateWind(set, rng, prev)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	dawn := wind[0]
	if dawn.Strength != tables.WindStrong || dawn.Direction != tables.DirSouth {
		t.Fatalf("expected strong/south at dawn, got %s/%s", dawn.Strength, dawn.Direction)
	}
	if !dawn.Changed {
		t.Fatalf("rerolled reading must carry the changed flag")
	}
	// A strong headwind fights the downstream run and forces tacking.
	if dawn.SpeedPct != 75 || dawn.HandlingPenalty != 3 || !dawn.RequiresTacking {
		t.Fatalf("unexpected headwind modifiers: %+v", dawn)
	}

	for _, reading := range wind[1:] {
		if reading.Changed {
			t.Fatalf("period %s: carried reading marked as changed", reading.Period)
		}
		if reading.Strength != tables.WindStrong || reading.Direction != tables.DirSouth {
			t.Fatalf("period %s: expected dawn reading carried forward", reading.Period)
		}
	}
}
