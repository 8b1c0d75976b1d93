package journey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"testing"

	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func startTestJourney(t *testing.T, orch *Orchestrator, key string) JourneyState {
	t.Helper()
	state, err := orch.StartJourney(context.Background(), key, tables.RegionLowlands, tables.SeasonAutumn, 7)
	if err != nil {
		t.Fatalf("start journey: %v", err)
	}
	return state
}

func TestAdvanceStageGeneratesRequestedDays(t *testing.T) {
	store := NewMemoryStore()
	orch := NewOrchestrator(store, tables.Default(), testLogger())
	ctx := context.Background()
	startTestJourney(t, orch, "guild-1")

	result, err := orch.AdvanceStage(ctx, "guild-1", 5, NewSeededSource(42))
	if err != nil {
		t.Fatalf("advance stage: %v", err)
	}

	if len(result.Records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(result.Records))
	}
	for i, record := range result.Records {
		if record.Day != i+1 {
			t.Fatalf("record %d carries day %d", i, record.Day)
		}
		if len(record.Wind) != 4 {
			t.Fatalf("day %d: expected 4 wind readings, got %d", record.Day, len(record.Wind))
		}
		if record.ColdFrontRemaining > 0 && record.HeatWaveRemaining > 0 {
			t.Fatalf("day %d: both events active", record.Day)
		}
		if record.Description == "" {
			t.Fatalf("day %d: empty description", record.Day)
		}
	}

	if result.State.Day != 6 {
		t.Fatalf("expected next day 6, got %d", result.State.Day)
	}
	if result.State.Stage != 2 {
		t.Fatalf("stage should advance once per stage call, got %d", result.State.Stage)
	}

	persisted, ok, err := store.LoadJourney(ctx, "guild-1")
	if err != nil || !ok {
		t.Fatalf("load persisted journey: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(persisted, result.State) {
		t.Fatalf("persisted state diverges:\n%+v\n%+v", persisted, result.State)
	}
}

func TestStageMatchesSequentialSingleDays(t *testing.T) {
	ctx := context.Background()
	const seed = 1234

	batchStore := NewMemoryStore()
	batch := NewOrchestrator(batchStore, tables.Default(), testLogger())
	startTestJourney(t, batch, "guild-batch")
	batchResult, err := batch.AdvanceStage(ctx, "guild-batch", 5, NewSeededSource(seed))
	if err != nil {
		t.Fatalf("batch: %v", err)
	}

	seqStore := NewMemoryStore()
	seq := NewOrchestrator(seqStore, tables.Default(), testLogger())
	startTestJourney(t, seq, "guild-seq")
	rng := NewSeededSource(seed)
	seqRecords := make([]DailyWeatherRecord, 0, 5)
	for day := 0; day < 5; day++ {
		record, err := seq.GenerateDay(ctx, "guild-seq", rng)
		if err != nil {
			t.Fatalf("sequential day %d: %v", day+1, err)
		}
		seqRecords = append(seqRecords, record)
	}

	if !reflect.DeepEqual(batchResult.Records, seqRecords) {
		t.Fatalf("batch and sequential records diverge:\n%+v\n%+v", batchResult.Records, seqRecords)
	}

	seqState, ok, err := seqStore.LoadJourney(ctx, "guild-seq")
	if err != nil || !ok {
		t.Fatalf("load sequential state: ok=%v err=%v", ok, err)
	}
	if seqState.Events != batchResult.State.Events {
		t.Fatalf("event state diverges:\n%+v\n%+v", seqState.Events, batchResult.State.Events)
	}
	if seqState.Day != batchResult.State.Day {
		t.Fatalf("day counter diverges: %d vs %d", seqState.Day, batchResult.State.Day)
	}
	// Only the stage counter differs: single-day calls never advance it.
	if seqState.Stage != 1 || batchResult.State.Stage != 2 {
		t.Fatalf("unexpected stage counters: seq=%d batch=%d", seqState.Stage, batchResult.State.Stage)
	}
}

// flakyStore fails day-record writes after a set number of successes.
type flakyStore struct {
	*MemoryStore
	writesLeft int
}

func (s *flakyStore) SaveDayRecord(ctx context.Context, key string, record DailyWeatherRecord) error {
	if s.writesLeft <= 0 {
		return fmt.Errorf("disk full")
	}
	s.writesLeft--
	return s.MemoryStore.SaveDayRecord(ctx, key, record)
}

func TestStageFailureKeepsCommittedDaysAndStageCounter(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: NewMemoryStore(), writesLeft: 2}
	orch := NewOrchestrator(store, tables.Default(), testLogger())
	startTestJourney(t, orch, "guild-1")

	_, err := orch.AdvanceStage(ctx, "guild-1", 5, NewSeededSource(7))
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}

	state, ok, loadErr := store.LoadJourney(ctx, "guild-1")
	if loadErr != nil || !ok {
		t.Fatalf("load journey: ok=%v err=%v", ok, loadErr)
	}
	if state.Stage != 1 {
		t.Fatalf("stage must not advance on a failed stage, got %d", state.Stage)
	}
	if state.Day != 3 {
		t.Fatalf("days 1-2 committed, so the journey should resume at day 3, got %d", state.Day)
	}
	for day := 1; day <= 2; day++ {
		if _, ok, _ := store.DayRecord(ctx, "guild-1", day); !ok {
			t.Fatalf("committed day %d lost", day)
		}
	}
	if _, ok, _ := store.DayRecord(ctx, "guild-1", 3); ok {
		t.Fatalf("failed day 3 must not leave a record")
	}
}

func TestOverrideDayUsesExplicitRegionButFullEngine(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orch := NewOrchestrator(store, tables.Default(), testLogger())
	startTestJourney(t, orch, "guild-1")

	record, err := orch.OverrideDay(ctx, "guild-1", tables.RegionHighlands, tables.SeasonWinter, NewSeededSource(3))
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	if record.Region != tables.RegionHighlands || record.Season != tables.SeasonWinter {
		t.Fatalf("override must use the explicit region/season, got %s/%s", record.Region, record.Season)
	}

	// The journey's stored location is untouched; only input selection was
	// overridden, and the day still advanced through the state machine.
	state, ok, err := store.LoadJourney(ctx, "guild-1")
	if err != nil || !ok {
		t.Fatalf("load journey: ok=%v err=%v", ok, err)
	}
	if state.Region != tables.RegionLowlands || state.Season != tables.SeasonAutumn {
		t.Fatalf("stored region/season must not change, got %s/%s", state.Region, state.Season)
	}
	if state.Day != 2 {
		t.Fatalf("override still advances the day counter, got %d", state.Day)
	}
}

func TestDayRecordIsPureRead(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orch := NewOrchestrator(store, tables.Default(), testLogger())
	startTestJourney(t, orch, "guild-1")

	if _, err := orch.AdvanceStage(ctx, "guild-1", 3, NewSeededSource(9)); err != nil {
		t.Fatalf("advance: %v", err)
	}
	before, _, err := store.LoadJourney(ctx, "guild-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	record, ok, err := orch.DayRecord(ctx, "guild-1", 2)
	if err != nil || !ok {
		t.Fatalf("day record: ok=%v err=%v", ok, err)
	}
	if record.Day != 2 {
		t.Fatalf("expected day 2, got %d", record.Day)
	}

	after, _, err := store.LoadJourney(ctx, "guild-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("reading a day mutated journey state")
	}

	if _, ok, err := orch.DayRecord(ctx, "guild-1", 40); err != nil || ok {
		t.Fatalf("missing day should read ok=false without error, got ok=%v err=%v", ok, err)
	}
}

func TestWindCarriesAcrossDaysWithinAndBetweenCalls(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orch := NewOrchestrator(store, tables.Default(), testLogger())
	startTestJourney(t, orch, "guild-1")

	if _, err := orch.AdvanceStage(ctx, "guild-1", 2, NewSeededSource(11)); err != nil {
		t.Fatalf("advance: %v", err)
	}

	day1, _, _ := store.DayRecord(ctx, "guild-1", 1)
	day2, _, _ := store.DayRecord(ctx, "guild-1", 2)
	last, _ := day1.LastWind()
	dawn := day2.Wind[0]
	if !dawn.Changed && (dawn.Strength != last.Strength || dawn.Direction != last.Direction) {
		t.Fatalf("unshifted dawn must carry the previous midnight reading: %+v vs %+v", dawn, last)
	}
}

func TestStartAndEndJourneyLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orch := NewOrchestrator(store, tables.Default(), testLogger())

	if _, err := orch.StartJourney(ctx, "guild-1", tables.Region("atlantis"), tables.SeasonSummer, 7); err == nil {
		t.Fatalf("unknown region must fail journey creation")
	}

	startTestJourney(t, orch, "guild-1")
	if _, err := orch.AdvanceStage(ctx, "guild-1", 2, NewSeededSource(5)); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if err := orch.EndJourney(ctx, "guild-1"); err != nil {
		t.Fatalf("end journey: %v", err)
	}
	if _, ok, _ := store.LoadJourney(ctx, "guild-1"); ok {
		t.Fatalf("journey state should be gone")
	}
	if _, ok, _ := store.DayRecord(ctx, "guild-1", 1); ok {
		t.Fatalf("day records should be gone")
	}

	if _, err := orch.GenerateDay(ctx, "guild-1", NewSeededSource(5)); !errors.Is(err, ErrJourneyNotFound) {
		t.Fatalf("expected ErrJourneyNotFound, got %v", err)
	}
}
