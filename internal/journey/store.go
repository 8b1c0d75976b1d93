package journey

import (
	"context"
	"sync"
)

// Store is the persistence boundary the orchestrator writes through. Records
// are keyed (journey key, day number); saving an existing day overwrites it.
type Store interface {
	LoadJourney(ctx context.Context, key string) (JourneyState, bool, error)
	SaveJourney(ctx context.Context, state JourneyState) error
	DeleteJourney(ctx context.Context, key string) error
	SaveDayRecord(ctx context.Context, key string, record DailyWeatherRecord) error
	DayRecord(ctx context.Context, key string, day int) (DailyWeatherRecord, bool, error)
}

type dayKey struct {
	Journey string
	Day     int
}

// MemoryStore keeps journeys and records in process memory. Used by tests and
// ephemeral runs.
type MemoryStore struct {
	mu       sync.RWMutex
	journeys map[string]JourneyState
	records  map[dayKey]DailyWeatherRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		journeys: make(map[string]JourneyState),
		records:  make(map[dayKey]DailyWeatherRecord),
	}
}

func (s *MemoryStore) LoadJourney(_ context.Context, key string) (JourneyState, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.journeys[key]
	return state, ok, nil
}

func (s *MemoryStore) SaveJourney(_ context.Context, state JourneyState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journeys[state.Key] = state
	return nil
}

func (s *MemoryStore) DeleteJourney(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.journeys, key)
	for dk := range s.records {
		if dk.Journey == key {
			delete(s.records, dk)
		}
	}
	return nil
}

func (s *MemoryStore) SaveDayRecord(_ context.Context, key string, record DailyWeatherRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[dayKey{Journey: key, Day: record.Day}] = record
	return nil
}

func (s *MemoryStore) DayRecord(_ context.Context, key string, day int) (DailyWeatherRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[dayKey{Journey: key, Day: day}]
	return record, ok, nil
}
