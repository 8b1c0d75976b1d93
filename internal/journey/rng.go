package journey

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// RollSource supplies uniform die rolls in [1, sides]. Injected everywhere
// randomness is consumed so scenario tests can script exact sequences.
type RollSource interface {
	Roll(sides int) int
}

type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a deterministic roll source for the given seed.
func NewSeededSource(seed int64) RollSource {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return &seededSource{rng: rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))}
}

func (s *seededSource) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	return s.rng.IntN(sides) + 1
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// ScriptedSource replays a fixed sequence of rolls, then falls back to the
// midpoint of the die. Test helper; not used in production paths.
type ScriptedSource struct {
	Rolls []int
	next  int
}

func (s *ScriptedSource) Roll(sides int) int {
	if s.next < len(s.Rolls) {
		roll := s.Rolls[s.next]
		s.next++
		return roll
	}
	return (sides + 1) / 2
}
