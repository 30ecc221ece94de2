package random

import (
	"math/rand/v2"
	"sync"
)

// GlobalSource draws from the process-wide math/rand/v2 generator.
// It has no seeding contract and is safe for concurrent use.
type GlobalSource struct{}

func (GlobalSource) IntN(n int) int { return rand.IntN(n) }

// SeededSource is a reproducible generator for demos and replays.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
