package random

import "sync"

// SequenceSource replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo n, so tests can script draws without caring
// about the table size.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.next%len(s.values)]
	s.next++

	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Calls reports how many draws have been made.
func (s *SequenceSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
