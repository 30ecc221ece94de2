package ports

// Source of uniform random integers used by the quiz draw and the mistake
// injector. Implementations must be safe for concurrent use when shared.
type RandomSource interface {
	// Return a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}
