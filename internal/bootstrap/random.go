package bootstrap

import (
	"dispatch-toolkit/internal/adapters/random"
	"dispatch-toolkit/internal/config"
	"dispatch-toolkit/internal/ports"
)

// RandomSource returns a seeded generator when RANDOM_SEED is configured,
// otherwise the process-wide one.
func RandomSource(cfg config.RandomConfig) ports.RandomSource {
	if cfg.Seeded {
		return random.NewSeededSource(cfg.Seed)
	}
	return random.GlobalSource{}
}
