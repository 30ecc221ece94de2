package services

import (
	"context"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/platform/obs"
	"dispatch-toolkit/internal/ports"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// LoadCatalog reads the reference data once and freezes it into a Catalog.
// A nil repository yields the compiled-in defaults.
func LoadCatalog(ctx context.Context, repo ports.ReferenceRepository, logger *zap.Logger) (_ domain.Catalog, err error) {
	defer obs.Time(ctx, logger, "catalog.Load")(&err)

	if repo == nil {
		return domain.DefaultCatalog(), nil
	}

	states, err := repo.ListStates(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: list states: %w", err)
	}
	if len(states) == 0 {
		return domain.Catalog{}, errors.New("load catalog: state table is empty (run dbtool to seed it)")
	}

	limits, err := repo.AxleLimits(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: axle limits: %w", err)
	}

	sample, err := repo.SampleDocument(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: sample document: %w", err)
	}

	catalog, err := domain.NewCatalog(states, limits, sample)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}

	return catalog, nil
}
