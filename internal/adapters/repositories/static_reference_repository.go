package repositories

import (
	"context"
	"dispatch-toolkit/internal/domain"
)

// In-memory implementation of the ReferenceRepository port backed by the
// compiled-in tables.
type StaticReferenceRepository struct{}

func NewStaticReferenceRepository() *StaticReferenceRepository {
	return &StaticReferenceRepository{}
}

func (StaticReferenceRepository) ListStates(ctx context.Context) ([]domain.StateEntry, error) {
	return domain.States(), nil
}

func (StaticReferenceRepository) AxleLimits(ctx context.Context) (domain.AxleLimits, error) {
	return domain.DefaultAxleLimits(), nil
}

func (StaticReferenceRepository) SampleDocument(ctx context.Context) (domain.DocumentRecord, error) {
	return domain.DefaultSampleDocument(), nil
}
