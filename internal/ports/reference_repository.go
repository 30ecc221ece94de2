package ports

import (
	"context"
	"dispatch-toolkit/internal/domain"
)

// Port: a read-only boundary for the reference data the widgets consume.
type ReferenceRepository interface {
	// Retrieve the state table in display order.
	ListStates(ctx context.Context) ([]domain.StateEntry, error)
	// Retrieve the legal axle weight limits.
	AxleLimits(ctx context.Context) (domain.AxleLimits, error)
	// Retrieve the demo document record.
	SampleDocument(ctx context.Context) (domain.DocumentRecord, error)
}
