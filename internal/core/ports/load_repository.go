// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
// Every method is scoped to a tenant; an id that exists under another tenant
// behaves exactly like a missing row.
type LoadRepository interface {
	// Add persists a new load aggregate together with its stops, items and
	// accessorial charges in the ambient transaction.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load aggregate, replacing its
	// child collections.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load with all children by id within the tenant.
	// Returns errs.ObjectNotFoundError if no such load exists for the tenant.
	Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*load.Load, error)

	// AddRate appends an immutable rate snapshot for a load.
	AddRate(ctx context.Context, tenantID kernel.UUID, loadID kernel.UUID, rate load.Rate) error

	// AddDocument attaches a document record to a load.
	AddDocument(ctx context.Context, tenantID kernel.UUID, loadID kernel.UUID, doc load.Document) error
}
