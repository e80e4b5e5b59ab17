package ports

import (
	"context"

	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
)

// DispatchRepository defines the persistence contract for dispatch aggregates.
type DispatchRepository interface {
	// Add persists a new dispatch.
	Add(ctx context.Context, aggregate *dispatch.Dispatch) error

	// Update persists changes to an existing dispatch.
	Update(ctx context.Context, aggregate *dispatch.Dispatch) error

	// Get retrieves a dispatch by id within the tenant.
	// Returns errs.ObjectNotFoundError if no such dispatch exists for the tenant.
	Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*dispatch.Dispatch, error)
}

// TrackingEventRepository defines the persistence contract for the append-only
// tracking event log. Events are never updated or deleted.
type TrackingEventRepository interface {
	// Add appends one event to the log.
	Add(ctx context.Context, event dispatch.TrackingEvent) error
}
