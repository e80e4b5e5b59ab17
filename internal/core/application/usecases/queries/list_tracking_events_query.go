package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListTrackingEventsQueryIsNotConstructed = errors.New(
	"ListTrackingEventsQuery must be created via NewListTrackingEventsQuery constructor",
)

// ListTrackingEventsQuery retrieves a load's audit trail in the order the
// events occurred.
type ListTrackingEventsQuery struct {
	tenantCtx kernel.TenantContext
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewListTrackingEventsQuery creates a query for a load's tracking events.
func NewListTrackingEventsQuery(tenantCtx kernel.TenantContext, loadID kernel.UUID) (ListTrackingEventsQuery, error) {
	if err := errors.Join(
		tenantCtx.Validate(),
		loadID.Validate(),
	); err != nil {
		return ListTrackingEventsQuery{}, err
	}

	return ListTrackingEventsQuery{
		tenantCtx: tenantCtx,
		loadID:    loadID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrListTrackingEventsQueryIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (q ListTrackingEventsQuery) TenantCtx() kernel.TenantContext { return q.tenantCtx }

// LoadID returns the load whose trail is requested.
func (q ListTrackingEventsQuery) LoadID() kernel.UUID { return q.loadID }

// TrackingEventResponse is one entry of a load's audit trail.
type TrackingEventResponse struct {
	ID         kernel.UUID
	DispatchID *kernel.UUID
	EventType  string
	Latitude   *float64
	Longitude  *float64
	Notes      string
	Timestamp  time.Time
	CreatedBy  kernel.UUID
}
