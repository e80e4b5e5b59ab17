package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// ListTrackingEventsQueryHandler retrieves a load's tracking events.
type ListTrackingEventsQueryHandler struct {
	db *gorm.DB
}

// NewListTrackingEventsQueryHandler creates a handler for audit trail queries.
func NewListTrackingEventsQueryHandler(db *gorm.DB) ListTrackingEventsQueryHandler {
	return ListTrackingEventsQueryHandler{db: db}
}

// Handle executes the query. Events come back oldest first, the order they
// were reported.
func (h ListTrackingEventsQueryHandler) Handle(ctx context.Context, query ListTrackingEventsQuery) ([]TrackingEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			dispatch_id,
			event_type,
			latitude,
			longitude,
			notes,
			timestamp,
			created_by
		FROM tracking_events
		WHERE tenant_id = ? AND load_id = ?
		ORDER BY timestamp
	`, query.TenantCtx().TenantID().Bytes(), query.LoadID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEventResponse, 0)
	for rows.Next() {
		var event TrackingEventResponse
		var id, createdBy uuid.UUID
		var dispatchID uuid.NullUUID
		var timestamp time.Time

		err = rows.Scan(&id, &dispatchID, &event.EventType, &event.Latitude,
			&event.Longitude, &event.Notes, &timestamp, &createdBy)
		if err != nil {
			return nil, err
		}

		if event.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if event.DispatchID, err = optionalUUID(dispatchID); err != nil {
			return nil, err
		}
		if event.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
			return nil, err
		}
		event.Timestamp = timestamp
		events = append(events, event)
	}

	return events, rows.Err()
}
