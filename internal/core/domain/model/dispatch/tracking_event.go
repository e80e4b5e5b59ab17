package dispatch

import (
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// EventType classifies a tracking event.
type EventType int

const (
	EventUnknown EventType = iota

	// EventStatusChange is appended whenever a dispatch status is recorded.
	EventStatusChange

	// EventArrival marks arrival at a stop.
	EventArrival

	// EventDeparture marks departure from a stop.
	EventDeparture

	// EventException marks an operational problem (breakdown, refusal, ...).
	EventException

	// EventDelay marks a schedule slip without an exception.
	EventDelay
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventUnknown:      "UNKNOWN",
		EventStatusChange: "STATUS_CHANGE",
		EventArrival:      "ARRIVAL",
		EventDeparture:    "DEPARTURE",
		EventException:    "EXCEPTION",
		EventDelay:        "DELAY",
	}
}

// EventTypeFromString parses the wire representation of an event type.
func EventTypeFromString(s string) (EventType, error) {
	for et, str := range getEventTypeStrings() {
		if et != EventUnknown && str == s {
			return et, nil
		}
	}
	return EventUnknown, errs.NewValueIsInvalidErrorWithCause("eventType",
		fmt.Errorf("%q is not a valid tracking event type", s))
}

// String returns the wire representation of the event type.
func (e EventType) String() string {
	if str, ok := getEventTypeStrings()[e]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the event type is one of the defined values.
func (e EventType) Validate() error {
	switch e {
	case EventStatusChange, EventArrival, EventDeparture, EventException, EventDelay:
		return nil
	case EventUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("eventType",
		fmt.Errorf("%d is not a valid tracking event type", e))
}

// TrackingEvent is one immutable entry in a load's audit trail. Events are
// appended and never updated or deleted.
type TrackingEvent struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	loadID     kernel.UUID
	dispatchID *kernel.UUID
	eventType  EventType
	point      *kernel.GeoPoint
	notes      string
	timestamp  time.Time
	createdBy  kernel.UUID
}

// NewTrackingEvent creates a validated event. The timestamp is fixed at
// creation.
func NewTrackingEvent(
	id kernel.UUID,
	tenantID kernel.UUID,
	loadID kernel.UUID,
	dispatchID *kernel.UUID,
	eventType EventType,
	point *kernel.GeoPoint,
	notes string,
	timestamp time.Time,
	createdBy kernel.UUID,
) (TrackingEvent, error) {
	if err := id.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if err := tenantID.Validate(); err != nil {
		return TrackingEvent{}, errs.NewValueIsRequiredErrorWithCause("tenantId", err)
	}
	if err := loadID.Validate(); err != nil {
		return TrackingEvent{}, errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	if dispatchID != nil {
		if err := dispatchID.Validate(); err != nil {
			return TrackingEvent{}, errs.NewValueIsInvalidErrorWithCause("dispatchId", err)
		}
	}
	if err := eventType.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if timestamp.IsZero() {
		return TrackingEvent{}, errs.NewValueIsRequiredError("timestamp")
	}
	if err := createdBy.Validate(); err != nil {
		return TrackingEvent{}, errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}

	return TrackingEvent{
		id:         id,
		tenantID:   tenantID,
		loadID:     loadID,
		dispatchID: dispatchID,
		eventType:  eventType,
		point:      point,
		notes:      notes,
		timestamp:  timestamp,
		createdBy:  createdBy,
	}, nil
}

// ID returns the event's identifier.
func (e TrackingEvent) ID() kernel.UUID { return e.id }

// TenantID returns the owning tenant.
func (e TrackingEvent) TenantID() kernel.UUID { return e.tenantID }

// LoadID returns the load this event belongs to.
func (e TrackingEvent) LoadID() kernel.UUID { return e.loadID }

// DispatchID returns the originating dispatch, if any.
func (e TrackingEvent) DispatchID() *kernel.UUID { return e.dispatchID }

// EventType returns the event classification.
func (e TrackingEvent) EventType() EventType { return e.eventType }

// Point returns the reported coordinates, if any.
func (e TrackingEvent) Point() *kernel.GeoPoint { return e.point }

// Notes returns the free-form note.
func (e TrackingEvent) Notes() string { return e.notes }

// Timestamp returns when the event occurred. Never mutated.
func (e TrackingEvent) Timestamp() time.Time { return e.timestamp }

// CreatedBy returns the recording user's identifier.
func (e TrackingEvent) CreatedBy() kernel.UUID { return e.createdBy }
