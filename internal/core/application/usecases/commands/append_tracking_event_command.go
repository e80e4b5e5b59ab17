package commands

import (
	"errors"

	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAppendTrackingEventCommandIsNotConstructed = errors.New(
	"AppendTrackingEventCommand must be created via NewAppendTrackingEventCommand constructor",
)

// AppendTrackingEventCommand represents a manual tracking event report
// (arrival, departure, exception, delay) against a load.
type AppendTrackingEventCommand struct { //nolint:recvcheck //using for validation
	tenantCtx  kernel.TenantContext
	loadID     kernel.UUID
	dispatchID *kernel.UUID
	eventType  dispatch.EventType
	point      *kernel.GeoPoint
	notes      string

	guard guard.ConstructorGuard
}

// NewAppendTrackingEventCommand creates a command to append a tracking event.
func NewAppendTrackingEventCommand(
	tenantCtx kernel.TenantContext,
	loadID kernel.UUID,
	dispatchID *kernel.UUID,
	eventType dispatch.EventType,
	point *kernel.GeoPoint,
	notes string,
) (AppendTrackingEventCommand, error) {
	cmd := AppendTrackingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		loadID.Validate(),
		eventType.Validate(),
	); err != nil {
		return AppendTrackingEventCommand{}, err
	}

	cmd.tenantCtx = tenantCtx
	cmd.loadID = loadID
	cmd.dispatchID = dispatchID
	cmd.eventType = eventType
	cmd.point = point
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingEventCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c AppendTrackingEventCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// LoadID returns the load the event belongs to.
func (c AppendTrackingEventCommand) LoadID() kernel.UUID {
	return c.loadID
}

// DispatchID returns the originating dispatch, if any.
func (c AppendTrackingEventCommand) DispatchID() *kernel.UUID {
	return c.dispatchID
}

// EventType returns the event classification.
func (c AppendTrackingEventCommand) EventType() dispatch.EventType {
	return c.eventType
}

// Point returns the reported coordinates, if any.
func (c AppendTrackingEventCommand) Point() *kernel.GeoPoint {
	return c.point
}

// Notes returns the free-form note.
func (c AppendTrackingEventCommand) Notes() string {
	return c.notes
}
