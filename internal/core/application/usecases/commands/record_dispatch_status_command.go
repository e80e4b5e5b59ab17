package commands

import (
	"errors"

	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRecordDispatchStatusCommandIsNotConstructed = errors.New(
	"RecordDispatchStatusCommand must be created via NewRecordDispatchStatusCommand constructor",
)

// RecordDispatchStatusCommand represents a progress update of a dispatch.
// The matching STATUS_CHANGE tracking event is appended in the same
// transaction.
type RecordDispatchStatusCommand struct { //nolint:recvcheck //using for validation
	tenantCtx  kernel.TenantContext
	dispatchID kernel.UUID
	next       dispatch.Status
	point      *kernel.GeoPoint
	notes      string

	guard guard.ConstructorGuard
}

// NewRecordDispatchStatusCommand creates a command to record a dispatch
// progress status. The optional point is carried onto the STATUS_CHANGE
// tracking event.
func NewRecordDispatchStatusCommand(
	tenantCtx kernel.TenantContext,
	dispatchID kernel.UUID,
	next dispatch.Status,
	point *kernel.GeoPoint,
	notes string,
) (RecordDispatchStatusCommand, error) {
	cmd := RecordDispatchStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		dispatchID.Validate(),
		next.Validate(),
	); err != nil {
		return RecordDispatchStatusCommand{}, err
	}

	cmd.tenantCtx = tenantCtx
	cmd.dispatchID = dispatchID
	cmd.next = next
	cmd.point = point
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDispatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrRecordDispatchStatusCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c RecordDispatchStatusCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// DispatchID returns the dispatch to update.
func (c RecordDispatchStatusCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// Next returns the requested status.
func (c RecordDispatchStatusCommand) Next() dispatch.Status {
	return c.next
}

// Point returns the reported coordinates, if any.
func (c RecordDispatchStatusCommand) Point() *kernel.GeoPoint {
	return c.point
}

// Notes returns the free-form note for the tracking event.
func (c RecordDispatchStatusCommand) Notes() string {
	return c.notes
}
