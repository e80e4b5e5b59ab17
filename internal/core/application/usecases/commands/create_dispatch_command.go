package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateDispatchCommandIsNotConstructed = errors.New(
	"CreateDispatchCommand must be created via NewCreateDispatchCommand constructor",
)

// CreateDispatchCommand represents a request to dispatch a load to a driver
// and/or carrier.
type CreateDispatchCommand struct { //nolint:recvcheck //using for validation
	tenantCtx    kernel.TenantContext
	dispatchID   kernel.UUID
	loadID       kernel.UUID
	driverID     *kernel.UUID
	carrierID    *kernel.UUID
	plannedStart *time.Time
	plannedEnd   *time.Time
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateDispatchCommand creates a command to dispatch a load.
func NewCreateDispatchCommand(
	tenantCtx kernel.TenantContext,
	dispatchID kernel.UUID,
	loadID kernel.UUID,
	driverID *kernel.UUID,
	carrierID *kernel.UUID,
	plannedStart *time.Time,
	plannedEnd *time.Time,
	notes string,
) (CreateDispatchCommand, error) {
	cmd := CreateDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		dispatchID.Validate(),
		loadID.Validate(),
	); err != nil {
		return CreateDispatchCommand{}, err
	}

	cmd.tenantCtx = tenantCtx
	cmd.dispatchID = dispatchID
	cmd.loadID = loadID
	cmd.driverID = driverID
	cmd.carrierID = carrierID
	cmd.plannedStart = plannedStart
	cmd.plannedEnd = plannedEnd
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDispatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateDispatchCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c CreateDispatchCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// DispatchID returns the identifier for the new dispatch.
func (c CreateDispatchCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// LoadID returns the load to dispatch.
func (c CreateDispatchCommand) LoadID() kernel.UUID {
	return c.loadID
}

// DriverID returns the assigned driver, if any.
func (c CreateDispatchCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// CarrierID returns the assigned carrier, if any.
func (c CreateDispatchCommand) CarrierID() *kernel.UUID {
	return c.carrierID
}

// PlannedStart returns the planned start time, if set.
func (c CreateDispatchCommand) PlannedStart() *time.Time {
	return c.plannedStart
}

// PlannedEnd returns the planned end time, if set.
func (c CreateDispatchCommand) PlannedEnd() *time.Time {
	return c.plannedEnd
}

// Notes returns the free-form dispatch notes.
func (c CreateDispatchCommand) Notes() string {
	return c.notes
}
