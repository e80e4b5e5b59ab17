package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCancelLoadCommandIsNotConstructed = errors.New(
	"CancelLoadCommand must be created via NewCancelLoadCommand constructor",
)

// CancelLoadCommand represents a request to cancel a load. Cancellation is a
// soft delete: the load and its children stay on record for audit.
type CancelLoadCommand struct { //nolint:recvcheck //using for validation
	tenantCtx kernel.TenantContext
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelLoadCommand creates a command to cancel a load.
func NewCancelLoadCommand(tenantCtx kernel.TenantContext, loadID kernel.UUID) (CancelLoadCommand, error) {
	cmd := CancelLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		loadID.Validate(),
	); err != nil {
		return CancelLoadCommand{}, err
	}

	cmd.tenantCtx = tenantCtx
	cmd.loadID = loadID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelLoadCommand) Validate() error {
	return c.guard.Validate(ErrCancelLoadCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c CancelLoadCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// LoadID returns the identifier of the load to cancel.
func (c CancelLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}
