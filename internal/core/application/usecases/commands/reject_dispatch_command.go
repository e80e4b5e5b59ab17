package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRejectDispatchCommandIsNotConstructed = errors.New(
	"RejectDispatchCommand must be created via NewRejectDispatchCommand constructor",
)

// RejectDispatchCommand represents a driver/carrier declining an assignment.
type RejectDispatchCommand struct { //nolint:recvcheck //using for validation
	tenantCtx  kernel.TenantContext
	dispatchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectDispatchCommand creates a command to reject a dispatch.
func NewRejectDispatchCommand(tenantCtx kernel.TenantContext, dispatchID kernel.UUID) (RejectDispatchCommand, error) {
	cmd := RejectDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		dispatchID.Validate(),
	); err != nil {
		return RejectDispatchCommand{}, err
	}

	cmd.tenantCtx = tenantCtx
	cmd.dispatchID = dispatchID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDispatchCommand) Validate() error {
	return c.guard.Validate(ErrRejectDispatchCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c RejectDispatchCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// DispatchID returns the dispatch to reject.
func (c RejectDispatchCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}
