package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAcceptDispatchCommandIsNotConstructed = errors.New(
	"AcceptDispatchCommand must be created via NewAcceptDispatchCommand constructor",
)

// AcceptDispatchCommand represents a driver/carrier accepting an assignment.
type AcceptDispatchCommand struct { //nolint:recvcheck //using for validation
	tenantCtx  kernel.TenantContext
	dispatchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDispatchCommand creates a command to accept a dispatch.
func NewAcceptDispatchCommand(tenantCtx kernel.TenantContext, dispatchID kernel.UUID) (AcceptDispatchCommand, error) {
	cmd := AcceptDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		dispatchID.Validate(),
	); err != nil {
		return AcceptDispatchCommand{}, err
	}

	cmd.tenantCtx = tenantCtx
	cmd.dispatchID = dispatchID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDispatchCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDispatchCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c AcceptDispatchCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// DispatchID returns the dispatch to accept.
func (c AcceptDispatchCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}
