package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

// CreateDispatchCommandHandler handles dispatch creation. The load must
// exist under the tenant and must not be cancelled.
type CreateDispatchCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCreateDispatchCommandHandler creates a handler for dispatch creation.
func NewCreateDispatchCommandHandler(uowFactory DispatchUoWFactory) CreateDispatchCommandHandler {
	return CreateDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch creation command.
func (h *CreateDispatchCommandHandler) Handle(ctx context.Context, cmd CreateDispatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dispatchedLoad, err := uow.LoadRepository().Get(ctx, cmd.TenantCtx().TenantID(), cmd.LoadID())
	if err != nil {
		return err
	}
	if dispatchedLoad.Status() == load.StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("loadId",
			errors.New("a cancelled load cannot be dispatched"))
	}

	aggregate, err := dispatch.NewDispatch(cmd.DispatchID(), cmd.TenantCtx().TenantID(),
		cmd.LoadID(), cmd.DriverID(), cmd.CarrierID(), cmd.PlannedStart(), cmd.PlannedEnd(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.DispatchRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
