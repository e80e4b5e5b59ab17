package commands

import (
	"context"
	"time"
)

// RejectDispatchCommandHandler handles dispatch rejection. Only a dispatch
// in CREATED status can be rejected; REJECTED is terminal.
type RejectDispatchCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewRejectDispatchCommandHandler creates a handler for dispatch rejection.
func NewRejectDispatchCommandHandler(uowFactory DispatchUoWFactory) RejectDispatchCommandHandler {
	return RejectDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch rejection command.
func (h *RejectDispatchCommandHandler) Handle(ctx context.Context, cmd RejectDispatchCommand) error {
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

	dispatchRepo := uow.DispatchRepository()
	aggregate, err := dispatchRepo.Get(ctx, cmd.TenantCtx().TenantID(), cmd.DispatchID())
	if err != nil {
		return err
	}

	if err = aggregate.Reject(time.Now().UTC()); err != nil {
		return err
	}

	if err = dispatchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
