package commands

import (
	"context"
	"time"
)

// AcceptDispatchCommandHandler handles dispatch acceptance. Only a dispatch
// in CREATED status can be accepted; acceptedAt is stamped exactly once.
type AcceptDispatchCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAcceptDispatchCommandHandler creates a handler for dispatch acceptance.
func NewAcceptDispatchCommandHandler(uowFactory DispatchUoWFactory) AcceptDispatchCommandHandler {
	return AcceptDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch acceptance command.
func (h *AcceptDispatchCommandHandler) Handle(ctx context.Context, cmd AcceptDispatchCommand) error {
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

	if err = aggregate.Accept(time.Now().UTC()); err != nil {
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
