package commands

import (
	"context"
)

// CancelLoadCommandHandler handles load cancellation. Cancelling an already
// cancelled load succeeds without touching the row; open dispatches and draft
// invoices of the load are left as they are.
type CancelLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCancelLoadCommandHandler creates a handler for load cancellation.
func NewCancelLoadCommandHandler(uowFactory LoadUoWFactory) CancelLoadCommandHandler {
	return CancelLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load cancellation command.
func (h *CancelLoadCommandHandler) Handle(ctx context.Context, cmd CancelLoadCommand) error {
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

	loadRepo := uow.LoadRepository()
	aggregate, err := loadRepo.Get(ctx, cmd.TenantCtx().TenantID(), cmd.LoadID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
