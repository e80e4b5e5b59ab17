package commands

import (
	"context"

	"freight/internal/core/domain/model/load"
)

// CreateLoadCommandHandler handles the business logic for load creation.
// The load and all of its children are persisted in one transaction: if any
// child fails validation, nothing is written.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCreateLoadCommandHandler creates a handler for load creation operations.
func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load creation command.
func (h *CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	stops, err := buildStops(cmd.Stops())
	if err != nil {
		return err
	}

	aggregate, err := load.NewLoad(cmd.LoadID(), cmd.TenantCtx().TenantID(),
		cmd.ReferenceNumber(), cmd.Mode(), cmd.EquipmentType(), stops)
	if err != nil {
		return err
	}

	if err = h.applyOptions(aggregate, cmd.Options()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *CreateLoadCommandHandler) applyOptions(aggregate *load.Load, opts CreateLoadOptions) error {
	if err := aggregate.SetCustomer(opts.CustomerID, opts.CustomerReference); err != nil {
		return err
	}
	if err := aggregate.SetDeclaredTotals(opts.TotalWeight, opts.TotalVolume, opts.Pieces); err != nil {
		return err
	}
	if opts.Currency != "" {
		if err := aggregate.SetCurrency(opts.Currency); err != nil {
			return err
		}
	}

	items, err := buildItems(opts.Items)
	if err != nil {
		return err
	}
	aggregate.AttachItems(items)

	accessorials, err := buildAccessorials(opts.Accessorials)
	if err != nil {
		return err
	}
	aggregate.AttachAccessorials(accessorials)

	return nil
}
