package commands

import (
	"context"

	"freight/internal/core/domain/model/load"
)

// UpdateLoadCommandHandler handles partial updates of a load. Only supplied
// fields change; a supplied stop set fully replaces the existing one after
// re-validation.
type UpdateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewUpdateLoadCommandHandler creates a handler for load update operations.
func NewUpdateLoadCommandHandler(uowFactory LoadUoWFactory) UpdateLoadCommandHandler {
	return UpdateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load update command.
func (h *UpdateLoadCommandHandler) Handle(ctx context.Context, cmd UpdateLoadCommand) error {
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

	if err = applyLoadChanges(aggregate, cmd.Changes()); err != nil {
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

func applyLoadChanges(aggregate *load.Load, changes UpdateLoadChanges) error {
	if changes.ReferenceNumber != nil {
		if err := aggregate.SetReferenceNumber(*changes.ReferenceNumber); err != nil {
			return err
		}
	}
	if changes.CustomerID != nil || changes.CustomerReference != nil {
		customerID := aggregate.CustomerID()
		if changes.CustomerID != nil {
			customerID = changes.CustomerID
		}
		customerReference := aggregate.CustomerReference()
		if changes.CustomerReference != nil {
			customerReference = *changes.CustomerReference
		}
		if err := aggregate.SetCustomer(customerID, customerReference); err != nil {
			return err
		}
	}
	if changes.Mode != nil {
		if err := aggregate.SetMode(*changes.Mode); err != nil {
			return err
		}
	}
	if changes.EquipmentType != nil {
		if err := aggregate.SetEquipmentType(*changes.EquipmentType); err != nil {
			return err
		}
	}
	if changes.Status != nil {
		if err := aggregate.ChangeStatus(*changes.Status); err != nil {
			return err
		}
	}
	if changes.Currency != nil {
		if err := aggregate.SetCurrency(*changes.Currency); err != nil {
			return err
		}
	}
	if changes.Totals != nil {
		t := changes.Totals
		if err := aggregate.SetDeclaredTotals(t.TotalWeight, t.TotalVolume, t.Pieces); err != nil {
			return err
		}
	}
	if changes.Stops != nil {
		stops, err := buildStops(changes.Stops)
		if err != nil {
			return err
		}
		if err = aggregate.ReplaceStops(stops); err != nil {
			return err
		}
	}
	if changes.Items != nil {
		items, err := buildItems(changes.Items)
		if err != nil {
			return err
		}
		aggregate.AttachItems(items)
	}
	if changes.Accessorials != nil {
		accessorials, err := buildAccessorials(changes.Accessorials)
		if err != nil {
			return err
		}
		aggregate.AttachAccessorials(accessorials)
	}

	return nil
}
