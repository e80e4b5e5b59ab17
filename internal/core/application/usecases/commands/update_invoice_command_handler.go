package commands

import (
	"context"

	"freight/internal/core/domain/model/invoice"
)

// UpdateInvoiceCommandHandler handles partial updates of an invoice.
type UpdateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewUpdateInvoiceCommandHandler creates a handler for invoice updates.
func NewUpdateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) UpdateInvoiceCommandHandler {
	return UpdateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice update command.
func (h *UpdateInvoiceCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceCommand) error {
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

	invoiceRepo := uow.InvoiceRepository()
	aggregate, err := invoiceRepo.Get(ctx, cmd.TenantCtx().TenantID(), cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = applyInvoiceChanges(aggregate, cmd.Changes()); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func applyInvoiceChanges(aggregate *invoice.Invoice, changes UpdateInvoiceChanges) error {
	if changes.InvoiceNumber != nil {
		if err := aggregate.SetInvoiceNumber(*changes.InvoiceNumber); err != nil {
			return err
		}
	}
	if changes.BilledToCustomerID != nil {
		if err := aggregate.SetBilledToCustomer(changes.BilledToCustomerID); err != nil {
			return err
		}
	}
	if changes.Amount != nil {
		if err := aggregate.SetAmount(*changes.Amount); err != nil {
			return err
		}
	}
	if changes.Currency != nil {
		if err := aggregate.SetCurrency(*changes.Currency); err != nil {
			return err
		}
	}
	if changes.Status != nil {
		if err := aggregate.SetStatus(*changes.Status); err != nil {
			return err
		}
	}
	if changes.DueDate != nil {
		aggregate.SetDueDate(changes.DueDate)
	}
	if changes.IssuedAt != nil {
		aggregate.MarkIssued(*changes.IssuedAt)
	}

	return nil
}
