package commands

import (
	"context"

	"freight/internal/core/domain/model/invoice"
)

// CreateInvoiceCommandHandler handles invoice creation. The billed load must
// exist under the tenant; bill-to and currency default from it.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice creation command. A duplicate invoice number
// within the tenant surfaces as errs.ConflictError from the repository.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) error {
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

	billedLoad, err := uow.LoadRepository().Get(ctx, cmd.TenantCtx().TenantID(), cmd.LoadID())
	if err != nil {
		return err
	}

	billedTo := cmd.BilledToCustomerID()
	if billedTo == nil {
		billedTo = billedLoad.CustomerID()
	}
	currency := cmd.Currency()
	if currency == "" {
		currency = billedLoad.Currency()
	}

	aggregate, err := invoice.NewInvoice(cmd.InvoiceID(), cmd.TenantCtx().TenantID(),
		cmd.LoadID(), cmd.InvoiceNumber(), billedTo, cmd.Amount(), currency, cmd.DueDate())
	if err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
