package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateInvoiceCommandIsNotConstructed = errors.New(
	"UpdateInvoiceCommand must be created via NewUpdateInvoiceCommand constructor",
)

// UpdateInvoiceChanges lists the fields a partial invoice update may touch.
// Nil fields are left unchanged. Status changes carry no transition guard.
type UpdateInvoiceChanges struct {
	InvoiceNumber      *string
	BilledToCustomerID *kernel.UUID
	Amount             *decimal.Decimal
	Currency           *string
	Status             *invoice.Status
	DueDate            *time.Time
	IssuedAt           *time.Time
}

// UpdateInvoiceCommand represents a partial update of an existing invoice.
type UpdateInvoiceCommand struct { //nolint:recvcheck //using for validation
	tenantCtx kernel.TenantContext
	invoiceID kernel.UUID
	changes   UpdateInvoiceChanges

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceCommand creates a command to update an invoice.
func NewUpdateInvoiceCommand(
	tenantCtx kernel.TenantContext,
	invoiceID kernel.UUID,
	changes UpdateInvoiceChanges,
) (UpdateInvoiceCommand, error) {
	cmd := UpdateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		invoiceID.Validate(),
	); err != nil {
		return UpdateInvoiceCommand{}, err
	}

	cmd.tenantCtx = tenantCtx
	cmd.invoiceID = invoiceID
	cmd.changes = changes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c UpdateInvoiceCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// InvoiceID returns the identifier of the invoice to update.
func (c UpdateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Changes returns the partial change set.
func (c UpdateInvoiceCommand) Changes() UpdateInvoiceChanges {
	return c.changes
}
