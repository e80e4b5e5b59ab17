package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateInvoiceCommandIsNotConstructed = errors.New(
		"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
	)
	ErrInvoiceNumberIsRequired = errors.New("invoiceNumber is required")
	ErrAmountIsNegative        = errors.New("amount cannot be negative")
)

// CreateInvoiceCommand represents a request to bill a load. Bill-to and
// currency default from the load when not supplied.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	tenantCtx          kernel.TenantContext
	invoiceID          kernel.UUID
	loadID             kernel.UUID
	invoiceNumber      string
	billedToCustomerID *kernel.UUID
	amount             decimal.Decimal
	currency           string
	dueDate            *time.Time

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to invoice a load. An empty
// currency means "use the load's currency".
func NewCreateInvoiceCommand(
	tenantCtx kernel.TenantContext,
	invoiceID kernel.UUID,
	loadID kernel.UUID,
	invoiceNumber string,
	billedToCustomerID *kernel.UUID,
	amount decimal.Decimal,
	currency string,
	dueDate *time.Time,
) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		invoiceID.Validate(),
		loadID.Validate(),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}
	if invoiceNumber == "" {
		return CreateInvoiceCommand{}, ErrInvoiceNumberIsRequired
	}
	if amount.IsNegative() {
		return CreateInvoiceCommand{}, ErrAmountIsNegative
	}

	cmd.tenantCtx = tenantCtx
	cmd.invoiceID = invoiceID
	cmd.loadID = loadID
	cmd.invoiceNumber = invoiceNumber
	cmd.billedToCustomerID = billedToCustomerID
	cmd.amount = amount
	cmd.currency = currency
	cmd.dueDate = dueDate

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c CreateInvoiceCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// InvoiceID returns the identifier for the new invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// LoadID returns the billed load.
func (c CreateInvoiceCommand) LoadID() kernel.UUID {
	return c.loadID
}

// InvoiceNumber returns the tenant-unique invoice number.
func (c CreateInvoiceCommand) InvoiceNumber() string {
	return c.invoiceNumber
}

// BilledToCustomerID returns the explicit bill-to customer, if supplied.
func (c CreateInvoiceCommand) BilledToCustomerID() *kernel.UUID {
	return c.billedToCustomerID
}

// Amount returns the invoiced amount.
func (c CreateInvoiceCommand) Amount() decimal.Decimal {
	return c.amount
}

// Currency returns the explicit currency, or "" to default from the load.
func (c CreateInvoiceCommand) Currency() string {
	return c.currency
}

// DueDate returns when payment is due, if set.
func (c CreateInvoiceCommand) DueDate() *time.Time {
	return c.dueDate
}
