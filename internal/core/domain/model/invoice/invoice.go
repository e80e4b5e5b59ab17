package invoice

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")
)

// Invoice bills a customer for a load. The invoice number is unique per
// tenant; bill-to and currency default from the load at creation time and
// are plain fields afterwards.
type Invoice struct {
	id                 kernel.UUID
	tenantID           kernel.UUID
	loadID             kernel.UUID
	invoiceNumber      string
	billedToCustomerID *kernel.UUID
	amount             decimal.Decimal
	currency           string
	status             Status
	dueDate            *time.Time
	issuedAt           *time.Time

	isConstructed bool
}

// NewInvoice creates an invoice in DRAFT status.
func NewInvoice(
	id kernel.UUID,
	tenantID kernel.UUID,
	loadID kernel.UUID,
	invoiceNumber string,
	billedToCustomerID *kernel.UUID,
	amount decimal.Decimal,
	currency string,
	dueDate *time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		status:        StatusDraft,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setTenantID(tenantID),
		inv.setLoadID(loadID),
		inv.SetInvoiceNumber(invoiceNumber),
		inv.SetBilledToCustomer(billedToCustomerID),
		inv.SetAmount(amount),
		inv.SetCurrency(currency),
	); err != nil {
		return nil, err
	}

	inv.dueDate = dueDate

	return inv, nil
}

// RestoreInvoiceParams carries every persisted field needed to rehydrate an
// Invoice.
type RestoreInvoiceParams struct {
	ID                 kernel.UUID
	TenantID           kernel.UUID
	LoadID             kernel.UUID
	InvoiceNumber      string
	BilledToCustomerID *kernel.UUID
	Amount             decimal.Decimal
	Currency           string
	Status             Status
	DueDate            *time.Time
	IssuedAt           *time.Time
}

// RestoreInvoice rebuilds an invoice from persistence.
func RestoreInvoice(p RestoreInvoiceParams) (*Invoice, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.TenantID.Validate(),
		p.LoadID.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Invoice{
		id:                 p.ID,
		tenantID:           p.TenantID,
		loadID:             p.LoadID,
		invoiceNumber:      p.InvoiceNumber,
		billedToCustomerID: p.BilledToCustomerID,
		amount:             p.Amount,
		currency:           p.Currency,
		status:             p.Status,
		dueDate:            p.DueDate,
		issuedAt:           p.IssuedAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Invoice was created through a constructor.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by identifier.
func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the invoice's identifier.
func (i *Invoice) ID() kernel.UUID { return i.id }

// TenantID returns the owning tenant.
func (i *Invoice) TenantID() kernel.UUID { return i.tenantID }

// LoadID returns the billed load.
func (i *Invoice) LoadID() kernel.UUID { return i.loadID }

// InvoiceNumber returns the tenant-unique invoice number.
func (i *Invoice) InvoiceNumber() string { return i.invoiceNumber }

// BilledToCustomer returns the bill-to customer, if any.
func (i *Invoice) BilledToCustomer() *kernel.UUID { return i.billedToCustomerID }

// Amount returns the invoiced amount.
func (i *Invoice) Amount() decimal.Decimal { return i.amount }

// Currency returns the ISO currency code.
func (i *Invoice) Currency() string { return i.currency }

// Status returns the current billing status.
func (i *Invoice) Status() Status { return i.status }

// DueDate returns when payment is due, if set.
func (i *Invoice) DueDate() *time.Time { return i.dueDate }

// IssuedAt returns when the invoice was issued, if it was.
func (i *Invoice) IssuedAt() *time.Time { return i.issuedAt }

// SetInvoiceNumber replaces the invoice number. Uniqueness per tenant is a
// persistence concern.
func (i *Invoice) SetInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return errs.NewValueIsRequiredError("invoiceNumber")
	}
	i.invoiceNumber = invoiceNumber
	return nil
}

// SetBilledToCustomer replaces the bill-to customer.
func (i *Invoice) SetBilledToCustomer(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("billedToCustomerId", err)
		}
	}
	i.billedToCustomerID = customerID
	return nil
}

// SetAmount replaces the invoiced amount. Negative amounts are refused.
func (i *Invoice) SetAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("amount cannot be negative"))
	}
	i.amount = amount
	return nil
}

// SetCurrency replaces the ISO currency code.
func (i *Invoice) SetCurrency(currency string) error {
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			errors.New("currency must be a 3-letter code"))
	}
	i.currency = currency
	return nil
}

// SetStatus replaces the billing status. There is no transition guard;
// callers own valid DRAFT/SENT/PAID/VOID progressions.
func (i *Invoice) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}

// SetDueDate replaces the payment due date.
func (i *Invoice) SetDueDate(dueDate *time.Time) {
	i.dueDate = dueDate
}

// MarkIssued stamps when the invoice was issued.
func (i *Invoice) MarkIssued(at time.Time) {
	i.issuedAt = &at
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tenantId", err)
	}
	i.tenantID = tenantID
	return nil
}

func (i *Invoice) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	i.loadID = loadID
	return nil
}
