package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListInvoicesQueryIsNotConstructed = errors.New(
	"ListInvoicesQuery must be created via NewListInvoicesQuery constructor",
)

// ListInvoicesQuery retrieves the tenant's invoices, newest first, with an
// optional status filter.
type ListInvoicesQuery struct {
	tenantCtx kernel.TenantContext
	status    string

	guard guard.ConstructorGuard
}

// NewListInvoicesQuery creates a query for the tenant's invoices.
func NewListInvoicesQuery(tenantCtx kernel.TenantContext, status string) (ListInvoicesQuery, error) {
	if err := tenantCtx.Validate(); err != nil {
		return ListInvoicesQuery{}, err
	}

	return ListInvoicesQuery{
		tenantCtx: tenantCtx,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrListInvoicesQueryIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (q ListInvoicesQuery) TenantCtx() kernel.TenantContext { return q.tenantCtx }

// Status returns the optional status filter, or "".
func (q ListInvoicesQuery) Status() string { return q.status }

// InvoiceResponse is one row of an invoice listing.
type InvoiceResponse struct {
	ID                 kernel.UUID
	LoadID             kernel.UUID
	InvoiceNumber      string
	BilledToCustomerID *kernel.UUID
	Amount             decimal.Decimal
	Currency           string
	Status             string
	DueDate            *time.Time
	IssuedAt           *time.Time
	CreatedAt          time.Time
}
