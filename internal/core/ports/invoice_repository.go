package ports

import (
	"context"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
type InvoiceRepository interface {
	// Add persists a new invoice. A duplicate invoice number within the
	// tenant surfaces as errs.ConflictError.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by id within the tenant.
	// Returns errs.ObjectNotFoundError if no such invoice exists for the tenant.
	Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*invoice.Invoice, error)
}
