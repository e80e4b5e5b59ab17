package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// ListInvoicesQueryHandler retrieves a tenant's invoices.
type ListInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewListInvoicesQueryHandler creates a handler for invoice listing queries.
func NewListInvoicesQueryHandler(db *gorm.DB) ListInvoicesQueryHandler {
	return ListInvoicesQueryHandler{db: db}
}

// Handle executes the query. Rows are newest first.
func (h ListInvoicesQueryHandler) Handle(ctx context.Context, query ListInvoicesQuery) ([]InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			load_id,
			invoice_number,
			billed_to_customer_id,
			amount,
			currency,
			status,
			due_date,
			issued_at,
			created_at
		FROM invoices
		WHERE tenant_id = ?`
	args := []any{query.TenantCtx().TenantID().Bytes()}

	if query.Status() != "" {
		sql += " AND status = ?"
		args = append(args, query.Status())
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]InvoiceResponse, 0)
	for rows.Next() {
		var row InvoiceResponse
		var id, loadID uuid.UUID
		var billedTo uuid.NullUUID
		var createdAt time.Time

		err = rows.Scan(&id, &loadID, &row.InvoiceNumber, &billedTo, &row.Amount,
			&row.Currency, &row.Status, &row.DueDate, &row.IssuedAt, &createdAt)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.LoadID, err = kernel.UUIDFromBytes(loadID[:]); err != nil {
			return nil, err
		}
		if row.BilledToCustomerID, err = optionalUUID(billedTo); err != nil {
			return nil, err
		}
		row.CreatedAt = createdAt
		invoices = append(invoices, row)
	}

	return invoices, rows.Err()
}
