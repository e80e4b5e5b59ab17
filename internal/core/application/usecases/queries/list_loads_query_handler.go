package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// ListLoadsQueryHandler lists a tenant's loads with optional filters.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type ListLoadsQueryHandler struct {
	db *gorm.DB
}

// NewListLoadsQueryHandler creates a handler for load listing queries.
func NewListLoadsQueryHandler(db *gorm.DB) ListLoadsQueryHandler {
	return ListLoadsQueryHandler{db: db}
}

// Handle executes the listing. Results are newest first; the total counts all
// matching rows regardless of paging.
func (h ListLoadsQueryHandler) Handle(ctx context.Context, query ListLoadsQuery) (ListLoadsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListLoadsResponse{}, err
	}

	where, args := buildLoadFilter(query.TenantCtx().TenantID(), query.Filter())

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM loads "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListLoadsResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference_number,
			mode,
			equipment_type,
			status,
			rate_total,
			currency,
			created_at
		FROM loads
		`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return ListLoadsResponse{}, err
	}
	defer rows.Close()

	loads := make([]LoadSummaryResponse, 0)
	for rows.Next() {
		var row LoadSummaryResponse
		var id uuid.UUID
		var rateTotal decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(&id, &row.ReferenceNumber, &row.Mode, &row.EquipmentType,
			&row.Status, &rateTotal, &row.Currency, &createdAt)
		if err != nil {
			return ListLoadsResponse{}, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListLoadsResponse{}, idErr
		}
		row.ID = loadID
		row.RateTotal = rateTotal
		row.CreatedAt = createdAt
		loads = append(loads, row)
	}

	if err = rows.Err(); err != nil {
		return ListLoadsResponse{}, err
	}

	return ListLoadsResponse{
		Loads:    loads,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}

func buildLoadFilter(tenantID kernel.UUID, filter LoadFilter) (string, []any) {
	clauses := []string{"tenant_id = ?"}
	args := []any{tenantID.Bytes()}

	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, filter.Mode)
	}
	if filter.CustomerID != nil {
		clauses = append(clauses, "customer_id = ?")
		args = append(args, filter.CustomerID.Bytes())
	}
	if filter.ReferenceLike != "" {
		clauses = append(clauses, "reference_number ILIKE ?")
		args = append(args, fmt.Sprintf("%%%s%%", filter.ReferenceLike))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}
