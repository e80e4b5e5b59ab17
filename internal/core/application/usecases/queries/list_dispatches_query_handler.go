package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
)

// ListDispatchesQueryHandler retrieves the dispatch board for a tenant.
type ListDispatchesQueryHandler struct {
	db *gorm.DB
}

// NewListDispatchesQueryHandler creates a handler for dispatch board queries.
func NewListDispatchesQueryHandler(db *gorm.DB) ListDispatchesQueryHandler {
	return ListDispatchesQueryHandler{db: db}
}

// Handle executes the query. Rows are newest first.
func (h ListDispatchesQueryHandler) Handle(ctx context.Context, query ListDispatchesQuery) ([]DispatchBoardResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			d.id,
			d.load_id,
			l.reference_number,
			d.driver_id,
			d.carrier_id,
			d.status,
			d.planned_start,
			d.planned_end,
			d.accepted_at,
			d.rejected_at,
			d.notes,
			d.created_at
		FROM dispatches d
		JOIN loads l ON l.id = d.load_id AND l.tenant_id = d.tenant_id
		WHERE d.tenant_id = ?`
	args := []any{query.TenantCtx().TenantID().Bytes()}

	if query.Status() != "" {
		sql += " AND d.status = ?"
		args = append(args, query.Status())
	}
	sql += " ORDER BY d.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make([]DispatchBoardResponse, 0)
	for rows.Next() {
		var row DispatchBoardResponse
		var id, loadID uuid.UUID
		var driverID, carrierID uuid.NullUUID
		var createdAt time.Time

		err = rows.Scan(&id, &loadID, &row.LoadReferenceNumber, &driverID, &carrierID,
			&row.Status, &row.PlannedStart, &row.PlannedEnd, &row.AcceptedAt,
			&row.RejectedAt, &row.Notes, &createdAt)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.LoadID, err = kernel.UUIDFromBytes(loadID[:]); err != nil {
			return nil, err
		}
		if row.DriverID, err = optionalUUID(driverID); err != nil {
			return nil, err
		}
		if row.CarrierID, err = optionalUUID(carrierID); err != nil {
			return nil, err
		}
		row.CreatedAt = createdAt
		board = append(board, row)
	}

	return board, rows.Err()
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
