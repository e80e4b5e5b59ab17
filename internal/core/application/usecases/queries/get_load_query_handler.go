package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// GetLoadQueryHandler retrieves one load with all of its children.
type GetLoadQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadQueryHandler creates a handler for load detail queries.
func NewGetLoadQueryHandler(db *gorm.DB) GetLoadQueryHandler {
	return GetLoadQueryHandler{db: db}
}

// Handle executes the query. A load under another tenant behaves exactly
// like a missing one.
func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (GetLoadResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadResponse{}, err
	}

	tenantID := query.TenantCtx().TenantID().Bytes()
	loadID := query.LoadID().Bytes()

	response, err := h.scanLoad(ctx, tenantID, loadID)
	if err != nil {
		return GetLoadResponse{}, err
	}

	if response.Stops, err = h.scanStops(ctx, tenantID, loadID); err != nil {
		return GetLoadResponse{}, err
	}
	if response.Items, err = h.scanItems(ctx, tenantID, loadID); err != nil {
		return GetLoadResponse{}, err
	}
	if response.Accessorials, err = h.scanAccessorials(ctx, tenantID, loadID); err != nil {
		return GetLoadResponse{}, err
	}
	if response.Documents, err = h.scanDocuments(ctx, tenantID, loadID); err != nil {
		return GetLoadResponse{}, err
	}

	return response, nil
}

func (h GetLoadQueryHandler) scanLoad(ctx context.Context, tenantID, loadID uuid.UUID) (GetLoadResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference_number,
			customer_reference,
			customer_id,
			mode,
			equipment_type,
			status,
			total_weight,
			total_volume,
			pieces,
			rate_total,
			fuel_surcharge,
			accessorial_total,
			currency,
			created_at
		FROM loads
		WHERE tenant_id = ? AND id = ?
	`, tenantID, loadID).Rows()
	if err != nil {
		return GetLoadResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetLoadResponse{}, err
		}
		return GetLoadResponse{}, errs.NewObjectNotFoundError("loadId", loadID)
	}

	var response GetLoadResponse
	var id uuid.UUID
	var customerID uuid.NullUUID
	var createdAt time.Time

	err = rows.Scan(&id, &response.ReferenceNumber, &response.CustomerReference,
		&customerID, &response.Mode, &response.EquipmentType, &response.Status,
		&response.TotalWeight, &response.TotalVolume, &response.Pieces,
		&response.RateTotal, &response.FuelSurcharge, &response.AccessorialTotal,
		&response.Currency, &createdAt)
	if err != nil {
		return GetLoadResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetLoadResponse{}, err
	}
	if customerID.Valid {
		cid, idErr := kernel.UUIDFromBytes(customerID.UUID[:])
		if idErr != nil {
			return GetLoadResponse{}, idErr
		}
		response.CustomerID = &cid
	}
	response.CreatedAt = createdAt

	return response, nil
}

func (h GetLoadQueryHandler) scanStops(ctx context.Context, tenantID, loadID uuid.UUID) ([]StopResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			location_id,
			sequence_number,
			stop_type,
			scheduled_arrival,
			scheduled_departure,
			instructions
		FROM load_stops
		WHERE tenant_id = ? AND load_id = ?
		ORDER BY sequence_number
	`, tenantID, loadID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stops := make([]StopResponse, 0)
	for rows.Next() {
		var stop StopResponse
		var id, locationID uuid.UUID

		err = rows.Scan(&id, &locationID, &stop.SequenceNumber, &stop.StopType,
			&stop.ScheduledArrival, &stop.ScheduledDeparture, &stop.Instructions)
		if err != nil {
			return nil, err
		}

		if stop.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if stop.LocationID, err = kernel.UUIDFromBytes(locationID[:]); err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	return stops, rows.Err()
}

func (h GetLoadQueryHandler) scanItems(ctx context.Context, tenantID, loadID uuid.UUID) ([]ItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			weight,
			volume,
			pieces,
			nmfc_code
		FROM load_items
		WHERE tenant_id = ? AND load_id = ?
		ORDER BY id
	`, tenantID, loadID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	for rows.Next() {
		var item ItemResponse
		var id uuid.UUID

		err = rows.Scan(&id, &item.Description, &item.Weight, &item.Volume,
			&item.Pieces, &item.NMFCCode)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetLoadQueryHandler) scanAccessorials(ctx context.Context, tenantID, loadID uuid.UUID) ([]AccessorialResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			charge_type,
			amount,
			description
		FROM accessorial_charges
		WHERE tenant_id = ? AND load_id = ?
		ORDER BY id
	`, tenantID, loadID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	charges := make([]AccessorialResponse, 0)
	for rows.Next() {
		var charge AccessorialResponse
		var id uuid.UUID

		err = rows.Scan(&id, &charge.ChargeType, &charge.Amount, &charge.Description)
		if err != nil {
			return nil, err
		}

		if charge.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		charges = append(charges, charge)
	}

	return charges, rows.Err()
}

func (h GetLoadQueryHandler) scanDocuments(ctx context.Context, tenantID, loadID uuid.UUID) ([]DocumentResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			doc_type,
			file_name,
			storage_path,
			uploaded_by
		FROM documents
		WHERE tenant_id = ? AND load_id = ?
		ORDER BY id
	`, tenantID, loadID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]DocumentResponse, 0)
	for rows.Next() {
		var doc DocumentResponse
		var id, uploadedBy uuid.UUID

		err = rows.Scan(&id, &doc.DocType, &doc.FileName, &doc.StoragePath, &uploadedBy)
		if err != nil {
			return nil, err
		}

		if doc.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if doc.UploadedBy, err = kernel.UUIDFromBytes(uploadedBy[:]); err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}

	return documents, rows.Err()
}
