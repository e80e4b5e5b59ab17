package http

import (
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

// StopRequest is one stop of a load create or update payload.
type StopRequest struct {
	LocationID         string     `json:"locationId" validate:"required,uuid"`
	SequenceNumber     int        `json:"sequenceNumber" validate:"required,gte=1"`
	StopType           string     `json:"stopType" validate:"required"`
	ScheduledArrival   *time.Time `json:"scheduledArrival"`
	ScheduledDeparture *time.Time `json:"scheduledDeparture"`
	Instructions       string     `json:"instructions"`
}

// ItemRequest is one freight item of a load payload.
type ItemRequest struct {
	Description string `json:"description" validate:"required"`
	Weight      *int   `json:"weight" validate:"omitempty,gte=0"`
	Volume      *int   `json:"volume" validate:"omitempty,gte=0"`
	Pieces      *int   `json:"pieces" validate:"omitempty,gte=0"`
	NMFCCode    string `json:"nmfcCode"`
}

// AccessorialRequest is one accessorial charge of a load payload.
type AccessorialRequest struct {
	ChargeType  string          `json:"chargeType" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// CreateLoadRequest is the payload of POST /loads.
type CreateLoadRequest struct {
	ReferenceNumber   string               `json:"referenceNumber" validate:"required,max=64"`
	CustomerReference string               `json:"customerReference"`
	CustomerID        *string              `json:"customerId" validate:"omitempty,uuid"`
	Mode              string               `json:"mode" validate:"required"`
	EquipmentType     string               `json:"equipmentType" validate:"required"`
	Currency          string               `json:"currency" validate:"omitempty,len=3"`
	TotalWeight       *int                 `json:"totalWeight" validate:"omitempty,gte=0"`
	TotalVolume       *int                 `json:"totalVolume" validate:"omitempty,gte=0"`
	Pieces            *int                 `json:"pieces" validate:"omitempty,gte=0"`
	Stops             []StopRequest        `json:"stops" validate:"required,min=1,dive"`
	Items             []ItemRequest        `json:"items" validate:"omitempty,dive"`
	Accessorials      []AccessorialRequest `json:"accessorials" validate:"omitempty,dive"`
}

// UpdateLoadRequest is the payload of PATCH /loads/:loadId. Absent fields are
// left unchanged; a non-nil stops array replaces the whole stop plan.
type UpdateLoadRequest struct {
	ReferenceNumber   *string              `json:"referenceNumber" validate:"omitempty,max=64"`
	CustomerReference *string              `json:"customerReference"`
	CustomerID        *string              `json:"customerId" validate:"omitempty,uuid"`
	Mode              *string              `json:"mode"`
	EquipmentType     *string              `json:"equipmentType"`
	Status            *string              `json:"status"`
	Currency          *string              `json:"currency" validate:"omitempty,len=3"`
	TotalWeight       *int                 `json:"totalWeight" validate:"omitempty,gte=0"`
	TotalVolume       *int                 `json:"totalVolume" validate:"omitempty,gte=0"`
	Pieces            *int                 `json:"pieces" validate:"omitempty,gte=0"`
	Stops             []StopRequest        `json:"stops" validate:"omitempty,min=1,dive"`
	Items             []ItemRequest        `json:"items" validate:"omitempty,dive"`
	Accessorials      []AccessorialRequest `json:"accessorials" validate:"omitempty,dive"`
}

// CalculateRateRequest is the payload of POST /loads/:loadId/rates. The
// accessorials quoted here feed the calculation only; they are not attached
// to the load.
type CalculateRateRequest struct {
	BaseRate      decimal.Decimal      `json:"baseRate"`
	FuelSurcharge decimal.Decimal      `json:"fuelSurcharge"`
	Accessorials  []AccessorialRequest `json:"accessorials" validate:"omitempty,dive"`
}

// AttachDocumentRequest is the payload of POST /loads/:loadId/documents.
type AttachDocumentRequest struct {
	DocType     string `json:"docType" validate:"required"`
	FileName    string `json:"fileName" validate:"required"`
	StoragePath string `json:"storagePath"`
}

// AppendTrackingEventRequest is the payload of POST /loads/:loadId/events.
// Latitude and longitude come together or not at all.
type AppendTrackingEventRequest struct {
	DispatchID *string  `json:"dispatchId" validate:"omitempty,uuid"`
	EventType  string   `json:"eventType" validate:"required"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Notes      string   `json:"notes"`
}

// CreateDispatchRequest is the payload of POST /dispatches.
type CreateDispatchRequest struct {
	LoadID       string     `json:"loadId" validate:"required,uuid"`
	DriverID     *string    `json:"driverId" validate:"omitempty,uuid"`
	CarrierID    *string    `json:"carrierId" validate:"omitempty,uuid"`
	PlannedStart *time.Time `json:"plannedStart"`
	PlannedEnd   *time.Time `json:"plannedEnd"`
	Notes        string     `json:"notes"`
}

// RecordDispatchStatusRequest is the payload of POST /dispatches/:dispatchId/status.
// Latitude and longitude come together or not at all.
type RecordDispatchStatusRequest struct {
	Status    string   `json:"status" validate:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     string   `json:"notes"`
}

// CreateInvoiceRequest is the payload of POST /invoices.
type CreateInvoiceRequest struct {
	LoadID             string          `json:"loadId" validate:"required,uuid"`
	InvoiceNumber      string          `json:"invoiceNumber" validate:"required,max=64"`
	BilledToCustomerID *string         `json:"billedToCustomerId" validate:"omitempty,uuid"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency" validate:"omitempty,len=3"`
	DueDate            *time.Time      `json:"dueDate"`
}

// UpdateInvoiceRequest is the payload of PATCH /invoices/:invoiceId.
type UpdateInvoiceRequest struct {
	InvoiceNumber      *string          `json:"invoiceNumber" validate:"omitempty,max=64"`
	BilledToCustomerID *string          `json:"billedToCustomerId" validate:"omitempty,uuid"`
	Amount             *decimal.Decimal `json:"amount"`
	Currency           *string          `json:"currency" validate:"omitempty,len=3"`
	Status             *string          `json:"status"`
	DueDate            *time.Time       `json:"dueDate"`
	IssuedAt           *time.Time       `json:"issuedAt"`
}

// parseUUID parses an identifier from the wire, attributing failures to the
// named parameter so they map to 400 rather than 500.
func parseUUID(name, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func parseOptionalUUID(name string, s *string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := parseUUID(name, *s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func stopParams(stops []StopRequest) ([]commands.StopParams, error) {
	params := make([]commands.StopParams, 0, len(stops))
	for _, s := range stops {
		locationID, err := parseUUID("locationId", s.LocationID)
		if err != nil {
			return nil, err
		}
		stopType, err := load.StopTypeFromString(s.StopType)
		if err != nil {
			return nil, err
		}
		params = append(params, commands.StopParams{
			LocationID:         locationID,
			SequenceNumber:     s.SequenceNumber,
			StopType:           stopType,
			ScheduledArrival:   s.ScheduledArrival,
			ScheduledDeparture: s.ScheduledDeparture,
			Instructions:       s.Instructions,
		})
	}
	return params, nil
}

func itemParams(items []ItemRequest) []commands.ItemParams {
	params := make([]commands.ItemParams, 0, len(items))
	for _, i := range items {
		params = append(params, commands.ItemParams{
			Description: i.Description,
			Weight:      i.Weight,
			Volume:      i.Volume,
			Pieces:      i.Pieces,
			NMFCCode:    i.NMFCCode,
		})
	}
	return params
}

func accessorialParams(charges []AccessorialRequest) ([]commands.AccessorialParams, error) {
	params := make([]commands.AccessorialParams, 0, len(charges))
	for _, a := range charges {
		chargeType, err := load.AccessorialTypeFromString(a.ChargeType)
		if err != nil {
			return nil, err
		}
		params = append(params, commands.AccessorialParams{
			ChargeType:  chargeType,
			Amount:      a.Amount,
			Description: a.Description,
		})
	}
	return params, nil
}
