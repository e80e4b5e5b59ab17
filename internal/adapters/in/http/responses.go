package http

import (
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
)

// CreatedResponse carries the server-assigned identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// RateResponse is the reply of POST /loads/:loadId/rates.
type RateResponse struct {
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

// LoadSummary is one row of GET /loads.
type LoadSummary struct {
	ID              string          `json:"id"`
	ReferenceNumber string          `json:"referenceNumber"`
	Mode            string          `json:"mode"`
	EquipmentType   string          `json:"equipmentType"`
	Status          string          `json:"status"`
	RateTotal       decimal.Decimal `json:"rateTotal"`
	Currency        string          `json:"currency"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// LoadPage is the reply of GET /loads.
type LoadPage struct {
	Loads    []LoadSummary `json:"loads"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// Stop is one stop of a load detail.
type Stop struct {
	ID                 string     `json:"id"`
	LocationID         string     `json:"locationId"`
	SequenceNumber     int        `json:"sequenceNumber"`
	StopType           string     `json:"stopType"`
	ScheduledArrival   *time.Time `json:"scheduledArrival,omitempty"`
	ScheduledDeparture *time.Time `json:"scheduledDeparture,omitempty"`
	Instructions       string     `json:"instructions,omitempty"`
}

// Item is one freight item of a load detail.
type Item struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Weight      *int   `json:"weight,omitempty"`
	Volume      *int   `json:"volume,omitempty"`
	Pieces      *int   `json:"pieces,omitempty"`
	NMFCCode    string `json:"nmfcCode,omitempty"`
}

// Accessorial is one accessorial charge of a load detail.
type Accessorial struct {
	ID          string          `json:"id"`
	ChargeType  string          `json:"chargeType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// Document is one attached document of a load detail.
type Document struct {
	ID          string `json:"id"`
	DocType     string `json:"docType"`
	FileName    string `json:"fileName"`
	StoragePath string `json:"storagePath"`
	UploadedBy  string `json:"uploadedBy"`
}

// LoadDetail is the reply of GET /loads/:loadId.
type LoadDetail struct {
	ID                string          `json:"id"`
	ReferenceNumber   string          `json:"referenceNumber"`
	CustomerReference string          `json:"customerReference,omitempty"`
	CustomerID        *string         `json:"customerId,omitempty"`
	Mode              string          `json:"mode"`
	EquipmentType     string          `json:"equipmentType"`
	Status            string          `json:"status"`
	TotalWeight       *int            `json:"totalWeight,omitempty"`
	TotalVolume       *int            `json:"totalVolume,omitempty"`
	Pieces            *int            `json:"pieces,omitempty"`
	RateTotal         decimal.Decimal `json:"rateTotal"`
	FuelSurcharge     decimal.Decimal `json:"fuelSurcharge"`
	AccessorialTotal  decimal.Decimal `json:"accessorialTotal"`
	Currency          string          `json:"currency"`
	CreatedAt         time.Time       `json:"createdAt"`
	Stops             []Stop          `json:"stops"`
	Items             []Item          `json:"items"`
	Accessorials      []Accessorial   `json:"accessorials"`
	Documents         []Document      `json:"documents"`
}

// DispatchBoardRow is one row of GET /dispatches.
type DispatchBoardRow struct {
	ID                  string     `json:"id"`
	LoadID              string     `json:"loadId"`
	LoadReferenceNumber string     `json:"loadReferenceNumber"`
	DriverID            *string    `json:"driverId,omitempty"`
	CarrierID           *string    `json:"carrierId,omitempty"`
	Status              string     `json:"status"`
	PlannedStart        *time.Time `json:"plannedStart,omitempty"`
	PlannedEnd          *time.Time `json:"plannedEnd,omitempty"`
	AcceptedAt          *time.Time `json:"acceptedAt,omitempty"`
	RejectedAt          *time.Time `json:"rejectedAt,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// TrackingEvent is one entry of GET /loads/:loadId/events.
type TrackingEvent struct {
	ID         string    `json:"id"`
	DispatchID *string   `json:"dispatchId,omitempty"`
	EventType  string    `json:"eventType"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	CreatedBy  string    `json:"createdBy"`
}

// Invoice is one row of GET /invoices.
type Invoice struct {
	ID                 string          `json:"id"`
	LoadID             string          `json:"loadId"`
	InvoiceNumber      string          `json:"invoiceNumber"`
	BilledToCustomerID *string         `json:"billedToCustomerId,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Status             string          `json:"status"`
	DueDate            *time.Time      `json:"dueDate,omitempty"`
	IssuedAt           *time.Time      `json:"issuedAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func loadPageFromQuery(page queries.ListLoadsResponse) LoadPage {
	loads := make([]LoadSummary, len(page.Loads))
	for i, l := range page.Loads {
		loads[i] = LoadSummary{
			ID:              l.ID.String(),
			ReferenceNumber: l.ReferenceNumber,
			Mode:            l.Mode,
			EquipmentType:   l.EquipmentType,
			Status:          l.Status,
			RateTotal:       l.RateTotal,
			Currency:        l.Currency,
			CreatedAt:       l.CreatedAt,
		}
	}
	return LoadPage{
		Loads:    loads,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

func loadDetailFromQuery(detail queries.GetLoadResponse) LoadDetail {
	stops := make([]Stop, len(detail.Stops))
	for i, s := range detail.Stops {
		stops[i] = Stop{
			ID:                 s.ID.String(),
			LocationID:         s.LocationID.String(),
			SequenceNumber:     s.SequenceNumber,
			StopType:           s.StopType,
			ScheduledArrival:   s.ScheduledArrival,
			ScheduledDeparture: s.ScheduledDeparture,
			Instructions:       s.Instructions,
		}
	}

	items := make([]Item, len(detail.Items))
	for i, it := range detail.Items {
		items[i] = Item{
			ID:          it.ID.String(),
			Description: it.Description,
			Weight:      it.Weight,
			Volume:      it.Volume,
			Pieces:      it.Pieces,
			NMFCCode:    it.NMFCCode,
		}
	}

	accessorials := make([]Accessorial, len(detail.Accessorials))
	for i, a := range detail.Accessorials {
		accessorials[i] = Accessorial{
			ID:          a.ID.String(),
			ChargeType:  a.ChargeType,
			Amount:      a.Amount,
			Description: a.Description,
		}
	}

	documents := make([]Document, len(detail.Documents))
	for i, d := range detail.Documents {
		documents[i] = Document{
			ID:          d.ID.String(),
			DocType:     d.DocType,
			FileName:    d.FileName,
			StoragePath: d.StoragePath,
			UploadedBy:  d.UploadedBy.String(),
		}
	}

	return LoadDetail{
		ID:                detail.ID.String(),
		ReferenceNumber:   detail.ReferenceNumber,
		CustomerReference: detail.CustomerReference,
		CustomerID:        optionalID(detail.CustomerID),
		Mode:              detail.Mode,
		EquipmentType:     detail.EquipmentType,
		Status:            detail.Status,
		TotalWeight:       detail.TotalWeight,
		TotalVolume:       detail.TotalVolume,
		Pieces:            detail.Pieces,
		RateTotal:         detail.RateTotal,
		FuelSurcharge:     detail.FuelSurcharge,
		AccessorialTotal:  detail.AccessorialTotal,
		Currency:          detail.Currency,
		CreatedAt:         detail.CreatedAt,
		Stops:             stops,
		Items:             items,
		Accessorials:      accessorials,
		Documents:         documents,
	}
}

func dispatchBoardFromQuery(rows []queries.DispatchBoardResponse) []DispatchBoardRow {
	board := make([]DispatchBoardRow, len(rows))
	for i, r := range rows {
		board[i] = DispatchBoardRow{
			ID:                  r.ID.String(),
			LoadID:              r.LoadID.String(),
			LoadReferenceNumber: r.LoadReferenceNumber,
			DriverID:            optionalID(r.DriverID),
			CarrierID:           optionalID(r.CarrierID),
			Status:              r.Status,
			PlannedStart:        r.PlannedStart,
			PlannedEnd:          r.PlannedEnd,
			AcceptedAt:          r.AcceptedAt,
			RejectedAt:          r.RejectedAt,
			Notes:               r.Notes,
			CreatedAt:           r.CreatedAt,
		}
	}
	return board
}

func trackingEventsFromQuery(rows []queries.TrackingEventResponse) []TrackingEvent {
	events := make([]TrackingEvent, len(rows))
	for i, r := range rows {
		events[i] = TrackingEvent{
			ID:         r.ID.String(),
			DispatchID: optionalID(r.DispatchID),
			EventType:  r.EventType,
			Latitude:   r.Latitude,
			Longitude:  r.Longitude,
			Notes:      r.Notes,
			Timestamp:  r.Timestamp,
			CreatedBy:  r.CreatedBy.String(),
		}
	}
	return events
}

func invoicesFromQuery(rows []queries.InvoiceResponse) []Invoice {
	invoices := make([]Invoice, len(rows))
	for i, r := range rows {
		invoices[i] = Invoice{
			ID:                 r.ID.String(),
			LoadID:             r.LoadID.String(),
			InvoiceNumber:      r.InvoiceNumber,
			BilledToCustomerID: optionalID(r.BilledToCustomerID),
			Amount:             r.Amount,
			Currency:           r.Currency,
			Status:             r.Status,
			DueDate:            r.DueDate,
			IssuedAt:           r.IssuedAt,
			CreatedAt:          r.CreatedAt,
		}
	}
	return invoices
}
