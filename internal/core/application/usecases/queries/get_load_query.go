package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetLoadQueryIsNotConstructed = errors.New(
	"GetLoadQuery must be created via NewGetLoadQuery constructor",
)

// GetLoadQuery retrieves one load with its stops, items, charges and
// documents.
type GetLoadQuery struct {
	tenantCtx kernel.TenantContext
	loadID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadQuery creates a query for a single load.
func NewGetLoadQuery(tenantCtx kernel.TenantContext, loadID kernel.UUID) (GetLoadQuery, error) {
	if err := errors.Join(
		tenantCtx.Validate(),
		loadID.Validate(),
	); err != nil {
		return GetLoadQuery{}, err
	}

	return GetLoadQuery{
		tenantCtx: tenantCtx,
		loadID:    loadID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (q GetLoadQuery) TenantCtx() kernel.TenantContext { return q.tenantCtx }

// LoadID returns the requested load.
func (q GetLoadQuery) LoadID() kernel.UUID { return q.loadID }

// StopResponse is one stop of a load detail.
type StopResponse struct {
	ID                 kernel.UUID
	LocationID         kernel.UUID
	SequenceNumber     int
	StopType           string
	ScheduledArrival   *time.Time
	ScheduledDeparture *time.Time
	Instructions       string
}

// ItemResponse is one freight item of a load detail.
type ItemResponse struct {
	ID          kernel.UUID
	Description string
	Weight      *int
	Volume      *int
	Pieces      *int
	NMFCCode    string
}

// AccessorialResponse is one accessorial charge of a load detail.
type AccessorialResponse struct {
	ID          kernel.UUID
	ChargeType  string
	Amount      decimal.Decimal
	Description string
}

// DocumentResponse is one attached document of a load detail.
type DocumentResponse struct {
	ID          kernel.UUID
	DocType     string
	FileName    string
	StoragePath string
	UploadedBy  kernel.UUID
}

// GetLoadResponse is the full read model of a load.
type GetLoadResponse struct {
	ID                kernel.UUID
	ReferenceNumber   string
	CustomerReference string
	CustomerID        *kernel.UUID
	Mode              string
	EquipmentType     string
	Status            string
	TotalWeight       *int
	TotalVolume       *int
	Pieces            *int
	RateTotal         decimal.Decimal
	FuelSurcharge     decimal.Decimal
	AccessorialTotal  decimal.Decimal
	Currency          string
	CreatedAt         time.Time
	Stops             []StopResponse
	Items             []ItemResponse
	Accessorials      []AccessorialResponse
	Documents         []DocumentResponse
}
