// Package loadrepo provides data transfer objects and mapping functions for
// load persistence. It implements the repository pattern for the load
// aggregate, converting between domain entities and their relational
// representation across the loads, load_stops, load_items,
// accessorial_charges, rates and documents tables.
package loadrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadDTO represents the database structure for persisting load aggregates.
// The reference number is unique per tenant; every query is expected to
// filter on tenant_id first.
type LoadDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID          uuid.UUID       `gorm:"type:uuid;index;uniqueIndex:idx_loads_tenant_reference"`
	ReferenceNumber   string          `gorm:"type:varchar(64);uniqueIndex:idx_loads_tenant_reference"`
	CustomerReference string          `gorm:"type:varchar(128)"`
	CustomerID        *uuid.UUID      `gorm:"type:uuid;index"`
	Mode              string          `gorm:"type:varchar(16)"`
	EquipmentType     string          `gorm:"type:varchar(16)"`
	Status            string          `gorm:"type:varchar(16);index"`
	TotalWeight       *int
	TotalVolume       *int
	Pieces            *int
	RateTotal         decimal.Decimal `gorm:"type:numeric(14,2)"`
	FuelSurcharge     decimal.Decimal `gorm:"type:numeric(14,2)"`
	AccessorialTotal  decimal.Decimal `gorm:"type:numeric(14,2)"`
	Currency          string          `gorm:"type:varchar(3)"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for load entities.
func (LoadDTO) TableName() string {
	return "loads"
}

// StopDTO represents a single route stop row belonging to a load.
type StopDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID           uuid.UUID  `gorm:"type:uuid;index"`
	LoadID             uuid.UUID  `gorm:"type:uuid;index"`
	LocationID         uuid.UUID  `gorm:"type:uuid"`
	SequenceNumber     int
	StopType           string     `gorm:"type:varchar(16)"`
	ScheduledArrival   *time.Time
	ScheduledDeparture *time.Time
	Instructions       string     `gorm:"type:text"`
}

// TableName specifies the database table name for stop entities.
func (StopDTO) TableName() string {
	return "load_stops"
}

// ItemDTO represents a freight line item row belonging to a load.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	LoadID      uuid.UUID `gorm:"type:uuid;index"`
	Description string    `gorm:"type:text"`
	Weight      *int
	Volume      *int
	Pieces      *int
	NMFCCode    string    `gorm:"column:nmfc_code;type:varchar(16)"`
}

// TableName specifies the database table name for load item entities.
func (ItemDTO) TableName() string {
	return "load_items"
}

// AccessorialDTO represents an accessorial charge row belonging to a load.
type AccessorialDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID       `gorm:"type:uuid;index"`
	LoadID      uuid.UUID       `gorm:"type:uuid;index"`
	ChargeType  string          `gorm:"type:varchar(16)"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	Description string          `gorm:"type:text"`
}

// TableName specifies the database table name for accessorial charge entities.
func (AccessorialDTO) TableName() string {
	return "accessorial_charges"
}

// RateDTO represents an immutable rate snapshot row. Snapshots are append
// only; recalculation inserts a new row and never touches prior ones.
type RateDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID       `gorm:"type:uuid;index"`
	LoadID           uuid.UUID       `gorm:"type:uuid;index"`
	BaseRate         decimal.Decimal `gorm:"type:numeric(14,2)"`
	FuelSurcharge    decimal.Decimal `gorm:"type:numeric(14,2)"`
	AccessorialTotal decimal.Decimal `gorm:"type:numeric(14,2)"`
	Currency         string          `gorm:"type:varchar(3)"`
	CreatedAt        time.Time
}

// TableName specifies the database table name for rate snapshot entities.
func (RateDTO) TableName() string {
	return "rates"
}

// DocumentDTO represents a document metadata row attached to a load.
type DocumentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	LoadID      uuid.UUID `gorm:"type:uuid;index"`
	DocType     string    `gorm:"type:varchar(16)"`
	FileName    string    `gorm:"type:varchar(255)"`
	StoragePath string    `gorm:"type:varchar(512)"`
	UploadedBy  uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for document entities.
func (DocumentDTO) TableName() string {
	return "documents"
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// fromDomain converts a load aggregate to its database representation.
// Child collections are mapped separately because they live in their own
// tables.
func fromDomain(aggregate *load.Load) LoadDTO {
	return LoadDTO{
		ID:                aggregate.ID().Bytes(),
		TenantID:          aggregate.TenantID().Bytes(),
		ReferenceNumber:   aggregate.ReferenceNumber(),
		CustomerReference: aggregate.CustomerReference(),
		CustomerID:        optionalBytes(aggregate.CustomerID()),
		Mode:              aggregate.Mode().String(),
		EquipmentType:     aggregate.EquipmentType().String(),
		Status:            aggregate.Status().String(),
		TotalWeight:       aggregate.TotalWeight(),
		TotalVolume:       aggregate.TotalVolume(),
		Pieces:            aggregate.Pieces(),
		RateTotal:         aggregate.RateTotal(),
		FuelSurcharge:     aggregate.FuelSurcharge(),
		AccessorialTotal:  aggregate.AccessorialTotal(),
		Currency:          aggregate.Currency(),
	}
}

func stopsFromDomain(aggregate *load.Load) []StopDTO {
	tenantID := aggregate.TenantID().Bytes()
	loadID := aggregate.ID().Bytes()

	dtos := make([]StopDTO, 0, len(aggregate.Stops()))
	for _, stop := range aggregate.Stops() {
		dtos = append(dtos, StopDTO{
			ID:                 stop.ID().Bytes(),
			TenantID:           tenantID,
			LoadID:             loadID,
			LocationID:         stop.LocationID().Bytes(),
			SequenceNumber:     stop.SequenceNumber(),
			StopType:           stop.StopType().String(),
			ScheduledArrival:   stop.ScheduledArrival(),
			ScheduledDeparture: stop.ScheduledDeparture(),
			Instructions:       stop.Instructions(),
		})
	}

	return dtos
}

func itemsFromDomain(aggregate *load.Load) []ItemDTO {
	tenantID := aggregate.TenantID().Bytes()
	loadID := aggregate.ID().Bytes()

	dtos := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		dtos = append(dtos, ItemDTO{
			ID:          item.ID().Bytes(),
			TenantID:    tenantID,
			LoadID:      loadID,
			Description: item.Description(),
			Weight:      item.Weight(),
			Volume:      item.Volume(),
			Pieces:      item.Pieces(),
			NMFCCode:    item.NMFCCode(),
		})
	}

	return dtos
}

func accessorialsFromDomain(aggregate *load.Load) []AccessorialDTO {
	tenantID := aggregate.TenantID().Bytes()
	loadID := aggregate.ID().Bytes()

	dtos := make([]AccessorialDTO, 0, len(aggregate.Accessorials()))
	for _, charge := range aggregate.Accessorials() {
		dtos = append(dtos, AccessorialDTO{
			ID:          charge.ID().Bytes(),
			TenantID:    tenantID,
			LoadID:      loadID,
			ChargeType:  charge.Type().String(),
			Amount:      charge.Amount(),
			Description: charge.Description(),
		})
	}

	return dtos
}

func rateFromDomain(tenantID, loadID kernel.UUID, rate load.Rate) RateDTO {
	return RateDTO{
		ID:               rate.ID().Bytes(),
		TenantID:         tenantID.Bytes(),
		LoadID:           loadID.Bytes(),
		BaseRate:         rate.BaseRate(),
		FuelSurcharge:    rate.FuelSurcharge(),
		AccessorialTotal: rate.AccessorialTotal(),
		Currency:         rate.Currency(),
		CreatedAt:        rate.CreatedAt(),
	}
}

func documentFromDomain(tenantID, loadID kernel.UUID, doc load.Document) DocumentDTO {
	return DocumentDTO{
		ID:          doc.ID().Bytes(),
		TenantID:    tenantID.Bytes(),
		LoadID:      loadID.Bytes(),
		DocType:     doc.Type().String(),
		FileName:    doc.FileName(),
		StoragePath: doc.StoragePath(),
		UploadedBy:  doc.UploadedBy().Bytes(),
	}
}

func stopsToDomain(dtos []StopDTO) ([]load.Stop, error) {
	stops := make([]load.Stop, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
		if err != nil {
			return nil, err
		}
		stopType, err := load.StopTypeFromString(dto.StopType)
		if err != nil {
			return nil, err
		}

		stop, err := load.NewStop(id, locationID, dto.SequenceNumber, stopType,
			dto.ScheduledArrival, dto.ScheduledDeparture, dto.Instructions)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	return stops, nil
}

func itemsToDomain(dtos []ItemDTO) ([]load.Item, error) {
	items := make([]load.Item, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		item, err := load.NewItem(id, dto.Description, dto.Weight, dto.Volume, dto.Pieces, dto.NMFCCode)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func accessorialsToDomain(dtos []AccessorialDTO) ([]load.AccessorialCharge, error) {
	charges := make([]load.AccessorialCharge, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		chargeType, err := load.AccessorialTypeFromString(dto.ChargeType)
		if err != nil {
			return nil, err
		}

		charge, err := load.NewAccessorialCharge(id, chargeType, dto.Amount, dto.Description)
		if err != nil {
			return nil, err
		}
		charges = append(charges, charge)
	}

	return charges, nil
}

// toDomain reconstructs the complete load aggregate from its row plus child
// rows using RestoreLoad.
func toDomain(dto LoadDTO, stopDTOs []StopDTO, itemDTOs []ItemDTO, accessorialDTOs []AccessorialDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	mode, err := load.ModeFromString(dto.Mode)
	if err != nil {
		return nil, err
	}
	equipmentType, err := load.EquipmentTypeFromString(dto.EquipmentType)
	if err != nil {
		return nil, err
	}
	status, err := load.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	stops, err := stopsToDomain(stopDTOs)
	if err != nil {
		return nil, err
	}
	items, err := itemsToDomain(itemDTOs)
	if err != nil {
		return nil, err
	}
	accessorials, err := accessorialsToDomain(accessorialDTOs)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(load.RestoreLoadParams{
		ID:                id,
		TenantID:          tenantID,
		ReferenceNumber:   dto.ReferenceNumber,
		CustomerReference: dto.CustomerReference,
		CustomerID:        customerID,
		Mode:              mode,
		EquipmentType:     equipmentType,
		Status:            status,
		TotalWeight:       dto.TotalWeight,
		TotalVolume:       dto.TotalVolume,
		Pieces:            dto.Pieces,
		RateTotal:         dto.RateTotal,
		FuelSurcharge:     dto.FuelSurcharge,
		AccessorialTotal:  dto.AccessorialTotal,
		Currency:          dto.Currency,
		Stops:             stops,
		Items:             items,
		Accessorials:      accessorials,
	})
}
