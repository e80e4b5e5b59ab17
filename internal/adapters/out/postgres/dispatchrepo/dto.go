// Package dispatchrepo provides data transfer objects and mapping functions
// for dispatch persistence. It covers the dispatch aggregate and the
// append-only tracking event log.
package dispatchrepo

import (
	"time"

	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DispatchDTO represents the database structure for persisting dispatch
// aggregates. One load can have many dispatch records over its lifetime.
type DispatchDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID  `gorm:"type:uuid;index"`
	LoadID       uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid"`
	CarrierID    *uuid.UUID `gorm:"type:uuid"`
	Status       string     `gorm:"type:varchar(16);index"`
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	AcceptedAt   *time.Time
	RejectedAt   *time.Time
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for dispatch entities.
func (DispatchDTO) TableName() string {
	return "dispatches"
}

// TrackingEventDTO represents one row of the tracking event log. Rows are
// inserted and read, never updated or deleted.
type TrackingEventDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID  `gorm:"type:uuid;index"`
	LoadID     uuid.UUID  `gorm:"type:uuid;index"`
	DispatchID *uuid.UUID `gorm:"type:uuid"`
	EventType  string     `gorm:"type:varchar(16)"`
	Latitude   *float64
	Longitude  *float64
	Notes      string    `gorm:"type:text"`
	Timestamp  time.Time `gorm:"column:timestamp;index"`
	CreatedBy  uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for tracking event entities.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// fromDomain converts a dispatch aggregate to its database representation.
func fromDomain(aggregate *dispatch.Dispatch) DispatchDTO {
	return DispatchDTO{
		ID:           aggregate.ID().Bytes(),
		TenantID:     aggregate.TenantID().Bytes(),
		LoadID:       aggregate.LoadID().Bytes(),
		DriverID:     optionalBytes(aggregate.DriverID()),
		CarrierID:    optionalBytes(aggregate.CarrierID()),
		Status:       aggregate.Status().String(),
		PlannedStart: aggregate.PlannedStart(),
		PlannedEnd:   aggregate.PlannedEnd(),
		AcceptedAt:   aggregate.AcceptedAt(),
		RejectedAt:   aggregate.RejectedAt(),
		Notes:        aggregate.Notes(),
	}
}

// toDomain reconstructs the dispatch aggregate using RestoreDispatch.
func toDomain(dto DispatchDTO) (*dispatch.Dispatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := optionalUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}
	carrierID, err := optionalUUID(dto.CarrierID)
	if err != nil {
		return nil, err
	}
	status, err := dispatch.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return dispatch.RestoreDispatch(dispatch.RestoreDispatchParams{
		ID:           id,
		TenantID:     tenantID,
		LoadID:       loadID,
		DriverID:     driverID,
		CarrierID:    carrierID,
		Status:       status,
		PlannedStart: dto.PlannedStart,
		PlannedEnd:   dto.PlannedEnd,
		AcceptedAt:   dto.AcceptedAt,
		RejectedAt:   dto.RejectedAt,
		Notes:        dto.Notes,
	})
}

// eventFromDomain converts a tracking event to its database representation.
func eventFromDomain(event dispatch.TrackingEvent) TrackingEventDTO {
	var latitude, longitude *float64
	if point := event.Point(); point != nil {
		lat := point.Latitude()
		lon := point.Longitude()
		latitude = &lat
		longitude = &lon
	}

	return TrackingEventDTO{
		ID:         event.ID().Bytes(),
		TenantID:   event.TenantID().Bytes(),
		LoadID:     event.LoadID().Bytes(),
		DispatchID: optionalBytes(event.DispatchID()),
		EventType:  event.EventType().String(),
		Latitude:   latitude,
		Longitude:  longitude,
		Notes:      event.Notes(),
		Timestamp:  event.Timestamp(),
		CreatedBy:  event.CreatedBy().Bytes(),
	}
}
