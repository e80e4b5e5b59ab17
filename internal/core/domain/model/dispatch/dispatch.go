package dispatch

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrDispatchIsNotConstructed is returned when a Dispatch instance was not
	// created through NewDispatch or RestoreDispatch.
	ErrDispatchIsNotConstructed = errors.New("Dispatch must be created via NewDispatch or RestoreDispatch")
)

// Dispatch is the assignment of a load to a driver/carrier pairing, with its
// own acceptance and progress state machine.
//
// Invariants:
//   - acceptedAt and rejectedAt are each set at most once and are mutually
//     exclusive
//   - REJECTED and COMPLETED are terminal
type Dispatch struct {
	id           kernel.UUID
	tenantID     kernel.UUID
	loadID       kernel.UUID
	driverID     *kernel.UUID
	carrierID    *kernel.UUID
	status       Status
	plannedStart *time.Time
	plannedEnd   *time.Time
	acceptedAt   *time.Time
	rejectedAt   *time.Time
	notes        string

	isConstructed bool
}

// NewDispatch creates a dispatch in CREATED status. Driver and carrier are
// both optional; an operational dispatch normally has at least one, but that
// is a planning concern, not a hard rule.
func NewDispatch(
	id kernel.UUID,
	tenantID kernel.UUID,
	loadID kernel.UUID,
	driverID *kernel.UUID,
	carrierID *kernel.UUID,
	plannedStart *time.Time,
	plannedEnd *time.Time,
	notes string,
) (*Dispatch, error) {
	d := &Dispatch{
		status:        StatusCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setTenantID(tenantID),
		d.setLoadID(loadID),
		d.setDriverID(driverID),
		d.setCarrierID(carrierID),
	); err != nil {
		return nil, err
	}

	d.plannedStart = plannedStart
	d.plannedEnd = plannedEnd
	d.notes = notes

	return d, nil
}

// RestoreDispatchParams carries every persisted field needed to rehydrate a
// Dispatch.
type RestoreDispatchParams struct {
	ID           kernel.UUID
	TenantID     kernel.UUID
	LoadID       kernel.UUID
	DriverID     *kernel.UUID
	CarrierID    *kernel.UUID
	Status       Status
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	AcceptedAt   *time.Time
	RejectedAt   *time.Time
	Notes        string
}

// RestoreDispatch rebuilds a dispatch from persistence.
func RestoreDispatch(p RestoreDispatchParams) (*Dispatch, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.TenantID.Validate(),
		p.LoadID.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if p.AcceptedAt != nil && p.RejectedAt != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("acceptedAt",
			errors.New("acceptedAt and rejectedAt are mutually exclusive"))
	}

	return &Dispatch{
		id:            p.ID,
		tenantID:      p.TenantID,
		loadID:        p.LoadID,
		driverID:      p.DriverID,
		carrierID:     p.CarrierID,
		status:        p.Status,
		plannedStart:  p.PlannedStart,
		plannedEnd:    p.PlannedEnd,
		acceptedAt:    p.AcceptedAt,
		rejectedAt:    p.RejectedAt,
		notes:         p.Notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the Dispatch was created through a constructor.
func (d *Dispatch) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDispatchIsNotConstructed
	}
	return nil
}

// IsEqual compares two dispatches by identifier.
func (d *Dispatch) IsEqual(other *Dispatch) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dispatch's identifier.
func (d *Dispatch) ID() kernel.UUID { return d.id }

// TenantID returns the owning tenant.
func (d *Dispatch) TenantID() kernel.UUID { return d.tenantID }

// LoadID returns the dispatched load.
func (d *Dispatch) LoadID() kernel.UUID { return d.loadID }

// DriverID returns the assigned driver, if any.
func (d *Dispatch) DriverID() *kernel.UUID { return d.driverID }

// CarrierID returns the assigned carrier, if any.
func (d *Dispatch) CarrierID() *kernel.UUID { return d.carrierID }

// Status returns the current dispatch status.
func (d *Dispatch) Status() Status { return d.status }

// PlannedStart returns the planned start time, if set.
func (d *Dispatch) PlannedStart() *time.Time { return d.plannedStart }

// PlannedEnd returns the planned end time, if set.
func (d *Dispatch) PlannedEnd() *time.Time { return d.plannedEnd }

// AcceptedAt returns when the dispatch was accepted, if it was.
func (d *Dispatch) AcceptedAt() *time.Time { return d.acceptedAt }

// RejectedAt returns when the dispatch was rejected, if it was.
func (d *Dispatch) RejectedAt() *time.Time { return d.rejectedAt }

// Notes returns the free-form dispatch notes.
func (d *Dispatch) Notes() string { return d.notes }

// Accept marks the dispatch accepted at the given time. Only a CREATED
// dispatch can be accepted; acceptedAt is stamped exactly once.
func (d *Dispatch) Accept(at time.Time) error {
	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}
	d.status = newStatus
	d.acceptedAt = &at
	return nil
}

// Reject marks the dispatch rejected at the given time. Only a CREATED
// dispatch can be rejected; rejectedAt is stamped exactly once.
func (d *Dispatch) Reject(at time.Time) error {
	newStatus, err := d.status.Reject()
	if err != nil {
		return err
	}
	d.status = newStatus
	d.rejectedAt = &at
	return nil
}

// RecordStatus moves the dispatch to a progress status. The matching
// STATUS_CHANGE tracking event is created by the caller so both writes can
// share one transaction.
func (d *Dispatch) RecordStatus(next Status) error {
	newStatus, err := d.status.Record(next)
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

func (d *Dispatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dispatch) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tenantId", err)
	}
	d.tenantID = tenantID
	return nil
}

func (d *Dispatch) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	d.loadID = loadID
	return nil
}

func (d *Dispatch) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
	}
	d.driverID = driverID
	return nil
}

func (d *Dispatch) setCarrierID(carrierID *kernel.UUID) error {
	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("carrierId", err)
		}
	}
	d.carrierID = carrierID
	return nil
}
