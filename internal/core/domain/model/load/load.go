package load

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a load is created without one.
const DefaultCurrency = "USD"

var (
	// ErrLoadIsNotConstructed is returned when a Load instance was not created
	// through NewLoad or RestoreLoad.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad")

	// ErrLoadIsTerminal is returned when mutating a delivered or cancelled load.
	ErrLoadIsTerminal = errors.New("load is in a terminal status")
)

// Load is the aggregate root for a single shipment engagement, tracked from
// booking to delivery or cancellation. It owns the route (stops), the freight
// description (items), supplemental charges (accessorials) and the cached
// monetary totals kept in sync by the rate calculator.
//
// Invariants:
//   - every load belongs to exactly one tenant, fixed at creation
//   - the stop plan always passes ValidateStopPlan
//   - cached totals mirror the most recent Rate snapshot
//   - terminal statuses (DELIVERED, CANCELLED) accept no further transitions
type Load struct {
	id                kernel.UUID
	tenantID          kernel.UUID
	referenceNumber   string
	customerReference string
	customerID        *kernel.UUID
	mode              Mode
	equipmentType     EquipmentType
	status            Status
	totalWeight       *int
	totalVolume       *int
	pieces            *int
	rateTotal         decimal.Decimal
	fuelSurcharge     decimal.Decimal
	accessorialTotal  decimal.Decimal
	currency          string
	stops             []Stop
	items             []Item
	accessorials      []AccessorialCharge

	isConstructed bool
}

// NewLoad creates a load in DRAFT status with the default currency. The stop
// plan is validated as a whole; items and accessorials are attached
// afterwards via AttachItems and AttachAccessorials.
func NewLoad(
	id kernel.UUID,
	tenantID kernel.UUID,
	referenceNumber string,
	mode Mode,
	equipmentType EquipmentType,
	stops []Stop,
) (*Load, error) {
	l := &Load{
		status:           StatusDraft,
		currency:         DefaultCurrency,
		rateTotal:        decimal.Zero,
		fuelSurcharge:    decimal.Zero,
		accessorialTotal: decimal.Zero,
		isConstructed:    true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setTenantID(tenantID),
		l.setReferenceNumber(referenceNumber),
		l.setMode(mode),
		l.setEquipmentType(equipmentType),
		l.replaceStops(stops),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoadParams carries every persisted field needed to rehydrate a Load.
type RestoreLoadParams struct {
	ID                kernel.UUID
	TenantID          kernel.UUID
	ReferenceNumber   string
	CustomerReference string
	CustomerID        *kernel.UUID
	Mode              Mode
	EquipmentType     EquipmentType
	Status            Status
	TotalWeight       *int
	TotalVolume       *int
	Pieces            *int
	RateTotal         decimal.Decimal
	FuelSurcharge     decimal.Decimal
	AccessorialTotal  decimal.Decimal
	Currency          string
	Stops             []Stop
	Items             []Item
	Accessorials      []AccessorialCharge
}

// RestoreLoad rebuilds a load from persistence. Field-level validation is
// re-applied; the stop plan is not, because historical rows may predate a
// stop-set replacement in flight.
func RestoreLoad(p RestoreLoadParams) (*Load, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.TenantID.Validate(),
		p.Status.Validate(),
		p.Mode.Validate(),
		p.EquipmentType.Validate(),
	); err != nil {
		return nil, err
	}
	if p.ReferenceNumber == "" {
		return nil, errs.NewValueIsRequiredError("referenceNumber")
	}
	if p.Currency == "" {
		return nil, errs.NewValueIsRequiredError("currency")
	}

	return &Load{
		id:                p.ID,
		tenantID:          p.TenantID,
		referenceNumber:   p.ReferenceNumber,
		customerReference: p.CustomerReference,
		customerID:        p.CustomerID,
		mode:              p.Mode,
		equipmentType:     p.EquipmentType,
		status:            p.Status,
		totalWeight:       p.TotalWeight,
		totalVolume:       p.TotalVolume,
		pieces:            p.Pieces,
		rateTotal:         p.RateTotal,
		fuelSurcharge:     p.FuelSurcharge,
		accessorialTotal:  p.AccessorialTotal,
		currency:          p.Currency,
		stops:             p.Stops,
		items:             p.Items,
		accessorials:      p.Accessorials,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Load was created through a constructor.
func (l *Load) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadIsNotConstructed
	}
	return nil
}

// IsEqual compares two loads by identifier.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's identifier.
func (l *Load) ID() kernel.UUID { return l.id }

// TenantID returns the owning tenant. Immutable after creation.
func (l *Load) TenantID() kernel.UUID { return l.tenantID }

// ReferenceNumber returns the tenant-unique booking reference.
func (l *Load) ReferenceNumber() string { return l.referenceNumber }

// CustomerReference returns the customer's own reference (PO number etc.).
func (l *Load) CustomerReference() string { return l.customerReference }

// CustomerID returns the customer the load is booked for, if any.
func (l *Load) CustomerID() *kernel.UUID { return l.customerID }

// Mode returns the transportation mode.
func (l *Load) Mode() Mode { return l.mode }

// EquipmentType returns the required equipment.
func (l *Load) EquipmentType() EquipmentType { return l.equipmentType }

// Status returns the current lifecycle status.
func (l *Load) Status() Status { return l.status }

// TotalWeight returns the declared total weight, if known.
func (l *Load) TotalWeight() *int { return l.totalWeight }

// TotalVolume returns the declared total volume, if known.
func (l *Load) TotalVolume() *int { return l.totalVolume }

// Pieces returns the declared piece count, if known.
func (l *Load) Pieces() *int { return l.pieces }

// RateTotal returns the cached total from the latest rate calculation.
func (l *Load) RateTotal() decimal.Decimal { return l.rateTotal }

// FuelSurcharge returns the cached fuel surcharge from the latest calculation.
func (l *Load) FuelSurcharge() decimal.Decimal { return l.fuelSurcharge }

// AccessorialTotal returns the cached accessorial total from the latest calculation.
func (l *Load) AccessorialTotal() decimal.Decimal { return l.accessorialTotal }

// Currency returns the load's billing currency.
func (l *Load) Currency() string { return l.currency }

// Stops returns the route, in stored order.
func (l *Load) Stops() []Stop { return l.stops }

// Items returns the freight description lines.
func (l *Load) Items() []Item { return l.items }

// Accessorials returns the supplemental charges attached at booking.
func (l *Load) Accessorials() []AccessorialCharge { return l.accessorials }

// SetCustomer books the load for a customer with the customer's own reference.
func (l *Load) SetCustomer(customerID *kernel.UUID, customerReference string) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
	}
	l.customerID = customerID
	l.customerReference = customerReference
	return nil
}

// SetDeclaredTotals records the declared weight, volume and piece count.
// Each value is optional but must be non-negative when present.
func (l *Load) SetDeclaredTotals(totalWeight, totalVolume, pieces *int) error {
	for name, v := range map[string]*int{
		"totalWeight": totalWeight,
		"totalVolume": totalVolume,
		"pieces":      pieces,
	} {
		if v != nil && *v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", *v))
		}
	}
	l.totalWeight = totalWeight
	l.totalVolume = totalVolume
	l.pieces = pieces
	return nil
}

// SetCurrency overrides the billing currency.
func (l *Load) SetCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	l.currency = currency
	return nil
}

// SetMode changes the transportation mode.
func (l *Load) SetMode(mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	l.mode = mode
	return nil
}

// SetEquipmentType changes the required equipment.
func (l *Load) SetEquipmentType(equipmentType EquipmentType) error {
	return l.setEquipmentType(equipmentType)
}

// SetReferenceNumber changes the booking reference. Tenant-uniqueness is
// enforced by the store.
func (l *Load) SetReferenceNumber(referenceNumber string) error {
	return l.setReferenceNumber(referenceNumber)
}

// AttachItems replaces the load's freight description lines.
func (l *Load) AttachItems(items []Item) {
	l.items = items
}

// AttachAccessorials replaces the load's booked supplemental charges.
func (l *Load) AttachAccessorials(accessorials []AccessorialCharge) {
	l.accessorials = accessorials
}

// ReplaceStops substitutes the entire stop plan. The new plan is validated
// as a whole before it is applied.
func (l *Load) ReplaceStops(stops []Stop) error {
	return l.replaceStops(stops)
}

// ChangeStatus moves the load to a new lifecycle status, subject to the
// Status transition rules.
func (l *Load) ChangeStatus(next Status) error {
	newStatus, err := l.status.TransitionTo(next)
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// Cancel soft-deletes the load. Cancelling an already-cancelled load is a
// no-op; cancelling a delivered load is rejected. Child entities are always
// retained for audit.
func (l *Load) Cancel() error {
	if l.status == StatusCancelled {
		return nil
	}
	if l.status == StatusDelivered {
		return fmt.Errorf("cancel load %s: %w", l.id, ErrLoadIsTerminal)
	}
	l.status = StatusCancelled
	return nil
}

// ApplyRate overwrites the cached totals with the components of a freshly
// appended rate snapshot. The snapshot itself is persisted separately; the
// two writes share one transaction.
func (l *Load) ApplyRate(rate Rate) {
	l.rateTotal = rate.Total()
	l.fuelSurcharge = rate.FuelSurcharge()
	l.accessorialTotal = rate.AccessorialTotal()
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tenantId", err)
	}
	l.tenantID = tenantID
	return nil
}

func (l *Load) setReferenceNumber(referenceNumber string) error {
	if len(referenceNumber) < 2 {
		return errs.NewValueIsInvalidErrorWithCause("referenceNumber",
			fmt.Errorf("%q is shorter than 2 characters", referenceNumber))
	}
	l.referenceNumber = referenceNumber
	return nil
}

func (l *Load) setMode(mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	l.mode = mode
	return nil
}

func (l *Load) setEquipmentType(equipmentType EquipmentType) error {
	if err := equipmentType.Validate(); err != nil {
		return err
	}
	l.equipmentType = equipmentType
	return nil
}

func (l *Load) replaceStops(stops []Stop) error {
	if err := ValidateStopPlan(stops); err != nil {
		return err
	}
	l.stops = stops
	return nil
}
