package load

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Rate is an immutable snapshot of a rate calculation. One is appended every
// time a calculation runs; the history is never rewritten, and the load's
// cached totals always mirror the newest snapshot.
type Rate struct {
	id               kernel.UUID
	baseRate         decimal.Decimal
	fuelSurcharge    decimal.Decimal
	accessorialTotal decimal.Decimal
	currency         string
	createdAt        time.Time
}

// NewRate creates a rate snapshot. The fuel surcharge of an omitted input is
// zero; the accessorial total is computed by the caller via SumAccessorials.
func NewRate(
	id kernel.UUID,
	baseRate decimal.Decimal,
	fuelSurcharge decimal.Decimal,
	accessorialTotal decimal.Decimal,
	currency string,
	createdAt time.Time,
) (Rate, error) {
	if err := id.Validate(); err != nil {
		return Rate{}, err
	}
	if currency == "" {
		return Rate{}, errs.NewValueIsRequiredError("currency")
	}

	return Rate{
		id:               id,
		baseRate:         baseRate,
		fuelSurcharge:    fuelSurcharge,
		accessorialTotal: accessorialTotal,
		currency:         currency,
		createdAt:        createdAt,
	}, nil
}

// ID returns the snapshot's identifier.
func (r Rate) ID() kernel.UUID { return r.id }

// BaseRate returns the linehaul component.
func (r Rate) BaseRate() decimal.Decimal { return r.baseRate }

// FuelSurcharge returns the fuel component.
func (r Rate) FuelSurcharge() decimal.Decimal { return r.fuelSurcharge }

// AccessorialTotal returns the summed accessorial component.
func (r Rate) AccessorialTotal() decimal.Decimal { return r.accessorialTotal }

// Currency returns the snapshot currency, taken from the load.
func (r Rate) Currency() string { return r.currency }

// CreatedAt returns when the calculation ran.
func (r Rate) CreatedAt() time.Time { return r.createdAt }

// Total returns baseRate + fuelSurcharge + accessorialTotal.
func (r Rate) Total() decimal.Decimal {
	return r.baseRate.Add(r.fuelSurcharge).Add(r.accessorialTotal)
}
