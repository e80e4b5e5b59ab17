package services

import (
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// RateCalculator is a domain service computing the full charge for a load.
//
// Business rules:
//   - accessorialTotal is the sum of the charges quoted for the calculation,
//     zero when none are quoted; charges attached to the load do not count
//   - total = baseRate + fuelSurcharge + accessorialTotal
//   - every calculation produces an immutable Rate snapshot in the load's
//     currency and overwrites the load's cached totals
//   - all arithmetic uses decimals, never floats
type RateCalculator struct{}

// NewRateCalculator creates a new RateCalculator instance.
func NewRateCalculator() RateCalculator {
	return RateCalculator{}
}

// Calculate builds a Rate snapshot for the load from the quoted charges and
// applies it to the load's cached totals. The snapshot is returned so callers
// can persist it to the append-only rate history.
func (RateCalculator) Calculate(
	aggregate *load.Load,
	baseRate, fuelSurcharge decimal.Decimal,
	accessorials []load.AccessorialCharge,
) (load.Rate, error) {
	accessorialTotal := load.SumAccessorials(accessorials)

	rate, err := load.NewRate(kernel.NewUUID(), baseRate, fuelSurcharge,
		accessorialTotal, aggregate.Currency(), time.Now().UTC())
	if err != nil {
		return load.Rate{}, err
	}

	aggregate.ApplyRate(rate)

	return rate, nil
}
