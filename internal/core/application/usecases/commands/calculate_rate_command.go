package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCalculateRateCommandIsNotConstructed = errors.New(
		"CalculateRateCommand must be created via NewCalculateRateCommand constructor",
	)
	ErrBaseRateIsNegative          = errors.New("baseRate cannot be negative")
	ErrFuelSurchargeIsNegative     = errors.New("fuelSurcharge cannot be negative")
	ErrAccessorialAmountIsNegative = errors.New("accessorial amount cannot be negative")
)

// CalculateRateCommand represents a request to recalculate a load's charges
// from a base rate, a fuel surcharge and the accessorials quoted for this
// calculation. The accessorial total is the sum of the supplied charges, zero
// when none are supplied; charges attached to the load are not consulted.
type CalculateRateCommand struct { //nolint:recvcheck //using for validation
	tenantCtx     kernel.TenantContext
	loadID        kernel.UUID
	baseRate      decimal.Decimal
	fuelSurcharge decimal.Decimal
	accessorials  []AccessorialParams

	guard guard.ConstructorGuard
}

// NewCalculateRateCommand creates a command to recalculate a load's rate.
// An omitted fuel surcharge is passed as decimal.Zero; omitted accessorials
// as a nil slice.
func NewCalculateRateCommand(
	tenantCtx kernel.TenantContext,
	loadID kernel.UUID,
	baseRate decimal.Decimal,
	fuelSurcharge decimal.Decimal,
	accessorials []AccessorialParams,
) (CalculateRateCommand, error) {
	cmd := CalculateRateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		loadID.Validate(),
	); err != nil {
		return CalculateRateCommand{}, err
	}
	if baseRate.IsNegative() {
		return CalculateRateCommand{}, ErrBaseRateIsNegative
	}
	if fuelSurcharge.IsNegative() {
		return CalculateRateCommand{}, ErrFuelSurchargeIsNegative
	}
	for _, a := range accessorials {
		if err := a.ChargeType.Validate(); err != nil {
			return CalculateRateCommand{}, err
		}
		if a.Amount.IsNegative() {
			return CalculateRateCommand{}, ErrAccessorialAmountIsNegative
		}
	}

	cmd.tenantCtx = tenantCtx
	cmd.loadID = loadID
	cmd.baseRate = baseRate
	cmd.fuelSurcharge = fuelSurcharge
	cmd.accessorials = accessorials

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CalculateRateCommand) Validate() error {
	return c.guard.Validate(ErrCalculateRateCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c CalculateRateCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// LoadID returns the identifier of the load to rate.
func (c CalculateRateCommand) LoadID() kernel.UUID {
	return c.loadID
}

// BaseRate returns the linehaul component.
func (c CalculateRateCommand) BaseRate() decimal.Decimal {
	return c.baseRate
}

// FuelSurcharge returns the fuel surcharge component.
func (c CalculateRateCommand) FuelSurcharge() decimal.Decimal {
	return c.fuelSurcharge
}

// Accessorials returns the charges quoted for this calculation.
func (c CalculateRateCommand) Accessorials() []AccessorialParams {
	return c.accessorials
}
