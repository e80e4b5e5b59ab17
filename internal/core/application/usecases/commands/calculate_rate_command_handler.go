package commands

import (
	"context"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/services"
)

// RateResult is the outcome of a rate calculation.
type RateResult struct {
	Total    decimal.Decimal
	Currency string
}

// CalculateRateCommandHandler recalculates a load's charges. The snapshot
// insert and the cached-total update share one transaction so the load's
// totals always reflect the latest snapshot.
type CalculateRateCommandHandler struct {
	uowFactory LoadUoWFactory
	calculator services.RateCalculator
}

// NewCalculateRateCommandHandler creates a handler for rate calculations.
func NewCalculateRateCommandHandler(uowFactory LoadUoWFactory) CalculateRateCommandHandler {
	return CalculateRateCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewRateCalculator(),
	}
}

// Handle processes the rate calculation command. Previous cached totals are
// overwritten, not accumulated; the snapshot history is append-only.
func (h *CalculateRateCommandHandler) Handle(ctx context.Context, cmd CalculateRateCommand) (RateResult, error) {
	if err := cmd.Validate(); err != nil {
		return RateResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()
	aggregate, err := loadRepo.Get(ctx, cmd.TenantCtx().TenantID(), cmd.LoadID())
	if err != nil {
		return RateResult{}, err
	}

	accessorials, err := buildAccessorials(cmd.Accessorials())
	if err != nil {
		return RateResult{}, err
	}

	rate, err := h.calculator.Calculate(aggregate, cmd.BaseRate(), cmd.FuelSurcharge(), accessorials)
	if err != nil {
		return RateResult{}, err
	}

	if err = loadRepo.AddRate(ctx, cmd.TenantCtx().TenantID(), aggregate.ID(), rate); err != nil {
		return RateResult{}, err
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return RateResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RateResult{}, err
	}

	return RateResult{Total: rate.Total(), Currency: rate.Currency()}, nil
}
