package commands

import (
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// StopParams describes one stop of a load's route as supplied by the caller.
// Identifiers are assigned when the stop is built.
type StopParams struct {
	LocationID         kernel.UUID
	SequenceNumber     int
	StopType           load.StopType
	ScheduledArrival   *time.Time
	ScheduledDeparture *time.Time
	Instructions       string
}

// ItemParams describes one freight item of a load.
type ItemParams struct {
	Description string
	Weight      *int
	Volume      *int
	Pieces      *int
	NMFCCode    string
}

// AccessorialParams describes one accessorial charge of a load.
type AccessorialParams struct {
	ChargeType  load.AccessorialType
	Amount      decimal.Decimal
	Description string
}

func buildStops(params []StopParams) ([]load.Stop, error) {
	stops := make([]load.Stop, 0, len(params))
	for _, p := range params {
		stop, err := load.NewStop(kernel.NewUUID(), p.LocationID, p.SequenceNumber,
			p.StopType, p.ScheduledArrival, p.ScheduledDeparture, p.Instructions)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

func buildItems(params []ItemParams) ([]load.Item, error) {
	items := make([]load.Item, 0, len(params))
	for _, p := range params {
		item, err := load.NewItem(kernel.NewUUID(), p.Description, p.Weight, p.Volume, p.Pieces, p.NMFCCode)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildAccessorials(params []AccessorialParams) ([]load.AccessorialCharge, error) {
	charges := make([]load.AccessorialCharge, 0, len(params))
	for _, p := range params {
		charge, err := load.NewAccessorialCharge(kernel.NewUUID(), p.ChargeType, p.Amount, p.Description)
		if err != nil {
			return nil, err
		}
		charges = append(charges, charge)
	}
	return charges, nil
}
