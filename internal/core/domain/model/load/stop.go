package load

import (
	"fmt"
	"sort"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrIncompleteRoute is returned when a stop plan lacks a pickup or a
	// delivery stop.
	ErrIncompleteRoute = errs.NewValueIsInvalidErrorWithCause("stops",
		fmt.Errorf("a load requires at least one pickup and one delivery stop"))

	// ErrNonContiguousSequence is returned when stop sequence numbers are not
	// exactly 1..N.
	ErrNonContiguousSequence = errs.NewValueIsInvalidErrorWithCause("stops",
		fmt.Errorf("stop sequence numbers must be contiguous starting at 1"))
)

// StopType distinguishes pickups from deliveries.
type StopType int

const (
	StopTypeUnknown StopType = iota
	StopTypePickup
	StopTypeDelivery
)

func getStopTypeStrings() map[StopType]string {
	return map[StopType]string{
		StopTypeUnknown:  "UNKNOWN",
		StopTypePickup:   "PICKUP",
		StopTypeDelivery: "DELIVERY",
	}
}

// StopTypeFromString parses the wire representation of a stop type.
func StopTypeFromString(s string) (StopType, error) {
	for st, str := range getStopTypeStrings() {
		if st != StopTypeUnknown && str == s {
			return st, nil
		}
	}
	return StopTypeUnknown, errs.NewValueIsInvalidErrorWithCause("stopType",
		fmt.Errorf("%q is not a valid stop type", s))
}

// String returns the wire representation of the stop type.
func (s StopType) String() string {
	if str, ok := getStopTypeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the stop type is one of the defined values.
func (s StopType) Validate() error {
	switch s {
	case StopTypePickup, StopTypeDelivery:
		return nil
	case StopTypeUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("stopType",
		fmt.Errorf("%d is not a valid stop type", s))
}

// Stop is a single pickup or delivery location on a load's route, ordered by
// sequence number.
type Stop struct {
	id                 kernel.UUID
	locationID         kernel.UUID
	sequenceNumber     int
	stopType           StopType
	scheduledArrival   *time.Time
	scheduledDeparture *time.Time
	instructions       string
}

// NewStop creates a validated stop. Sequence numbers must be positive;
// plan-level contiguity is checked by ValidateStopPlan.
func NewStop(
	id kernel.UUID,
	locationID kernel.UUID,
	sequenceNumber int,
	stopType StopType,
	scheduledArrival *time.Time,
	scheduledDeparture *time.Time,
	instructions string,
) (Stop, error) {
	if err := id.Validate(); err != nil {
		return Stop{}, err
	}
	if err := locationID.Validate(); err != nil {
		return Stop{}, errs.NewValueIsRequiredErrorWithCause("locationId", err)
	}
	if sequenceNumber <= 0 {
		return Stop{}, errs.NewValueIsInvalidErrorWithCause("sequenceNumber",
			fmt.Errorf("%d is not greater than 0", sequenceNumber))
	}
	if err := stopType.Validate(); err != nil {
		return Stop{}, err
	}

	return Stop{
		id:                 id,
		locationID:         locationID,
		sequenceNumber:     sequenceNumber,
		stopType:           stopType,
		scheduledArrival:   scheduledArrival,
		scheduledDeparture: scheduledDeparture,
		instructions:       instructions,
	}, nil
}

// ID returns the stop's identifier.
func (s Stop) ID() kernel.UUID { return s.id }

// LocationID returns the referenced location.
func (s Stop) LocationID() kernel.UUID { return s.locationID }

// SequenceNumber returns the stop's 1-based position on the route.
func (s Stop) SequenceNumber() int { return s.sequenceNumber }

// StopType returns whether this is a pickup or a delivery.
func (s Stop) StopType() StopType { return s.stopType }

// ScheduledArrival returns the planned arrival time, if set.
func (s Stop) ScheduledArrival() *time.Time { return s.scheduledArrival }

// ScheduledDeparture returns the planned departure time, if set.
func (s Stop) ScheduledDeparture() *time.Time { return s.scheduledDeparture }

// Instructions returns free-form handling instructions.
func (s Stop) Instructions() string { return s.instructions }

// ValidateStopPlan checks a load's stop plan as a whole. The plan must
// contain at least one pickup and one delivery, and the sequence numbers must
// be exactly the contiguous integers 1..N. Duplicates fail the contiguity
// check. The check is pure; it is run before a load is created and before any
// update that replaces the stop set.
func ValidateStopPlan(stops []Stop) error {
	pickups, deliveries := 0, 0
	for _, s := range stops {
		switch s.stopType {
		case StopTypePickup:
			pickups++
		case StopTypeDelivery:
			deliveries++
		case StopTypeUnknown:
		}
	}
	if pickups == 0 || deliveries == 0 {
		return ErrIncompleteRoute
	}

	sequences := make([]int, 0, len(stops))
	for _, s := range stops {
		sequences = append(sequences, s.sequenceNumber)
	}
	sort.Ints(sequences)
	for i, seq := range sequences {
		if seq != i+1 {
			return ErrNonContiguousSequence
		}
	}

	return nil
}
