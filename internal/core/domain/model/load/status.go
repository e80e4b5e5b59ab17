package load

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents a load's lifecycle state.
//
// State transitions:
//
//	DRAFT ──> DISPATCHED ──> IN_TRANSIT ──> DELIVERED (terminal)
//	   │           │              │
//	   └───────────┴──────────────┴──────> CANCELLED (terminal)
//
// Forward movement is permissive (operations teams correct statuses out of
// order all the time); the only hard rule is that nothing leaves a terminal
// state.
type Status int

const (
	// StatusUnknown is an invalid, uninitialized status.
	StatusUnknown Status = iota

	// StatusDraft is the initial state of a newly created load.
	StatusDraft

	// StatusDispatched means a dispatch has been assigned.
	StatusDispatched

	// StatusInTransit means the load is moving between stops.
	StatusInTransit

	// StatusDelivered means every delivery stop is complete. Terminal.
	StatusDelivered

	// StatusCancelled is the soft-deleted state. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusDraft:      "DRAFT",
		StatusDispatched: "DISPATCHED",
		StatusInTransit:  "IN_TRANSIT",
		StatusDelivered:  "DELIVERED",
		StatusCancelled:  "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a load status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid load status", s))
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusDispatched, StatusInTransit, StatusDelivered, StatusCancelled:
		return nil
	case StatusUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid load status", s))
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// TransitionTo validates a move to next and returns it.
// Any defined status is reachable from a non-terminal state; terminal states
// allow nothing.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal, cannot transition to %s", s, next))
	}

	return next, nil
}
