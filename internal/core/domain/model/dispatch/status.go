package dispatch

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents a dispatch's state.
//
// State transitions:
//
//	CREATED ──┬──> ACCEPTED ──> IN_PROGRESS ──> COMPLETED (terminal)
//	          │
//	          └──> REJECTED (terminal)
//
// Accept and Reject are only valid from CREATED; progress statuses are
// recorded through RecordStatus, which refuses to touch a terminal dispatch.
type Status int

const (
	// StatusUnknown is an invalid, uninitialized status.
	StatusUnknown Status = iota

	// StatusCreated is the initial state of a dispatch awaiting a response.
	StatusCreated

	// StatusAccepted means the driver/carrier accepted the assignment.
	StatusAccepted

	// StatusRejected means the assignment was declined. Terminal.
	StatusRejected

	// StatusInProgress means the dispatch is being executed.
	StatusInProgress

	// StatusCompleted means the dispatch finished. Terminal.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusCreated:    "CREATED",
		StatusAccepted:   "ACCEPTED",
		StatusRejected:   "REJECTED",
		StatusInProgress: "IN_PROGRESS",
		StatusCompleted:  "COMPLETED",
	}
}

// StatusFromString parses the wire representation of a dispatch status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid dispatch status", s))
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
	case StatusCreated, StatusAccepted, StatusRejected, StatusInProgress, StatusCompleted:
		return nil
	case StatusUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid dispatch status", s))
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// Accept transitions to ACCEPTED. Only valid from CREATED.
func (s Status) Accept() (Status, error) {
	if s != StatusCreated {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot be accepted, only a created dispatch can", s))
	}
	return StatusAccepted, nil
}

// Reject transitions to REJECTED. Only valid from CREATED.
func (s Status) Reject() (Status, error) {
	if s != StatusCreated {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot be rejected, only a created dispatch can", s))
	}
	return StatusRejected, nil
}

// Record transitions to a progress status (IN_PROGRESS or COMPLETED).
// Acceptance and rejection have their own transitions because they stamp
// timestamps; terminal dispatches accept nothing.
func (s Status) Record(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal, cannot record %s", s, next))
	}
	if next != StatusInProgress && next != StatusCompleted {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot be recorded, use accept/reject for responses", next))
	}

	return next, nil
}
