package invoice

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents an invoice's billing state. Unlike loads and dispatches
// there is no transition guard: DRAFT, SENT, PAID and VOID are freely
// settable and callers own the bookkeeping discipline.
type Status int

const (
	StatusUnknown Status = iota

	// StatusDraft is the initial state of a newly created invoice.
	StatusDraft

	// StatusSent means the invoice was delivered to the customer.
	StatusSent

	// StatusPaid means payment was received.
	StatusPaid

	// StatusVoid means the invoice was voided.
	StatusVoid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		StatusDraft:   "DRAFT",
		StatusSent:    "SENT",
		StatusPaid:    "PAID",
		StatusVoid:    "VOID",
	}
}

// StatusFromString parses the wire representation of an invoice status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid invoice status", s))
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
	case StatusDraft, StatusSent, StatusPaid, StatusVoid:
		return nil
	case StatusUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%d is not a valid invoice status", s))
}
