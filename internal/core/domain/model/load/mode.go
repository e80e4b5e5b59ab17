package load

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Mode is the transportation mode of a load.
type Mode int

const (
	ModeUnknown Mode = iota

	// ModeFTL is full truckload.
	ModeFTL

	// ModeLTL is less-than-truckload.
	ModeLTL

	// ModeIntermodal combines rail and road legs.
	ModeIntermodal

	// ModeDrayage is short-haul container movement.
	ModeDrayage
)

func getModeStrings() map[Mode]string {
	return map[Mode]string{
		ModeUnknown:    "UNKNOWN",
		ModeFTL:        "FTL",
		ModeLTL:        "LTL",
		ModeIntermodal: "INTERMODAL",
		ModeDrayage:    "DRAYAGE",
	}
}

// ModeFromString parses the wire representation of a mode.
func ModeFromString(s string) (Mode, error) {
	for mode, str := range getModeStrings() {
		if mode != ModeUnknown && str == s {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("mode",
		fmt.Errorf("%q is not a valid load mode", s))
}

// String returns the wire representation of the mode.
func (m Mode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the mode is one of the defined values.
func (m Mode) Validate() error {
	switch m {
	case ModeFTL, ModeLTL, ModeIntermodal, ModeDrayage:
		return nil
	case ModeUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("mode",
		fmt.Errorf("%d is not a valid load mode", m))
}
