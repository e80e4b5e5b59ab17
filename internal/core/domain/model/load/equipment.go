package load

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// EquipmentType is the trailer or container type a load requires.
type EquipmentType int

const (
	EquipmentUnknown EquipmentType = iota
	EquipmentDryVan
	EquipmentReefer
	EquipmentFlatbed
	EquipmentStepDeck
	EquipmentTanker
	EquipmentContainer
)

func getEquipmentStrings() map[EquipmentType]string {
	return map[EquipmentType]string{
		EquipmentUnknown:   "UNKNOWN",
		EquipmentDryVan:    "DRY_VAN",
		EquipmentReefer:    "REEFER",
		EquipmentFlatbed:   "FLATBED",
		EquipmentStepDeck:  "STEP_DECK",
		EquipmentTanker:    "TANKER",
		EquipmentContainer: "CONTAINER",
	}
}

// EquipmentTypeFromString parses the wire representation of an equipment type.
func EquipmentTypeFromString(s string) (EquipmentType, error) {
	for et, str := range getEquipmentStrings() {
		if et != EquipmentUnknown && str == s {
			return et, nil
		}
	}
	return EquipmentUnknown, errs.NewValueIsInvalidErrorWithCause("equipmentType",
		fmt.Errorf("%q is not a valid equipment type", s))
}

// String returns the wire representation of the equipment type.
func (e EquipmentType) String() string {
	if str, ok := getEquipmentStrings()[e]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the equipment type is one of the defined values.
func (e EquipmentType) Validate() error {
	switch e {
	case EquipmentDryVan, EquipmentReefer, EquipmentFlatbed,
		EquipmentStepDeck, EquipmentTanker, EquipmentContainer:
		return nil
	case EquipmentUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("equipmentType",
		fmt.Errorf("%d is not a valid equipment type", e))
}
