package load

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AccessorialType classifies a supplemental charge.
type AccessorialType int

const (
	AccessorialUnknown AccessorialType = iota
	AccessorialDetention
	AccessorialLayover
	AccessorialLumper
	AccessorialLiftgate
	AccessorialTONU
	AccessorialOther
)

func getAccessorialStrings() map[AccessorialType]string {
	return map[AccessorialType]string{
		AccessorialUnknown:   "UNKNOWN",
		AccessorialDetention: "DETENTION",
		AccessorialLayover:   "LAYOVER",
		AccessorialLumper:    "LUMPER",
		AccessorialLiftgate:  "LIFTGATE",
		AccessorialTONU:      "TONU",
		AccessorialOther:     "OTHER",
	}
}

// AccessorialTypeFromString parses the wire representation of an accessorial type.
func AccessorialTypeFromString(s string) (AccessorialType, error) {
	for at, str := range getAccessorialStrings() {
		if at != AccessorialUnknown && str == s {
			return at, nil
		}
	}
	return AccessorialUnknown, errs.NewValueIsInvalidErrorWithCause("accessorialType",
		fmt.Errorf("%q is not a valid accessorial type", s))
}

// String returns the wire representation of the accessorial type.
func (a AccessorialType) String() string {
	if str, ok := getAccessorialStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the accessorial type is one of the defined values.
func (a AccessorialType) Validate() error {
	switch a {
	case AccessorialDetention, AccessorialLayover, AccessorialLumper,
		AccessorialLiftgate, AccessorialTONU, AccessorialOther:
		return nil
	case AccessorialUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("accessorialType",
		fmt.Errorf("%d is not a valid accessorial type", a))
}

// AccessorialCharge is a supplemental fee (detention, layover, ...) added to
// a load's billed total. Amounts are non-negative; credits are modeled as
// separate invoice adjustments, not negative accessorials.
type AccessorialCharge struct {
	id          kernel.UUID
	chargeType  AccessorialType
	amount      decimal.Decimal
	description string
}

// NewAccessorialCharge creates a validated accessorial charge.
func NewAccessorialCharge(id kernel.UUID, chargeType AccessorialType, amount decimal.Decimal, description string) (AccessorialCharge, error) {
	if err := id.Validate(); err != nil {
		return AccessorialCharge{}, err
	}
	if err := chargeType.Validate(); err != nil {
		return AccessorialCharge{}, err
	}
	if amount.IsNegative() {
		return AccessorialCharge{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return AccessorialCharge{
		id:          id,
		chargeType:  chargeType,
		amount:      amount,
		description: description,
	}, nil
}

// ID returns the charge's identifier.
func (c AccessorialCharge) ID() kernel.UUID { return c.id }

// Type returns the charge classification.
func (c AccessorialCharge) Type() AccessorialType { return c.chargeType }

// Amount returns the charge amount.
func (c AccessorialCharge) Amount() decimal.Decimal { return c.amount }

// Description returns the free-form explanation.
func (c AccessorialCharge) Description() string { return c.description }

// SumAccessorials totals a list of accessorial charges. An empty list sums
// to zero.
func SumAccessorials(charges []AccessorialCharge) decimal.Decimal {
	total := decimal.Zero
	for _, c := range charges {
		total = total.Add(c.amount)
	}
	return total
}
