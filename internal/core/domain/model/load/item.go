package load

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// Item is a descriptive line on a load: what is being moved. Items carry no
// lifecycle rules beyond non-negative numeric fields.
type Item struct {
	id          kernel.UUID
	description string
	weight      *int
	volume      *int
	pieces      *int
	nmfcCode    string
}

// NewItem creates a validated load item. Weight, volume and pieces are
// optional but must be non-negative when present.
func NewItem(id kernel.UUID, description string, weight, volume, pieces *int, nmfcCode string) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if description == "" {
		return Item{}, errs.NewValueIsRequiredError("description")
	}
	for name, v := range map[string]*int{"weight": weight, "volume": volume, "pieces": pieces} {
		if v != nil && *v < 0 {
			return Item{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%d is negative", *v))
		}
	}

	return Item{
		id:          id,
		description: description,
		weight:      weight,
		volume:      volume,
		pieces:      pieces,
		nmfcCode:    nmfcCode,
	}, nil
}

// ID returns the item's identifier.
func (i Item) ID() kernel.UUID { return i.id }

// Description returns what the item is.
func (i Item) Description() string { return i.description }

// Weight returns the item weight, if known.
func (i Item) Weight() *int { return i.weight }

// Volume returns the item volume, if known.
func (i Item) Volume() *int { return i.volume }

// Pieces returns the piece count, if known.
func (i Item) Pieces() *int { return i.pieces }

// NMFCCode returns the freight classification code, if any.
func (i Item) NMFCCode() string { return i.nmfcCode }
