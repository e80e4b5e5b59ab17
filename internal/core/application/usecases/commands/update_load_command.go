package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/guard"
)

var ErrUpdateLoadCommandIsNotConstructed = errors.New(
	"UpdateLoadCommand must be created via NewUpdateLoadCommand constructor",
)

// TotalsParams carries a full replacement for the load's declared totals.
type TotalsParams struct {
	TotalWeight *int
	TotalVolume *int
	Pieces      *int
}

// UpdateLoadChanges lists the fields a partial load update may touch.
// Nil fields are left unchanged; a non-nil Stops slice replaces the whole
// stop plan and is re-validated as a set.
type UpdateLoadChanges struct {
	ReferenceNumber   *string
	CustomerReference *string
	CustomerID        *kernel.UUID
	Mode              *load.Mode
	EquipmentType     *load.EquipmentType
	Status            *load.Status
	Currency          *string
	Totals            *TotalsParams
	Stops             []StopParams
	Items             []ItemParams
	Accessorials      []AccessorialParams
}

// UpdateLoadCommand represents a partial update of an existing load.
type UpdateLoadCommand struct { //nolint:recvcheck //using for validation
	tenantCtx kernel.TenantContext
	loadID    kernel.UUID
	changes   UpdateLoadChanges

	guard guard.ConstructorGuard
}

// NewUpdateLoadCommand creates a command to update a load. The change set
// may be empty; the update is then a no-op that still verifies existence.
func NewUpdateLoadCommand(
	tenantCtx kernel.TenantContext,
	loadID kernel.UUID,
	changes UpdateLoadChanges,
) (UpdateLoadCommand, error) {
	cmd := UpdateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCtx.Validate(),
		loadID.Validate(),
	); err != nil {
		return UpdateLoadCommand{}, err
	}

	cmd.tenantCtx = tenantCtx
	cmd.loadID = loadID
	cmd.changes = changes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLoadCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c UpdateLoadCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// LoadID returns the identifier of the load to update.
func (c UpdateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Changes returns the partial change set.
func (c UpdateLoadCommand) Changes() UpdateLoadChanges {
	return c.changes
}
