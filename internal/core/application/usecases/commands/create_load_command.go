package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateLoadCommandIsNotConstructed = errors.New(
		"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
	)
	ErrStopsAreRequired = errors.New("at least one stop is required")
)

// CreateLoadOptions carries the optional fields of a load create request.
// Zero values mean "not supplied".
type CreateLoadOptions struct {
	CustomerReference string
	CustomerID        *kernel.UUID
	Currency          string
	TotalWeight       *int
	TotalVolume       *int
	Pieces            *int
	Items             []ItemParams
	Accessorials      []AccessorialParams
}

// CreateLoadCommand represents a request to create a new load with its stops,
// items and accessorial charges in one atomic operation.
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	tenantCtx       kernel.TenantContext
	loadID          kernel.UUID
	referenceNumber string
	mode            load.Mode
	equipmentType   load.EquipmentType
	stops           []StopParams
	options         CreateLoadOptions

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand creates a command to register a new load.
// Deep validation of stops, items and charges happens when the aggregate is
// built; the command only checks the request shape.
func NewCreateLoadCommand(
	tenantCtx kernel.TenantContext,
	loadID kernel.UUID,
	referenceNumber string,
	mode load.Mode,
	equipmentType load.EquipmentType,
	stops []StopParams,
	options CreateLoadOptions,
) (CreateLoadCommand, error) {
	cmd := CreateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantCtx(tenantCtx),
		cmd.setLoadID(loadID),
		cmd.setReferenceNumber(referenceNumber),
		cmd.setMode(mode),
		cmd.setEquipmentType(equipmentType),
		cmd.setStops(stops),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	cmd.options = options

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (c CreateLoadCommand) TenantCtx() kernel.TenantContext {
	return c.tenantCtx
}

// LoadID returns the identifier for the new load.
func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// ReferenceNumber returns the tenant-unique reference number.
func (c CreateLoadCommand) ReferenceNumber() string {
	return c.referenceNumber
}

// Mode returns the transportation mode.
func (c CreateLoadCommand) Mode() load.Mode {
	return c.mode
}

// EquipmentType returns the requested equipment.
func (c CreateLoadCommand) EquipmentType() load.EquipmentType {
	return c.equipmentType
}

// Stops returns the requested stop plan.
func (c CreateLoadCommand) Stops() []StopParams {
	return c.stops
}

// Options returns the optional request fields.
func (c CreateLoadCommand) Options() CreateLoadOptions {
	return c.options
}

func (c *CreateLoadCommand) setTenantCtx(tenantCtx kernel.TenantContext) error {
	if err := tenantCtx.Validate(); err != nil {
		return err
	}

	c.tenantCtx = tenantCtx
	return nil
}

func (c *CreateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *CreateLoadCommand) setReferenceNumber(referenceNumber string) error {
	if len(referenceNumber) < 2 {
		return errors.New("referenceNumber must be at least 2 characters")
	}

	c.referenceNumber = referenceNumber
	return nil
}

func (c *CreateLoadCommand) setMode(mode load.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *CreateLoadCommand) setEquipmentType(equipmentType load.EquipmentType) error {
	if err := equipmentType.Validate(); err != nil {
		return err
	}

	c.equipmentType = equipmentType
	return nil
}

func (c *CreateLoadCommand) setStops(stops []StopParams) error {
	if len(stops) == 0 {
		return ErrStopsAreRequired
	}

	c.stops = stops
	return nil
}
