package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListDispatchesQueryIsNotConstructed = errors.New(
	"ListDispatchesQuery must be created via NewListDispatchesQuery constructor",
)

// ListDispatchesQuery retrieves the tenant's dispatch board, newest first.
// An optional status narrows the board to one column.
type ListDispatchesQuery struct {
	tenantCtx kernel.TenantContext
	status    string

	guard guard.ConstructorGuard
}

// NewListDispatchesQuery creates a query for the dispatch board.
func NewListDispatchesQuery(tenantCtx kernel.TenantContext, status string) (ListDispatchesQuery, error) {
	if err := tenantCtx.Validate(); err != nil {
		return ListDispatchesQuery{}, err
	}

	return ListDispatchesQuery{
		tenantCtx: tenantCtx,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDispatchesQuery) Validate() error {
	return q.guard.Validate(ErrListDispatchesQueryIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (q ListDispatchesQuery) TenantCtx() kernel.TenantContext { return q.tenantCtx }

// Status returns the optional status filter, or "".
func (q ListDispatchesQuery) Status() string { return q.status }

// DispatchBoardResponse is one row of the dispatch board, joined with the
// dispatched load's reference for display.
type DispatchBoardResponse struct {
	ID                  kernel.UUID
	LoadID              kernel.UUID
	LoadReferenceNumber string
	DriverID            *kernel.UUID
	CarrierID           *kernel.UUID
	Status              string
	PlannedStart        *time.Time
	PlannedEnd          *time.Time
	AcceptedAt          *time.Time
	RejectedAt          *time.Time
	Notes               string
	CreatedAt           time.Time
}
