// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrListLoadsQueryIsNotConstructed = errors.New(
		"ListLoadsQuery must be created via NewListLoadsQuery constructor",
	)
	ErrPageIsInvalid     = errors.New("page must be greater than 0")
	ErrPageSizeIsInvalid = errors.New("pageSize must be between 1 and 200")
)

// LoadFilter narrows a load listing. Empty fields match everything.
type LoadFilter struct {
	Status        string
	Mode          string
	CustomerID    *kernel.UUID
	ReferenceLike string
}

// ListLoadsQuery retrieves a page of the tenant's loads, newest first.
type ListLoadsQuery struct {
	tenantCtx kernel.TenantContext
	filter    LoadFilter
	page      int
	pageSize  int

	guard guard.ConstructorGuard
}

// NewListLoadsQuery creates a query for a page of loads. Pages are 1-based.
func NewListLoadsQuery(tenantCtx kernel.TenantContext, filter LoadFilter, page, pageSize int) (ListLoadsQuery, error) {
	if err := tenantCtx.Validate(); err != nil {
		return ListLoadsQuery{}, err
	}
	if page <= 0 {
		return ListLoadsQuery{}, ErrPageIsInvalid
	}
	if pageSize <= 0 || pageSize > 200 {
		return ListLoadsQuery{}, ErrPageSizeIsInvalid
	}

	return ListLoadsQuery{
		tenantCtx: tenantCtx,
		filter:    filter,
		page:      page,
		pageSize:  pageSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListLoadsQueryIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (q ListLoadsQuery) TenantCtx() kernel.TenantContext { return q.tenantCtx }

// Filter returns the listing filter.
func (q ListLoadsQuery) Filter() LoadFilter { return q.filter }

// Page returns the 1-based page number.
func (q ListLoadsQuery) Page() int { return q.page }

// PageSize returns the page size.
func (q ListLoadsQuery) PageSize() int { return q.pageSize }

// LoadSummaryResponse is one row of a load listing.
type LoadSummaryResponse struct {
	ID              kernel.UUID
	ReferenceNumber string
	Mode            string
	EquipmentType   string
	Status          string
	RateTotal       decimal.Decimal
	Currency        string
	CreatedAt       time.Time
}

// ListLoadsResponse is a page of loads plus the unpaged total.
type ListLoadsResponse struct {
	Loads    []LoadSummaryResponse
	Total    int64
	Page     int
	PageSize int
}
