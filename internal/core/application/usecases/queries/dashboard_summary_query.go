package queries

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDashboardSummaryQueryIsNotConstructed = errors.New(
	"DashboardSummaryQuery must be created via NewDashboardSummaryQuery constructor",
)

// SummaryCache is a read-through cache for dashboard summaries. Get returns
// nil on a miss; Set failures are non-fatal and callers may ignore them.
type SummaryCache interface {
	Get(ctx context.Context, tenantID kernel.UUID) (*DashboardSummaryResponse, error)
	Set(ctx context.Context, tenantID kernel.UUID, summary DashboardSummaryResponse) error
}

// DashboardSummaryQuery retrieves the tenant's operational dashboard:
// recent load volume, loads by status, open dispatches and billed revenue
// by month.
type DashboardSummaryQuery struct {
	tenantCtx kernel.TenantContext

	guard guard.ConstructorGuard
}

// NewDashboardSummaryQuery creates a query for the tenant's dashboard.
func NewDashboardSummaryQuery(tenantCtx kernel.TenantContext) (DashboardSummaryQuery, error) {
	if err := tenantCtx.Validate(); err != nil {
		return DashboardSummaryQuery{}, err
	}

	return DashboardSummaryQuery{
		tenantCtx: tenantCtx,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrDashboardSummaryQueryIsNotConstructed)
}

// TenantCtx returns the caller's tenant context.
func (q DashboardSummaryQuery) TenantCtx() kernel.TenantContext { return q.tenantCtx }

// StatusCount is the number of loads in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MonthlyRevenue is the invoiced amount of one calendar month.
type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardSummaryResponse is the tenant's dashboard read model.
type DashboardSummaryResponse struct {
	RecentLoadCount     int64            `json:"recentLoadCount"`
	LoadsByStatus       []StatusCount    `json:"loadsByStatus"`
	ActiveDispatchCount int64            `json:"activeDispatchCount"`
	MonthlyRevenue      []MonthlyRevenue `json:"monthlyRevenue"`
	GeneratedAt         time.Time        `json:"generatedAt"`
}
