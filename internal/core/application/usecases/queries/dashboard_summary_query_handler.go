package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DashboardSummaryQueryHandler computes the tenant dashboard. Summaries go
// through an optional read-through cache because every widget on the landing
// page requests them.
type DashboardSummaryQueryHandler struct {
	db    *gorm.DB
	cache SummaryCache
}

// NewDashboardSummaryQueryHandler creates a handler for dashboard queries.
// The cache may be nil; the handler then always computes from the database.
func NewDashboardSummaryQueryHandler(db *gorm.DB, cache SummaryCache) DashboardSummaryQueryHandler {
	return DashboardSummaryQueryHandler{db: db, cache: cache}
}

// Handle executes the query. A cached summary is returned as-is; a computed
// one is written back to the cache best-effort.
func (h DashboardSummaryQueryHandler) Handle(ctx context.Context, query DashboardSummaryQuery) (DashboardSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardSummaryResponse{}, err
	}

	tenantID := query.TenantCtx().TenantID()

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, tenantID); err == nil && cached != nil {
			return *cached, nil
		}
	}

	now := time.Now().UTC()
	summary := DashboardSummaryResponse{GeneratedAt: now}

	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM loads
		WHERE tenant_id = ? AND created_at >= ?
	`, tenantID.Bytes(), now.AddDate(0, 0, -30)).Scan(&summary.RecentLoadCount).Error
	if err != nil {
		return DashboardSummaryResponse{}, err
	}

	if summary.LoadsByStatus, err = h.scanStatusCounts(ctx, query); err != nil {
		return DashboardSummaryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM dispatches
		WHERE tenant_id = ? AND status IN ('CREATED', 'ACCEPTED', 'IN_PROGRESS')
	`, tenantID.Bytes()).Scan(&summary.ActiveDispatchCount).Error
	if err != nil {
		return DashboardSummaryResponse{}, err
	}

	if summary.MonthlyRevenue, err = h.scanMonthlyRevenue(ctx, query, now); err != nil {
		return DashboardSummaryResponse{}, err
	}

	if h.cache != nil {
		_ = h.cache.Set(ctx, tenantID, summary)
	}

	return summary, nil
}

func (h DashboardSummaryQueryHandler) scanStatusCounts(ctx context.Context, query DashboardSummaryQuery) ([]StatusCount, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM loads
		WHERE tenant_id = ?
		GROUP BY status
		ORDER BY status
	`, query.TenantCtx().TenantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]StatusCount, 0)
	for rows.Next() {
		var count StatusCount
		if err = rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}

func (h DashboardSummaryQueryHandler) scanMonthlyRevenue(ctx context.Context, query DashboardSummaryQuery, now time.Time) ([]MonthlyRevenue, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT to_char(date_trunc('month', issued_at), 'YYYY-MM') AS month, SUM(amount)
		FROM invoices
		WHERE tenant_id = ?
			AND status != 'VOID'
			AND issued_at >= ?
		GROUP BY month
		ORDER BY month
	`, query.TenantCtx().TenantID().Bytes(), now.AddDate(0, -6, 0)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revenue := make([]MonthlyRevenue, 0)
	for rows.Next() {
		var month MonthlyRevenue
		if err = rows.Scan(&month.Month, &month.Revenue); err != nil {
			return nil, err
		}
		revenue = append(revenue, month)
	}

	return revenue, rows.Err()
}
