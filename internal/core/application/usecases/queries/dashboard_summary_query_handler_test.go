package queries_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
)

// stubSummaryCache is an in-memory SummaryCache for handler tests.
type stubSummaryCache struct {
	entries map[kernel.UUID]*queries.DashboardSummaryResponse
	sets    int
	hits    int
}

func newStubSummaryCache() *stubSummaryCache {
	return &stubSummaryCache{entries: make(map[kernel.UUID]*queries.DashboardSummaryResponse)}
}

func (c *stubSummaryCache) Get(_ context.Context, tenantID kernel.UUID) (*queries.DashboardSummaryResponse, error) {
	if cached, ok := c.entries[tenantID]; ok {
		c.hits++
		return cached, nil
	}
	return nil, nil
}

func (c *stubSummaryCache) Set(_ context.Context, tenantID kernel.UUID, summary queries.DashboardSummaryResponse) error {
	c.entries[tenantID] = &summary
	c.sets++
	return nil
}

func (suite *BillingQueriesTestSuite) TestDashboard_EmptyTenant_ReturnsZeroes() {
	handler := queries.NewDashboardSummaryQueryHandler(suite.db, nil)

	query, err := queries.NewDashboardSummaryQuery(suite.tenantCtx)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(0), result.RecentLoadCount)
	suite.Empty(result.LoadsByStatus)
	suite.Equal(int64(0), result.ActiveDispatchCount)
	suite.Empty(result.MonthlyRevenue)
	suite.False(result.GeneratedAt.IsZero())
}

func (suite *BillingQueriesTestSuite) TestDashboard_CountsLoadsByStatus() {
	suite.seedDashboardLoad("DASH-1001", load.StatusDraft)
	suite.seedDashboardLoad("DASH-1002", load.StatusDraft)
	suite.seedDashboardLoad("DASH-1003", load.StatusDispatched)

	handler := queries.NewDashboardSummaryQueryHandler(suite.db, nil)
	query, err := queries.NewDashboardSummaryQuery(suite.tenantCtx)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(3), result.RecentLoadCount)
	suite.Require().Len(result.LoadsByStatus, 2)

	counts := make(map[string]int64)
	for _, row := range result.LoadsByStatus {
		counts[row.Status] = row.Count
	}
	suite.Equal(int64(2), counts["DRAFT"])
	suite.Equal(int64(1), counts["DISPATCHED"])
}

func (suite *BillingQueriesTestSuite) TestDashboard_CountsOnlyActiveDispatches() {
	suite.seedDashboardDispatch(dispatch.StatusCreated)
	suite.seedDashboardDispatch(dispatch.StatusInProgress)
	suite.seedDashboardDispatch(dispatch.StatusCompleted)
	suite.seedDashboardDispatch(dispatch.StatusRejected)

	handler := queries.NewDashboardSummaryQueryHandler(suite.db, nil)
	query, err := queries.NewDashboardSummaryQuery(suite.tenantCtx)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.ActiveDispatchCount)
}

func (suite *BillingQueriesTestSuite) TestDashboard_RevenueExcludesVoidAndOldInvoices() {
	now := time.Now().UTC()
	recent := now.AddDate(0, -1, 0)
	stale := now.AddDate(0, -8, 0)

	suite.seedInvoice(invoice.StatusSent, decimal.NewFromInt(1000), &recent)
	suite.seedInvoice(invoice.StatusPaid, decimal.NewFromInt(500), &recent)
	suite.seedInvoice(invoice.StatusVoid, decimal.NewFromInt(9999), &recent)
	suite.seedInvoice(invoice.StatusPaid, decimal.NewFromInt(7777), &stale)

	handler := queries.NewDashboardSummaryQueryHandler(suite.db, nil)
	query, err := queries.NewDashboardSummaryQuery(suite.tenantCtx)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.MonthlyRevenue, 1)
	suite.Equal(recent.Format("2006-01"), result.MonthlyRevenue[0].Month)
	suite.True(result.MonthlyRevenue[0].Revenue.Equal(decimal.NewFromInt(1500)))
}

func (suite *BillingQueriesTestSuite) TestDashboard_SecondCallServedFromCache() {
	suite.seedDashboardLoad("DASH-2001", load.StatusDraft)

	cache := newStubSummaryCache()
	handler := queries.NewDashboardSummaryQueryHandler(suite.db, cache)
	query, err := queries.NewDashboardSummaryQuery(suite.tenantCtx)
	suite.Require().NoError(err)

	first, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(1, cache.sets)
	suite.Equal(0, cache.hits)

	// A load created after caching is not visible until the entry expires
	suite.seedDashboardLoad("DASH-2002", load.StatusDraft)

	second, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(1, cache.sets)
	suite.Equal(1, cache.hits)
	suite.Equal(first.RecentLoadCount, second.RecentLoadCount)
	suite.True(first.GeneratedAt.Equal(second.GeneratedAt))
}

func (suite *BillingQueriesTestSuite) seedDashboardLoad(reference string, status load.Status) {
	pickup, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), 1, load.StopTypePickup, nil, nil, "")
	suite.Require().NoError(err)
	delivery, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), 2, load.StopTypeDelivery, nil, nil, "")
	suite.Require().NoError(err)

	seeded, err := load.NewLoad(
		kernel.NewUUID(), suite.tenantCtx.TenantID(), reference, load.ModeFTL,
		load.EquipmentDryVan, []load.Stop{pickup, delivery})
	suite.Require().NoError(err)

	if status != load.StatusDraft {
		suite.Require().NoError(seeded.ChangeStatus(status))
	}

	suite.Require().NoError(suite.loads.Add(context.Background(), seeded))
}

func (suite *BillingQueriesTestSuite) seedDashboardDispatch(status dispatch.Status) {
	seeded, err := dispatch.RestoreDispatch(dispatch.RestoreDispatchParams{
		ID:       kernel.NewUUID(),
		TenantID: suite.tenantCtx.TenantID(),
		LoadID:   kernel.NewUUID(),
		Status:   status,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dispatches.Add(context.Background(), seeded))
}
