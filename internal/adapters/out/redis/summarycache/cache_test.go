package summarycache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight/internal/adapters/out/redis/summarycache"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
)

func setupCache(t *testing.T) (*summarycache.RedisSummaryCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache, err := summarycache.NewRedisSummaryCache(client, 5*time.Minute)
	require.NoError(t, err)

	return cache, server
}

func testSummary() queries.DashboardSummaryResponse {
	return queries.DashboardSummaryResponse{
		RecentLoadCount: 12,
		LoadsByStatus: []queries.StatusCount{
			{Status: "DRAFT", Count: 4},
			{Status: "IN_TRANSIT", Count: 8},
		},
		ActiveDispatchCount: 3,
		MonthlyRevenue: []queries.MonthlyRevenue{
			{Month: "2025-06", Revenue: decimal.NewFromInt(15400)},
		},
		GeneratedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestNewRedisSummaryCache_NilClient(t *testing.T) {
	_, err := summarycache.NewRedisSummaryCache(nil, time.Minute)
	require.Error(t, err)
}

func TestNewRedisSummaryCache_InvalidTTL(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	_, err := summarycache.NewRedisSummaryCache(client, 0)
	require.Error(t, err)
}

func TestRedisSummaryCache_GetMiss(t *testing.T) {
	cache, _ := setupCache(t)

	summary, err := cache.Get(context.Background(), kernel.NewUUID())
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestRedisSummaryCache_SetThenGet(t *testing.T) {
	cache, _ := setupCache(t)
	tenantID := kernel.NewUUID()
	stored := testSummary()

	require.NoError(t, cache.Set(context.Background(), tenantID, stored))

	cached, err := cache.Get(context.Background(), tenantID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, stored.RecentLoadCount, cached.RecentLoadCount)
	assert.Equal(t, stored.LoadsByStatus, cached.LoadsByStatus)
	assert.Equal(t, stored.ActiveDispatchCount, cached.ActiveDispatchCount)
	require.Len(t, cached.MonthlyRevenue, 1)
	assert.Equal(t, "2025-06", cached.MonthlyRevenue[0].Month)
	assert.True(t, stored.MonthlyRevenue[0].Revenue.Equal(cached.MonthlyRevenue[0].Revenue))
	assert.True(t, stored.GeneratedAt.Equal(cached.GeneratedAt))
}

func TestRedisSummaryCache_KeysAreScopedPerTenant(t *testing.T) {
	cache, _ := setupCache(t)
	firstTenant := kernel.NewUUID()
	otherTenant := kernel.NewUUID()

	require.NoError(t, cache.Set(context.Background(), firstTenant, testSummary()))

	cached, err := cache.Get(context.Background(), otherTenant)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisSummaryCache_EntryExpires(t *testing.T) {
	cache, server := setupCache(t)
	tenantID := kernel.NewUUID()

	require.NoError(t, cache.Set(context.Background(), tenantID, testSummary()))

	server.FastForward(6 * time.Minute)

	cached, err := cache.Get(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisSummaryCache_CorruptEntryIsAMiss(t *testing.T) {
	cache, server := setupCache(t)
	tenantID := kernel.NewUUID()

	require.NoError(t, server.Set("dashboard:summary:"+tenantID.String(), "{not json"))

	cached, err := cache.Get(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRedisSummaryCache_ZeroTenantID(t *testing.T) {
	cache, _ := setupCache(t)

	_, err := cache.Get(context.Background(), kernel.UUID{})
	require.Error(t, err)

	err = cache.Set(context.Background(), kernel.UUID{}, testSummary())
	require.Error(t, err)
}
