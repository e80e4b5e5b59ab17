// Package summarycache caches dashboard summaries in Redis. Summaries are
// cheap to serve but expensive to compute, so each tenant's summary is kept
// under its own key with a short TTL.
package summarycache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

const keyPrefix = "dashboard:summary:"

// RedisSummaryCache implements queries.SummaryCache on top of go-redis.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache creates a cache with the given time-to-live.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) (*RedisSummaryCache, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &RedisSummaryCache{client: client, ttl: ttl}, nil
}

// Get returns the cached summary for a tenant, or nil on a miss.
func (c *RedisSummaryCache) Get(ctx context.Context, tenantID kernel.UUID) (*queries.DashboardSummaryResponse, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, key(tenantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary queries.DashboardSummaryResponse
	if err = json.Unmarshal(payload, &summary); err != nil {
		// A corrupt entry is treated as a miss so the caller recomputes.
		return nil, nil
	}

	return &summary, nil
}

// Set stores the summary for a tenant with the configured TTL.
func (c *RedisSummaryCache) Set(ctx context.Context, tenantID kernel.UUID, summary queries.DashboardSummaryResponse) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key(tenantID), payload, c.ttl).Err()
}

func key(tenantID kernel.UUID) string {
	return fmt.Sprintf("%s%s", keyPrefix, tenantID.String())
}
