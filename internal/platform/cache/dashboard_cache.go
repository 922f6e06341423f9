package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// dashboardKey is the Redis key holding the rendered dashboard snapshot.
const dashboardKey = "dashboard:v1"

// DashboardCache stores the JSON-encoded dashboard payload in Redis so
// repeated loads skip the metrics recomputation. A nil Redis client turns
// every method into a no-op.
type DashboardCache struct {
	rdb *redis.Client
}

// NewDashboardCache creates a DashboardCache. rdb may be nil.
func NewDashboardCache(rdb *redis.Client) *DashboardCache {
	return &DashboardCache{rdb: rdb}
}

// Get returns the cached snapshot, or (nil, false) on miss or when Redis
// is unavailable.
func (d *DashboardCache) Get(ctx context.Context) ([]byte, bool) {
	if d.rdb == nil {
		return nil, false
	}
	b, err := d.rdb.Get(ctx, dashboardKey).Bytes()
	if err != nil || len(b) == 0 {
		return nil, false
	}
	return b, true
}

// Set stores the snapshot with the given TTL. Failures are ignored: the
// cache is an optimization, not a source of truth.
func (d *DashboardCache) Set(ctx context.Context, payload []byte, ttl time.Duration) {
	if d.rdb == nil || len(payload) == 0 {
		return
	}
	_ = d.rdb.Set(ctx, dashboardKey, payload, ttl).Err()
}

// Invalidate drops the cached snapshot, forcing the next load to recompute.
func (d *DashboardCache) Invalidate(ctx context.Context) {
	if d.rdb == nil {
		return
	}
	_ = d.rdb.Del(ctx, dashboardKey).Err()
}
