package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// UsageCache keeps daily per-platform usage counters in Redis
type UsageCache interface {
	Increment(ctx context.Context, platform, action string) error
	Count(ctx context.Context, platform, action string, day time.Time) (int64, error)
}

type usageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUsageCache creates a new usage cache
func NewUsageCache(client *redis.Client) UsageCache {
	return &usageCache{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

func (c *usageCache) key(platform, action string, day time.Time) string {
	return fmt.Sprintf("usage:%s:%s:%s", platform, action, day.Format("2006-01-02"))
}

func (c *usageCache) Increment(ctx context.Context, platform, action string) error {
	key := c.key(platform, action, time.Now())
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *usageCache) Count(ctx context.Context, platform, action string, day time.Time) (int64, error) {
	val, err := c.client.Get(ctx, c.key(platform, action, day)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}
