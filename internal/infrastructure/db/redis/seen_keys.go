package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const seenKeyTTL = 24 * time.Hour

// SeenKeyCache fronts the durable idempotency ledger with a Redis existence
// check. Entries expire after seenKeyTTL; an expired or missing entry simply
// falls through to the store, so the cache never has to be complete or even
// reachable. Key format: idem:<owner>:<key>
type SeenKeyCache struct {
	client *redis.Client
}

// NewSeenKeyCache creates a SeenKeyCache wrapping the given Redis client.
func NewSeenKeyCache(client *redis.Client) *SeenKeyCache {
	return &SeenKeyCache{client: client}
}

// Seen reports whether this (key, owner) pair is known to have been admitted.
func (c *SeenKeyCache) Seen(ctx context.Context, key, owner string) (bool, error) {
	n, err := c.client.Exists(ctx, c.cacheKey(key, owner)).Result()
	if err != nil {
		return false, fmt.Errorf("seen-key check: %w", err)
	}
	return n > 0, nil
}

// Mark records the admitted pair (expires after seenKeyTTL).
func (c *SeenKeyCache) Mark(ctx context.Context, key, owner string) error {
	return c.client.Set(ctx, c.cacheKey(key, owner), "1", seenKeyTTL).Err()
}

func (c *SeenKeyCache) cacheKey(key, owner string) string {
	return fmt.Sprintf("idem:%s:%s", owner, key)
}
