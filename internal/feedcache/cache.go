// Package feedcache caches serialized feed pages in Redis. Entries carry a
// short TTL and are invalidated whenever a post is created or deleted, so
// anonymous feed traffic rarely hits PostgreSQL. A nil *Cache disables
// caching entirely, which keeps Redis optional.
package feedcache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "feed:"
	defaultTTL = 30 * time.Second
)

// Cache is a Redis-backed feed page cache
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a Cache over a Redis client. A nil client yields a nil Cache,
// and every method on a nil Cache is a no-op.
func New(rdb *redis.Client) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb, ttl: defaultTTL}
}

func pageKey(page, limit int) string {
	return fmt.Sprintf("%sp%d:l%d", keyPrefix, page, limit)
}

// Get returns the cached payload for a feed page, if present
func (c *Cache) Get(ctx context.Context, page, limit int) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, pageKey(page, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Feed cache get failed: %v", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a serialized feed page
func (c *Cache) Set(ctx context.Context, page, limit int, payload []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, pageKey(page, limit), payload, c.ttl).Err(); err != nil {
		log.Printf("Feed cache set failed: %v", err)
	}
}

// Invalidate drops every cached feed page
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Feed cache invalidate failed: %v", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("Feed cache scan failed: %v", err)
	}
}
