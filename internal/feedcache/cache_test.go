package feedcache

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	payload := []byte(`{"posts":[]}`)
	cache.Set(ctx, 1, 10, payload)

	got, ok := cache.Get(ctx, 1, 10)
	if !ok || !bytes.Equal(got, payload) {
		t.Fatalf("expected cached payload back, got %q (hit=%v)", got, ok)
	}

	// A different page/limit pair is a distinct key.
	if _, ok := cache.Get(ctx, 2, 10); ok {
		t.Error("unexpected hit for an uncached page")
	}
	if _, ok := cache.Get(ctx, 1, 50); ok {
		t.Error("unexpected hit for an uncached limit")
	}
}

func TestCacheEntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 1, 10, []byte("x"))
	mr.FastForward(defaultTTL + time.Second)

	if _, ok := cache.Get(ctx, 1, 10); ok {
		t.Error("entry should expire after the TTL")
	}
}

func TestInvalidateDropsOnlyFeedKeys(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 1, 10, []byte("a"))
	cache.Set(ctx, 2, 10, []byte("b"))
	if err := mr.Set("session:1", "keep"); err != nil {
		t.Fatalf("seed unrelated key: %v", err)
	}

	cache.Invalidate(ctx)

	if _, ok := cache.Get(ctx, 1, 10); ok {
		t.Error("page 1 survived invalidation")
	}
	if _, ok := cache.Get(ctx, 2, 10); ok {
		t.Error("page 2 survived invalidation")
	}
	if got, err := mr.Get("session:1"); err != nil || got != "keep" {
		t.Errorf("unrelated key touched: %q, %v", got, err)
	}
}

func TestNilCacheIsNoOp(t *testing.T) {
	cache := New(nil)
	if cache != nil {
		t.Fatal("nil client should yield a nil cache")
	}

	ctx := context.Background()
	cache.Set(ctx, 1, 10, []byte("x"))
	cache.Invalidate(ctx)
	if _, ok := cache.Get(ctx, 1, 10); ok {
		t.Error("nil cache should never hit")
	}
}
