package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *redisStatsCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	return server, &redisStatsCache{client: client, ttl: ttl}
}

func TestRedisStatsCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on an empty cache", func(t *testing.T) {
		_, cache := newTestCache(t, time.Minute)

		total, ok, err := cache.GetCompletedTotal(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || total != 0 {
			t.Errorf("expected a miss, got total=%d ok=%v", total, ok)
		}
	})

	t.Run("set then get round trip", func(t *testing.T) {
		_, cache := newTestCache(t, time.Minute)

		if err := cache.SetCompletedTotal(ctx, 42); err != nil {
			t.Fatalf("set: %v", err)
		}

		total, ok, err := cache.GetCompletedTotal(ctx)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !ok || total != 42 {
			t.Errorf("expected cached 42, got total=%d ok=%v", total, ok)
		}
	})

	t.Run("invalidate drops the value", func(t *testing.T) {
		_, cache := newTestCache(t, time.Minute)

		if err := cache.SetCompletedTotal(ctx, 7); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("invalidate: %v", err)
		}

		_, ok, err := cache.GetCompletedTotal(ctx)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if ok {
			t.Error("expected a miss after invalidation")
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		server, cache := newTestCache(t, time.Minute)

		if err := cache.SetCompletedTotal(ctx, 7); err != nil {
			t.Fatalf("set: %v", err)
		}
		server.FastForward(2 * time.Minute)

		_, ok, err := cache.GetCompletedTotal(ctx)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if ok {
			t.Error("expected the entry to have expired")
		}
	})
}
