package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-manager/internal/logger"
)

const (
	keyPrefix     = "reports:"
	generationKey = keyPrefix + "generation"

	defaultTTL = 5 * time.Minute
)

// store is the subset of *redis.Client the cache uses.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// ReportCache memoizes report payloads in redis. A nil *ReportCache or one
// built without a client is a no-op, and redis failures degrade to misses.
//
// Entries live under a generation number. InvalidateAll bumps it, so a
// value computed before an invalidation is written under a key nobody
// reads anymore and expires with its TTL.
type ReportCache struct {
	client store
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if client == nil {
		return &ReportCache{ttl: ttl}
	}
	return newReportCache(client, ttl)
}

func newReportCache(client store, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *ReportCache) enabled() bool {
	return c != nil && c.client != nil
}

// Key scopes name to the current generation. Callers take it once, before
// reading the source data, and use it for both Get and Set.
func (c *ReportCache) Key(ctx context.Context, name string) string {
	if !c.enabled() {
		return name
	}

	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Log.Warn("report cache generation read failed", zap.Error(err))
	}
	return fmt.Sprintf("%s%d:%s", keyPrefix, gen, name)
}

// Get decodes the cached value into dst and reports whether it was found.
func (c *ReportCache) Get(ctx context.Context, key string, dst any) bool {
	if !c.enabled() {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("report cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Log.Warn("report cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *ReportCache) Set(ctx context.Context, key string, value any) {
	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Log.Warn("report cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateAll retires every cached report. Called after appointment writes.
func (c *ReportCache) InvalidateAll(ctx context.Context) {
	if !c.enabled() {
		return
	}

	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		logger.Log.Warn("report cache invalidate failed", zap.Error(err))
	}
}
