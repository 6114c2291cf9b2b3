package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "notes_cache_"

// Note cache keys. Mutations invalidate all of them; the lists overlap.
const (
	KeyNotes     = "notes"
	KeyFavorites = "favorites"
	KeyTrashed   = "trashed"
)

// NoteCache is an optional Redis-backed TTL cache for note list reads. A nil
// receiver or missing client degrades every call to a no-op, so callers never
// branch on availability.
type NoteCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewNoteCache constructs the cache. Pass a nil client to disable caching.
func NewNoteCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *NoteCache {
	return &NoteCache{client: client, ttl: ttl, logger: logger}
}

// Get loads a cached value into dest, reporting whether it was present.
func (c *NoteCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores a value under key for the configured TTL, best effort.
func (c *NoteCache) Set(ctx context.Context, key string, val any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the given keys, best effort.
func (c *NoteCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
