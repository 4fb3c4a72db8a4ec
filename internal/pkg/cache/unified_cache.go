package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// UnifiedCache is a typed TTL cache backed by go-cache.
type UnifiedCache[T any] struct {
	store  *gocache.Cache
	ttl    time.Duration
	name   string
	logger *zap.Logger

	hits, misses, sets atomic.Int64
}

// NewUnifiedCache creates a new generic cache with specified TTL and name
func NewUnifiedCache[T any](ttl time.Duration, name string, logger *zap.Logger) *UnifiedCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnifiedCache[T]{
		store:  gocache.New(ttl, 2*ttl),
		ttl:    ttl,
		name:   name,
		logger: logger,
	}
}

// Set stores an item in the cache with the given key
func (c *UnifiedCache[T]) Set(key string, value T) {
	c.store.SetDefault(key, value)
	c.sets.Add(1)

	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.String("key", key),
		zap.Duration("ttl", c.ttl),
	)
}

// Get retrieves an item from the cache
func (c *UnifiedCache[T]) Get(key string) (T, bool) {
	var zero T
	raw, found := c.store.Get(key)
	if !found {
		c.misses.Add(1)
		c.logger.Debug("Cache miss", zap.String("cache", c.name), zap.String("key", key))
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		c.misses.Add(1)
		return zero, false
	}

	c.hits.Add(1)
	c.logger.Debug("Cache hit", zap.String("cache", c.name), zap.String("key", key))
	return value, true
}

func (c *UnifiedCache[T]) Delete(key string) {
	c.store.Delete(key)
}

func (c *UnifiedCache[T]) Clear() {
	c.store.Flush()
	c.logger.Info("Cache cleared", zap.String("cache", c.name))
}

// GetMetrics returns current cache metrics
func (c *UnifiedCache[T]) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
	}
}

// Size returns the number of items in the cache, including expired items
// not yet evicted.
func (c *UnifiedCache[T]) Size() int {
	return c.store.ItemCount()
}
