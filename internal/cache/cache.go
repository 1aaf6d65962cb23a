package cache

import "log/slog"

type CacheI[K comparable, V any] interface {
	Get(key K) (value V, ok bool)
	Add(key K, value V) (evicted bool)
}

// Cache wraps an LRU so evictions get logged.
type Cache[K comparable, V any] struct {
	cache CacheI[K, V]
	log   *slog.Logger
}

func NewCache[K comparable, V any](cache CacheI[K, V], log *slog.Logger) *Cache[K, V] {
	return &Cache[K, V]{
		cache: cache,
		log:   log,
	}
}

func (c *Cache[K, V]) Add(key K, value V) (evicted bool) {
	evicted = c.cache.Add(key, value)
	if evicted {
		c.log.Debug("cache eviction", slog.Any("added_key", key))
	}
	return evicted
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.cache.Get(key)
}
