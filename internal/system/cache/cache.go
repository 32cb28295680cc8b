/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides a generic in-memory cache with TTL based expiry.
package cache

import (
	"sync"
	"time"

	"github.com/onramp-io/onramp/internal/system/config"
	"github.com/onramp-io/onramp/internal/system/log"
)

const (
	defaultCacheSize = 1000
	defaultCacheTTL  = 900 // seconds
)

// cacheEntry represents a single cached value with its expiry time.
type cacheEntry[T any] struct {
	value      T
	expiryTime time.Time
}

// Cache is a generic in-memory cache with TTL based expiry and bounded size.
type Cache[T any] struct {
	name    string
	enabled bool
	size    int
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry[T]
}

// New creates a new cache instance configured from the runtime cache configuration.
func New[T any](name string) *Cache[T] {
	cacheConfig := config.GetOnrampRuntime().Config.Cache

	if cacheConfig.Disabled {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
			log.String("name", name)).Debug("Cache is disabled")
		return &Cache[T]{
			name:    name,
			enabled: false,
		}
	}

	size := cacheConfig.Size
	if size <= 0 {
		size = defaultCacheSize
	}

	ttl := time.Duration(cacheConfig.TTL) * time.Second
	if ttl <= 0 {
		ttl = defaultCacheTTL * time.Second
	}

	return &Cache[T]{
		name:    name,
		enabled: true,
		size:    size,
		ttl:     ttl,
		entries: make(map[string]cacheEntry[T]),
	}
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// Set adds or updates an entry in the cache.
func (c *Cache[T]) Set(key string, value T) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.size {
		c.evictLocked()
	}

	c.entries[key] = cacheEntry[T]{
		value:      value,
		expiryTime: time.Now().Add(c.ttl),
	}
}

// Get retrieves an entry from the cache. Expired entries are treated as misses and removed.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return zero, false
	}

	if time.Now().After(entry.expiryTime) {
		c.Delete(key)
		return zero, false
	}

	return entry.value, true
}

// Delete removes an entry from the cache.
func (c *Cache[T]) Delete(key string) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// evictLocked frees space by removing expired entries, falling back to the entry closest to expiry.
// Caller must hold the write lock.
func (c *Cache[T]) evictLocked() {
	now := time.Now()
	removed := false
	for key, entry := range c.entries {
		if now.After(entry.expiryTime) {
			delete(c.entries, key)
			removed = true
		}
	}
	if removed {
		return
	}

	var oldestKey string
	var oldestExpiry time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.expiryTime.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expiryTime
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
