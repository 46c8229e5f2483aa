// Package cache wraps an LRU with per-entry TTL for computed dashboard
// snapshots. Entries are pure functions of the immutable dataset and the
// filter selection, so expiry only bounds memory, never correctness.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

type entry struct {
	data      any
	expiresAt time.Time
}

type TTLCache struct {
	lru *lru.Cache
	ttl time.Duration
}

func New(size int, ttl time.Duration) (*TTLCache, error) {
	inner, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &TTLCache{lru: inner, ttl: ttl}, nil
}

// Get returns the cached value for key, dropping it if expired.
func (c *TTLCache) Get(key string) (any, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	e := v.(entry)
	if time.Now().After(e.expiresAt) {
		c.lru.Remove(key)
		return nil, false
	}
	return e.data, true
}

// Set stores a value under key with the cache's TTL.
func (c *TTLCache) Set(key string, data any) {
	c.lru.Add(key, entry{data: data, expiresAt: time.Now().Add(c.ttl)})
}

// Len returns the number of live plus expired entries currently held.
func (c *TTLCache) Len() int {
	return c.lru.Len()
}

// Purge drops every entry.
func (c *TTLCache) Purge() {
	c.lru.Purge()
}
