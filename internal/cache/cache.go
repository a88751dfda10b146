// Package cache provides an injectable fetch-result cache keyed by symbol
// and date range.
package cache

import (
	"fmt"
	"sync"
	"time"

	"StockForecast/internal/model"
)

// Cache stores fetched price series. Implementations must be safe for
// concurrent use; the forecast pipeline only ever reads through it.
type Cache interface {
	Get(key string) ([]model.PricePoint, bool)
	Put(key string, rows []model.PricePoint)
	Invalidate(key string)
	Purge()
}

// Key builds the canonical cache key for a symbol and date range.
func Key(symbol string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", symbol, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

type entry struct {
	rows     []model.PricePoint
	storedAt time.Time
}

// MemoryCache is an in-process Cache with per-entry TTL expiry.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates a MemoryCache. A non-positive ttl means entries
// never expire and must be removed with Invalidate or Purge.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached rows for key, expiring stale entries on access.
func (c *MemoryCache) Get(key string) ([]model.PricePoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.rows, true
}

// Put stores rows under key, replacing any previous entry.
func (c *MemoryCache) Put(key string, rows []model.PricePoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{rows: rows, storedAt: c.now()}
}

// Invalidate removes a single entry.
func (c *MemoryCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Purge removes all entries.
func (c *MemoryCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
