package collector

import (
	"fmt"
	"log"
	"time"

	"StockForecast/internal/cache"
	"StockForecast/internal/model"
)

// CachedFetcher wraps another Fetcher with an explicit, injected cache keyed
// by symbol and date range. The cache decides expiry; this decorator never
// mutates cached entries.
type CachedFetcher struct {
	Inner Fetcher
	Cache cache.Cache
}

// NewCachedFetcher creates a caching decorator around inner.
func NewCachedFetcher(inner Fetcher, c cache.Cache) *CachedFetcher {
	return &CachedFetcher{Inner: inner, Cache: c}
}

func (f *CachedFetcher) Name() string { return f.Inner.Name() + "+cache" }

func (f *CachedFetcher) FetchDaily(symbol string, start, end time.Time) ([]model.PricePoint, error) {
	key := cache.Key(symbol, start, end)
	if rows, ok := f.Cache.Get(key); ok {
		log.Printf("[INFO] cache hit for %s", key)
		return rows, nil
	}

	rows, err := f.Inner.FetchDaily(symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	f.Cache.Put(key, rows)
	return rows, nil
}
