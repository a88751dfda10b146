package collector

import (
	"errors"
	"testing"
	"time"

	"StockForecast/internal/cache"
	"StockForecast/internal/model"
)

// countingFetcher records how many times the inner fetch runs.
type countingFetcher struct {
	calls int
	rows  []model.PricePoint
	err   error
}

func (c *countingFetcher) Name() string { return "counting" }

func (c *countingFetcher) FetchDaily(_ string, _, _ time.Time) ([]model.PricePoint, error) {
	c.calls++
	return c.rows, c.err
}

func TestCachedFetcher_SecondFetchHitsCache(t *testing.T) {
	inner := &countingFetcher{rows: GenerateBars(100, day(2020, 1, 1), day(2020, 1, 10))}
	f := NewCachedFetcher(inner, cache.NewMemoryCache(time.Hour))

	start, end := day(2020, 1, 1), day(2020, 1, 10)
	first, err := f.FetchDaily("AAPL", start, end)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := f.FetchDaily("AAPL", start, end)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
	if len(first) != len(second) {
		t.Errorf("cached rows differ: %d vs %d", len(first), len(second))
	}
}

func TestCachedFetcher_DistinctRangesMiss(t *testing.T) {
	inner := &countingFetcher{rows: GenerateBars(100, day(2020, 1, 1), day(2020, 1, 10))}
	f := NewCachedFetcher(inner, cache.NewMemoryCache(time.Hour))

	if _, err := f.FetchDaily("AAPL", day(2020, 1, 1), day(2020, 1, 10)); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if _, err := f.FetchDaily("AAPL", day(2020, 1, 1), day(2020, 1, 11)); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("different ranges must not share cache entries, got %d calls", inner.calls)
	}
}

func TestCachedFetcher_ErrorNotCached(t *testing.T) {
	inner := &countingFetcher{err: errors.New("provider down")}
	f := NewCachedFetcher(inner, cache.NewMemoryCache(time.Hour))

	if _, err := f.FetchDaily("AAPL", day(2020, 1, 1), day(2020, 1, 10)); err == nil {
		t.Fatal("expected error from inner fetcher")
	}
	inner.err = nil
	inner.rows = GenerateBars(100, day(2020, 1, 1), day(2020, 1, 10))
	if _, err := f.FetchDaily("AAPL", day(2020, 1, 1), day(2020, 1, 10)); err != nil {
		t.Fatalf("fetch after recovery: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("failed fetch must not populate the cache, got %d calls", inner.calls)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
