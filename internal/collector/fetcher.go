package collector

import (
	"time"

	"StockForecast/internal/model"
)

// Fetcher defines the interface for fetching historical daily price data.
type Fetcher interface {
	// FetchDaily returns ascending-date daily bars for symbol within
	// [start, end]. Gaps from non-trading days are left as-is.
	FetchDaily(symbol string, start, end time.Time) ([]model.PricePoint, error)
	Name() string
}
