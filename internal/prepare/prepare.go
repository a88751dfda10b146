// Package prepare converts raw OHLC price rows into a model-ready
// univariate time series.
package prepare

import (
	"errors"
	"fmt"
	"time"

	"StockForecast/internal/model"
)

// ErrInvalidInput indicates an empty or malformed input series.
var ErrInvalidInput = errors.New("invalid input series")

// Preparer extracts the closing-price series from raw price rows.
// When Difference is set, a first-order difference is applied to
// stationarize the series before modeling. It is off by default because the
// model's own differencing order already accounts for trend; enabling both
// changes the effective order.
type Preparer struct {
	Difference bool
}

// New creates a Preparer with the default pass-through behavior.
func New() *Preparer { return &Preparer{} }

// Prepare extracts the closing price from each row, preserving date
// alignment. Input must be non-empty with strictly ascending dates.
func (p *Preparer) Prepare(rows []model.PricePoint) (model.TimeSeries, error) {
	if len(rows) == 0 {
		return model.TimeSeries{}, fmt.Errorf("%w: no rows", ErrInvalidInput)
	}

	dates := make([]time.Time, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		if i > 0 && !r.Date.After(rows[i-1].Date) {
			return model.TimeSeries{}, fmt.Errorf("%w: dates not ascending at index %d", ErrInvalidInput, i)
		}
		dates[i] = r.Date
		values[i] = r.Close
	}

	series := model.NewTimeSeries(dates, values)
	if p.Difference {
		series = diff(series)
	}
	return series, nil
}

// diff returns the first difference of the series. The first point is
// dropped; remaining points keep their original dates.
func diff(s model.TimeSeries) model.TimeSeries {
	if s.Len() < 2 {
		return model.TimeSeries{}
	}
	dates := make([]time.Time, s.Len()-1)
	values := make([]float64, s.Len()-1)
	for i := 1; i < s.Len(); i++ {
		dates[i-1] = s.Dates[i]
		values[i-1] = s.Values[i] - s.Values[i-1]
	}
	return model.NewTimeSeries(dates, values)
}
