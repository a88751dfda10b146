// Package forecast assembles model predictions into dated series and
// orchestrates the prepare/fit/forecast pipeline.
package forecast

import (
	"errors"
	"fmt"
	"time"

	"StockForecast/internal/model"
)

// ErrLengthMismatch indicates the predicted-value count does not equal the
// requested horizon. It is an internal invariant violation, not an input
// condition.
var ErrLengthMismatch = errors.New("forecast length mismatch")

// Assemble pairs predicted values with a generated future date index. Dates
// start the calendar day after lastObserved and advance one day at a time
// for exactly horizon days. Weekends and market holidays are included; the
// forecast index is a plain daily range.
func Assemble(lastObserved time.Time, horizon int, predicted []float64) (model.TimeSeries, error) {
	if len(predicted) != horizon {
		return model.TimeSeries{}, fmt.Errorf("%w: got %d values for horizon %d",
			ErrLengthMismatch, len(predicted), horizon)
	}

	dates := make([]time.Time, horizon)
	for i := 0; i < horizon; i++ {
		dates[i] = lastObserved.AddDate(0, 0, i+1)
	}
	values := append([]float64(nil), predicted...)
	return model.NewTimeSeries(dates, values), nil
}
