package calculator

import (
	"errors"
	"math"

	"StockForecast/internal/model"
)

// CalculateSMA computes the simple moving average of the last period values
// of the series.
func CalculateSMA(series model.TimeSeries, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if series.Len() < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := series.Len() - period; i < series.Len(); i++ {
		sum += series.Values[i]
	}
	return sum / float64(period), nil
}

// Calculate52WeekRange scans the most recent 252 trading days and returns
// the high and low of the series.
func Calculate52WeekRange(series model.TimeSeries) (high, low float64, err error) {
	if series.Len() == 0 {
		return 0, 0, errors.New("no data provided")
	}
	n := series.Len()
	start := n - 252
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		if series.Values[i] > high {
			high = series.Values[i]
		}
		if series.Values[i] < low {
			low = series.Values[i]
		}
	}
	return high, low, nil
}
