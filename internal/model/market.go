package model

import "time"

// PricePoint represents a single daily OHLCV bar.
type PricePoint struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// TimeSeries is an ordered sequence of (date, value) pairs with strictly
// ascending dates. It is used both for observed closing prices and for
// forecast output.
type TimeSeries struct {
	Dates  []time.Time
	Values []float64
}

// NewTimeSeries builds a TimeSeries from aligned dates and values.
func NewTimeSeries(dates []time.Time, values []float64) TimeSeries {
	return TimeSeries{Dates: dates, Values: values}
}

// Len returns the number of points in the series.
func (s TimeSeries) Len() int { return len(s.Values) }

// IsEmpty reports whether the series has no points.
func (s TimeSeries) IsEmpty() bool { return len(s.Values) == 0 }

// LastDate returns the date of the final point. Zero time if empty.
func (s TimeSeries) LastDate() time.Time {
	if len(s.Dates) == 0 {
		return time.Time{}
	}
	return s.Dates[len(s.Dates)-1]
}

// LastValue returns the value of the final point. Zero if empty.
func (s TimeSeries) LastValue() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.Values[len(s.Values)-1]
}

// Head returns the first n points (fewer if the series is shorter).
func (s TimeSeries) Head(n int) TimeSeries {
	if n > s.Len() {
		n = s.Len()
	}
	return TimeSeries{Dates: s.Dates[:n], Values: s.Values[:n]}
}

// Tail returns the last n points (fewer if the series is shorter).
func (s TimeSeries) Tail(n int) TimeSeries {
	if n > s.Len() {
		n = s.Len()
	}
	return TimeSeries{Dates: s.Dates[s.Len()-n:], Values: s.Values[s.Len()-n:]}
}

// Ascending reports whether dates are strictly increasing.
func (s TimeSeries) Ascending() bool {
	for i := 1; i < len(s.Dates); i++ {
		if !s.Dates[i].After(s.Dates[i-1]) {
			return false
		}
	}
	return true
}
