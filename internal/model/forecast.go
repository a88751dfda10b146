package model

import "time"

// FitStats summarizes the estimation of a fitted model.
type FitStats struct {
	AIC      float64
	BIC      float64
	LogLik   float64
	Variance float64
	NObs     int
}

// ForecastResult is the output of one pipeline invocation.
// Forecast dates begin the calendar day after Observed's last date and run
// for exactly the requested horizon, one entry per calendar day. Weekends and
// market holidays are included: the forecast index is a plain daily range with
// no trading-calendar awareness.
type ForecastResult struct {
	Symbol      string
	Observed    TimeSeries
	Forecast    TimeSeries
	HorizonDays int
	Stats       FitStats
	GeneratedAt time.Time
}
