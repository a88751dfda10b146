package recorder

import "time"

// RunEvent holds the outcome of one forecast pipeline invocation.
type RunEvent struct {
	Symbol           string
	HorizonDays      int
	Observations     int
	LastObservedDate time.Time
	LastClose        float64
	FirstForecast    float64
	LastForecast     float64
	AIC              float64
	Duration         time.Duration
	Status           string // "OK" or "ERROR"
	ErrorMsg         string
}

// Recorder persists forecast run history for analysis.
type Recorder interface {
	RecordRun(evt *RunEvent) error
	Close() error
}
