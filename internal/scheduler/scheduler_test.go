package scheduler

import (
	"bytes"
	"context"
	"testing"
	"time"

	"StockForecast/internal/catalog"
	"StockForecast/internal/collector"
	"StockForecast/internal/forecast"
	"StockForecast/internal/prepare"
	"StockForecast/internal/recorder"
	"StockForecast/internal/sarima"
)

// captureRecorder keeps recorded events in memory for assertions.
type captureRecorder struct {
	events []recorder.RunEvent
}

func (c *captureRecorder) RecordRun(evt *recorder.RunEvent) error {
	c.events = append(c.events, *evt)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func newTestScheduler(f collector.Fetcher, rec recorder.Recorder) (*Scheduler, *bytes.Buffer) {
	var out bytes.Buffer
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	pipe := forecast.NewPipeline(prepare.New(), sarima.DefaultOrder())
	s := NewScheduler(context.Background(), f, catalog.New(nil), pipe, rec, &out, start, 30)
	return s, &out
}

func TestRunSymbol_RecordsSuccess(t *testing.T) {
	rec := &captureRecorder{}
	s, _ := newTestScheduler(&collector.MockFetcher{BasePrice: 100}, rec)

	res, err := s.RunSymbol("Apple Inc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Symbol != "AAPL" {
		t.Errorf("display name should resolve to AAPL, got %s", res.Symbol)
	}
	if res.Forecast.Len() != 30 {
		t.Errorf("expected 30 forecast points, got %d", res.Forecast.Len())
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(rec.events))
	}
	evt := rec.events[0]
	if evt.Status != "OK" {
		t.Errorf("expected OK status, got %s (%s)", evt.Status, evt.ErrorMsg)
	}
	if evt.Symbol != "AAPL" || evt.HorizonDays != 30 {
		t.Errorf("unexpected event fields: %+v", evt)
	}
	if evt.Observations == 0 || evt.LastForecast == 0 {
		t.Errorf("event should carry run details: %+v", evt)
	}
}

func TestRunSymbol_UnknownStock(t *testing.T) {
	rec := &captureRecorder{}
	s, _ := newTestScheduler(&collector.MockFetcher{BasePrice: 100}, rec)

	if _, err := s.RunSymbol("Enron Corp"); err == nil {
		t.Fatal("expected error for unknown stock")
	}
	if len(rec.events) != 0 {
		t.Errorf("unresolved symbols must not be recorded, got %d events", len(rec.events))
	}
}

func TestRunSymbol_RecordsFitFailure(t *testing.T) {
	// 10 rows is below the seasonal minimum, so the fit must fail.
	rows := collector.GenerateBars(100,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	rec := &captureRecorder{}
	s, _ := newTestScheduler(&collector.MockFetcher{Rows: rows}, rec)

	if _, err := s.RunSymbol("AAPL"); err == nil {
		t.Fatal("expected fit failure")
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected failure to be recorded, got %d events", len(rec.events))
	}
	evt := rec.events[0]
	if evt.Status != "ERROR" || evt.ErrorMsg == "" {
		t.Errorf("expected ERROR event with message, got %+v", evt)
	}
	if evt.Observations != 10 {
		t.Errorf("partial observed series should be recorded, got %d", evt.Observations)
	}
}

func TestRunAllNow_WritesReports(t *testing.T) {
	rec := &captureRecorder{}
	s, out := newTestScheduler(&collector.MockFetcher{BasePrice: 100}, rec)

	s.RunAllNow()

	if len(rec.events) != 13 {
		t.Errorf("expected one event per catalog symbol, got %d", len(rec.events))
	}
	if !bytes.Contains(out.Bytes(), []byte("AAPL")) {
		t.Error("expected reports written to output")
	}
}
