package sarima

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"StockForecast/internal/model"
)

// syntheticValue is a linear trend plus a 12-period seasonal component with
// small deterministic noise, matching the default order's assumptions.
func syntheticValue(i int) float64 {
	trend := 0.5 * float64(i)
	seasonal := 10 * math.Sin(2*math.Pi*float64(i)/12)
	noise := float64(i%5-2) / 10
	return 100 + trend + seasonal + noise
}

func syntheticSeries(n int) model.TimeSeries {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		dates[i] = start.AddDate(0, 0, i)
		values[i] = syntheticValue(i)
	}
	return model.NewTimeSeries(dates, values)
}

func TestFit_InsufficientObservations(t *testing.T) {
	m := New(DefaultOrder())
	err := m.Fit(context.Background(), syntheticSeries(23))
	if !errors.Is(err, ErrModelFit) {
		t.Fatalf("expected ErrModelFit for 23 points, got %v", err)
	}
}

func TestFit_MinimumObservations(t *testing.T) {
	m := New(DefaultOrder())
	if err := m.Fit(context.Background(), syntheticSeries(24)); err != nil {
		t.Fatalf("expected fit to succeed with 24 points, got %v", err)
	}
}

func TestForecast_Length(t *testing.T) {
	m := New(DefaultOrder())
	if err := m.Fit(context.Background(), syntheticSeries(48)); err != nil {
		t.Fatalf("fit: %v", err)
	}

	for _, horizon := range []int{1, 5, 30, 365} {
		values, err := m.Forecast(horizon)
		if err != nil {
			t.Fatalf("forecast horizon %d: %v", horizon, err)
		}
		if len(values) != horizon {
			t.Errorf("horizon %d: expected %d values, got %d", horizon, horizon, len(values))
		}
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("horizon %d: value %d is not finite: %f", horizon, i, v)
			}
		}
	}
}

func TestForecast_TracksTrendAndSeason(t *testing.T) {
	m := New(DefaultOrder())
	if err := m.Fit(context.Background(), syntheticSeries(36)); err != nil {
		t.Fatalf("fit: %v", err)
	}

	values, err := m.Forecast(12)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}

	mae := 0.0
	for h, v := range values {
		mae += math.Abs(v - syntheticValue(36+h))
	}
	mae /= float64(len(values))
	t.Logf("MAE against synthetic ground truth: %f", mae)
	if mae > 5.0 {
		t.Errorf("forecast drifted from synthetic trend+season: MAE %.3f > 5.0", mae)
	}
}

func TestForecast_Deterministic(t *testing.T) {
	series := syntheticSeries(60)

	run := func() []float64 {
		m := New(DefaultOrder())
		if err := m.Fit(context.Background(), series); err != nil {
			t.Fatalf("fit: %v", err)
		}
		values, err := m.Forecast(30)
		if err != nil {
			t.Fatalf("forecast: %v", err)
		}
		return values
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("forecasts differ at %d: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestForecast_RequiresFit(t *testing.T) {
	m := New(DefaultOrder())
	if _, err := m.Forecast(5); err == nil {
		t.Fatal("expected error forecasting an unfitted model")
	}
}

func TestForecast_InvalidHorizon(t *testing.T) {
	m := New(DefaultOrder())
	if err := m.Fit(context.Background(), syntheticSeries(48)); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if _, err := m.Forecast(0); err == nil {
		t.Fatal("expected error for horizon 0")
	}
}

func TestFit_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(DefaultOrder())
	err := m.Fit(ctx, syntheticSeries(48))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFit_Stats(t *testing.T) {
	m := New(DefaultOrder())
	if err := m.Fit(context.Background(), syntheticSeries(60)); err != nil {
		t.Fatalf("fit: %v", err)
	}

	stats := m.Stats()
	if stats.NObs != 60 {
		t.Errorf("expected NObs=60, got %d", stats.NObs)
	}
	if math.IsNaN(stats.AIC) || math.IsNaN(stats.BIC) {
		t.Errorf("information criteria should be finite, got AIC=%f BIC=%f", stats.AIC, stats.BIC)
	}
	if stats.BIC < stats.AIC {
		// BIC penalizes harder than AIC for n >= 8
		t.Errorf("expected BIC >= AIC, got AIC=%f BIC=%f", stats.AIC, stats.BIC)
	}
}

func TestOrder_MinObservations(t *testing.T) {
	tests := []struct {
		order Order
		want  int
	}{
		{DefaultOrder(), 24},
		{Order{P: 1, D: 1, Q: 1}, 13},
		{Order{P: 1, D: 0, Q: 0, SP: 1, SD: 0, SQ: 0, M: 7}, 14},
	}
	for _, tt := range tests {
		if got := tt.order.MinObservations(); got != tt.want {
			t.Errorf("%s: expected min %d, got %d", tt.order, tt.want, got)
		}
	}
}

func TestOrder_String(t *testing.T) {
	if s := DefaultOrder().String(); s != "(1,1,1)(1,1,1)[12]" {
		t.Errorf("unexpected order string: %s", s)
	}
}

func TestOrder_Validate(t *testing.T) {
	bad := Order{P: 1, SP: 1, M: 1}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for seasonal terms with m=1")
	}
	if err := (Order{P: -1}).Validate(); err == nil {
		t.Error("expected error for negative order")
	}
	if err := DefaultOrder().Validate(); err != nil {
		t.Errorf("default order should validate: %v", err)
	}
}
