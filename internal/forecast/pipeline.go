package forecast

import (
	"context"
	"fmt"
	"log"
	"time"

	"StockForecast/internal/model"
	"StockForecast/internal/prepare"
	"StockForecast/internal/sarima"
)

// Pipeline runs prepare, fit, forecast, and assemble in strict sequence for
// one symbol. Every invocation owns its own series and fitted model; nothing
// is shared or retried across runs.
type Pipeline struct {
	Preparer *prepare.Preparer
	Order    sarima.Order
}

// NewPipeline creates a Pipeline with the given preparer and model order.
func NewPipeline(p *prepare.Preparer, order sarima.Order) *Pipeline {
	return &Pipeline{Preparer: p, Order: order}
}

// Run produces a ForecastResult from raw price rows and a horizon in days.
//
// Failure policy: errors from any stage are returned unchanged (wrapped only
// for context) with no retries and no fallback forecast. When the observed
// series was already prepared before the failure, the returned result holds
// that series with a nil forecast so callers may still display history; the
// error is authoritative either way.
func (p *Pipeline) Run(ctx context.Context, symbol string, rows []model.PricePoint, horizonDays int) (*model.ForecastResult, error) {
	if horizonDays < 1 {
		return nil, fmt.Errorf("horizon must be positive, got %d", horizonDays)
	}
	started := time.Now()

	observed, err := p.Preparer.Prepare(rows)
	if err != nil {
		return nil, fmt.Errorf("prepare %s: %w", symbol, err)
	}

	result := &model.ForecastResult{
		Symbol:      symbol,
		Observed:    observed,
		HorizonDays: horizonDays,
		GeneratedAt: started,
	}

	mdl := sarima.New(p.Order)
	if err := mdl.Fit(ctx, observed); err != nil {
		return result, fmt.Errorf("fit %s: %w", symbol, err)
	}

	predicted, err := mdl.Forecast(horizonDays)
	if err != nil {
		return result, fmt.Errorf("forecast %s: %w", symbol, err)
	}

	forecasted, err := Assemble(observed.LastDate(), horizonDays, predicted)
	if err != nil {
		return result, fmt.Errorf("assemble %s: %w", symbol, err)
	}

	result.Forecast = forecasted
	result.Stats = mdl.Stats()

	log.Printf("[INFO] forecast %s: %d observations, horizon %d days, fit %s in %s",
		symbol, observed.Len(), horizonDays, p.Order, time.Since(started).Round(time.Millisecond))
	return result, nil
}
