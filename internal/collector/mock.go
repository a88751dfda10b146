package collector

import (
	"math"
	"time"

	"StockForecast/internal/model"
)

// MockFetcher returns controllable synthetic data for development and
// testing.
type MockFetcher struct {
	BasePrice float64
	Rows      []model.PricePoint // returned verbatim when set
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDaily(_ string, start, end time.Time) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Rows != nil {
		return m.Rows, nil
	}
	return GenerateBars(m.BasePrice, start, end), nil
}

// GenerateBars produces one bar per calendar day in [start, end] with a
// mild trend and a 12-day cycle around basePrice.
func GenerateBars(basePrice float64, start, end time.Time) []model.PricePoint {
	var rows []model.PricePoint
	for i, d := 0, start; !d.After(end); i, d = i+1, d.AddDate(0, 0, 1) {
		p := basePrice + 0.05*float64(i) + 2*math.Sin(2*math.Pi*float64(i)/12)
		rows = append(rows, model.PricePoint{
			Date:   d,
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		})
	}
	return rows
}
