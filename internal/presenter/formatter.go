// Package presenter renders forecast results as plain-text reports.
package presenter

import (
	"fmt"
	"strings"

	"StockForecast/internal/calculator"
	"StockForecast/internal/model"
)

const previewRows = 5

// FormatReport formats a full forecast report: observed-series previews,
// forecast tail, and a fit summary.
func FormatReport(res *model.ForecastResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== Stock Forecast | %s | %s ===\n\n",
		res.Symbol, res.GeneratedAt.Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("First %d rows of observed data:\n", previewRows))
	b.WriteString(formatSeries(res.Observed.Head(previewRows)))
	b.WriteString(fmt.Sprintf("\nLast %d rows of observed data:\n", previewRows))
	b.WriteString(formatSeries(res.Observed.Tail(previewRows)))

	b.WriteString(fmt.Sprintf("\nLast close: %.2f\n", res.Observed.LastValue()))
	if high, low, err := calculator.Calculate52WeekRange(res.Observed); err == nil {
		b.WriteString(fmt.Sprintf("52-week range: %.2f - %.2f\n", low, high))
	}
	if ma, err := calculator.CalculateSMA(res.Observed, 200); err == nil {
		b.WriteString(fmt.Sprintf("MA200: %.2f\n", ma))
	}

	if res.Forecast.IsEmpty() {
		b.WriteString("\nNo forecast produced.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("\nLast %d rows of forecast data:\n", previewRows))
	b.WriteString(formatSeries(res.Forecast.Tail(previewRows)))

	b.WriteString(fmt.Sprintf("\nForecast: %d days, %s through %s\n",
		res.HorizonDays,
		res.Forecast.Dates[0].Format("2006-01-02"),
		res.Forecast.LastDate().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Fit: %d observations, AIC %.1f, BIC %.1f\n",
		res.Stats.NObs, res.Stats.AIC, res.Stats.BIC))

	return b.String()
}

// FormatFailure formats an explicit failure notice for one invocation. The
// caller must show this instead of any stale or default forecast.
func FormatFailure(symbol string, err error) string {
	return fmt.Sprintf("=== Stock Forecast | %s ===\n\nForecast failed: %v\n", symbol, err)
}

func formatSeries(s model.TimeSeries) string {
	var b strings.Builder
	for i := 0; i < s.Len(); i++ {
		b.WriteString(fmt.Sprintf("  %s  %10.2f\n", s.Dates[i].Format("2006-01-02"), s.Values[i]))
	}
	return b.String()
}
