// Package sarima implements seasonal ARIMA estimation and forecasting for
// daily closing-price series.
package sarima

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"StockForecast/internal/model"
)

// ErrModelFit indicates the series cannot support the requested order or
// that the optimizer diverged. The failure is always surfaced; the model
// never falls back to degenerate estimates.
var ErrModelFit = errors.New("model fit failed")

const (
	maxIterations = 200
	tolerance     = 1e-8
	baseLearnRate = 0.005
	momentumTerm  = 0.9
	rateDecay     = 0.99
	patience      = 20
)

// Model is a seasonal ARIMA model. A Model is single-use: create, Fit once,
// then Forecast. It is not safe for concurrent use.
type Model struct {
	Order Order

	Phi    []float64 // non-seasonal AR coefficients
	Theta  []float64 // non-seasonal MA coefficients
	SPhi   []float64 // seasonal AR coefficients
	STheta []float64 // seasonal MA coefficients

	Intercept float64
	Variance  float64
	AIC       float64
	BIC       float64
	LogLik    float64

	fitted   bool
	observed []float64 // original scale
	work     []float64 // after differencing
	resid    []float64
}

// New creates an unfitted model with the given order.
func New(order Order) *Model {
	return &Model{
		Order:  order,
		Phi:    make([]float64, order.P),
		Theta:  make([]float64, order.Q),
		SPhi:   make([]float64, order.SP),
		STheta: make([]float64, order.SQ),
	}
}

// Fit estimates the model from the series by conditional sum of squares.
// It fails with ErrModelFit when the series is shorter than the order's
// minimum or when optimization does not produce finite estimates. The
// context is checked between optimizer iterations; a cancelled fit returns
// ctx.Err().
func (m *Model) Fit(ctx context.Context, series model.TimeSeries) error {
	if err := m.Order.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrModelFit, err)
	}
	if n, min := series.Len(), m.Order.MinObservations(); n < min {
		return fmt.Errorf("%w: need at least %d observations for order %s, got %d",
			ErrModelFit, min, m.Order, n)
	}

	m.observed = append([]float64(nil), series.Values...)

	// Non-seasonal differencing first, then seasonal, mirroring the
	// integration order in Forecast.
	work := m.observed
	for i := 0; i < m.Order.D; i++ {
		work = difference(work, 1)
	}
	for i := 0; i < m.Order.SD; i++ {
		work = difference(work, m.Order.M)
	}
	if len(work) == 0 {
		return fmt.Errorf("%w: differencing consumed the entire series", ErrModelFit)
	}
	m.work = work

	m.initCoefficients()
	if err := m.optimize(ctx); err != nil {
		return err
	}

	m.informationCriteria()
	m.fitted = true
	return nil
}

// initCoefficients seeds AR terms from Yule-Walker estimates (damped ACF as
// fallback) and MA terms with small constants.
func (m *Model) initCoefficients() {
	m.Intercept = stat.Mean(m.work, nil)

	if m.Order.P > 0 {
		if corr := acf(m.work, m.Order.P); corr != nil {
			if phi := yuleWalker(corr, m.Order.P); phi != nil {
				copy(m.Phi, phi)
			} else {
				for i := 0; i < m.Order.P; i++ {
					m.Phi[i] = corr[i+1] * 0.5
				}
			}
		}
	}
	if m.Order.SP > 0 {
		if corr := acf(m.work, m.Order.SP*m.Order.M); corr != nil {
			for i := 0; i < m.Order.SP; i++ {
				lag := (i + 1) * m.Order.M
				if lag < len(corr) {
					m.SPhi[i] = corr[lag] * 0.5
				}
			}
		}
	}
	for i := range m.Theta {
		m.Theta[i] = 0.1
	}
	for i := range m.STheta {
		m.STheta[i] = 0.1
	}
}

// predictAt evaluates the one-step prediction at index t of the differenced
// series y given the residual history.
func (m *Model) predictAt(y, resid []float64, t int) float64 {
	pred := m.Intercept
	for i := 0; i < m.Order.P && t-i-1 >= 0; i++ {
		pred += m.Phi[i] * (y[t-i-1] - m.Intercept)
	}
	for i := 0; i < m.Order.SP; i++ {
		lag := (i + 1) * m.Order.M
		if t-lag >= 0 {
			pred += m.SPhi[i] * (y[t-lag] - m.Intercept)
		}
	}
	for i := 0; i < m.Order.Q && t-i-1 >= 0; i++ {
		pred += m.Theta[i] * resid[t-i-1]
	}
	for i := 0; i < m.Order.SQ; i++ {
		lag := (i + 1) * m.Order.M
		if t-lag >= 0 {
			pred += m.STheta[i] * resid[t-lag]
		}
	}
	return pred
}

// optimize refines the coefficients by gradient descent with momentum on
// the conditional sum of squares, keeping the best solution seen.
func (m *Model) optimize(ctx context.Context) error {
	y := m.work
	n := len(y)
	p, q, sp, sq := m.Order.P, m.Order.Q, m.Order.SP, m.Order.SQ
	period := m.Order.M

	start := maxInt(maxInt(p, q), maxInt(sp*period, sq*period))
	if start >= n-10 {
		start = 0
	}

	learnRate := baseLearnRate
	phiMom := make([]float64, p)
	thetaMom := make([]float64, q)
	sphiMom := make([]float64, sp)
	sthetaMom := make([]float64, sq)

	bestSSE := math.Inf(1)
	prevSSE := math.Inf(1)
	bestPhi := append([]float64(nil), m.Phi...)
	bestTheta := append([]float64(nil), m.Theta...)
	bestSPhi := append([]float64(nil), m.SPhi...)
	bestSTheta := append([]float64(nil), m.STheta...)
	noImprove := 0

	for iter := 0; iter < maxIterations; iter++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		resid := make([]float64, n)
		sse := 0.0
		for t := start; t < n; t++ {
			resid[t] = y[t] - m.predictAt(y, resid, t)
			sse += resid[t] * resid[t]
		}

		if sse < bestSSE {
			bestSSE = sse
			copy(bestPhi, m.Phi)
			copy(bestTheta, m.Theta)
			copy(bestSPhi, m.SPhi)
			copy(bestSTheta, m.STheta)
			noImprove = 0
		} else {
			noImprove++
		}
		if noImprove > patience {
			break
		}

		phiGrad := make([]float64, p)
		thetaGrad := make([]float64, q)
		sphiGrad := make([]float64, sp)
		sthetaGrad := make([]float64, sq)
		for t := start; t < n; t++ {
			for i := 0; i < p && t-i-1 >= 0; i++ {
				phiGrad[i] -= 2 * resid[t] * (y[t-i-1] - m.Intercept)
			}
			for i := 0; i < sp; i++ {
				lag := (i + 1) * period
				if t-lag >= 0 {
					sphiGrad[i] -= 2 * resid[t] * (y[t-lag] - m.Intercept)
				}
			}
			for i := 0; i < q && t-i-1 >= 0; i++ {
				thetaGrad[i] -= 2 * resid[t] * resid[t-i-1]
			}
			for i := 0; i < sq; i++ {
				lag := (i + 1) * period
				if t-lag >= 0 {
					sthetaGrad[i] -= 2 * resid[t] * resid[t-lag]
				}
			}
		}

		for i := 0; i < p; i++ {
			phiMom[i] = momentumTerm*phiMom[i] + learnRate*phiGrad[i]/float64(n)
			m.Phi[i] = clamp(m.Phi[i]-phiMom[i], -0.99, 0.99)
		}
		for i := 0; i < sp; i++ {
			sphiMom[i] = momentumTerm*sphiMom[i] + learnRate*sphiGrad[i]/float64(n)
			m.SPhi[i] = clamp(m.SPhi[i]-sphiMom[i], -0.99, 0.99)
		}
		for i := 0; i < q; i++ {
			thetaMom[i] = momentumTerm*thetaMom[i] + learnRate*thetaGrad[i]/float64(n)
			m.Theta[i] = clamp(m.Theta[i]-thetaMom[i], -0.99, 0.99)
		}
		for i := 0; i < sq; i++ {
			sthetaMom[i] = momentumTerm*sthetaMom[i] + learnRate*sthetaGrad[i]/float64(n)
			m.STheta[i] = clamp(m.STheta[i]-sthetaMom[i], -0.99, 0.99)
		}

		learnRate *= rateDecay
		if iter > 0 && math.Abs(sse-prevSSE) < tolerance {
			break
		}
		prevSSE = sse
	}

	if math.IsInf(bestSSE, 1) || math.IsNaN(bestSSE) {
		return fmt.Errorf("%w: optimization diverged (non-finite sum of squares)", ErrModelFit)
	}
	copy(m.Phi, bestPhi)
	copy(m.Theta, bestTheta)
	copy(m.SPhi, bestSPhi)
	copy(m.STheta, bestSTheta)

	// Final residual pass with the restored coefficients.
	m.resid = make([]float64, n)
	for t := 0; t < n; t++ {
		m.resid[t] = y[t] - m.predictAt(y, m.resid, t)
	}

	sse := 0.0
	count := 0
	for t := start; t < n; t++ {
		sse += m.resid[t] * m.resid[t]
		count++
	}
	if params := m.Order.Params(); count > params {
		m.Variance = sse / float64(count-params)
	} else if count > 0 {
		m.Variance = sse / float64(count)
	}
	if math.IsNaN(m.Variance) || math.IsInf(m.Variance, 0) {
		return fmt.Errorf("%w: non-finite residual variance", ErrModelFit)
	}
	return nil
}

// informationCriteria fills AIC, BIC, and log-likelihood assuming Gaussian
// errors.
func (m *Model) informationCriteria() {
	n := float64(len(m.resid))
	k := float64(m.Order.Params())

	sse := 0.0
	for _, r := range m.resid {
		sse += r * r
	}
	if m.Variance > 0 {
		m.LogLik = -n/2*math.Log(2*math.Pi) - n/2*math.Log(m.Variance) - sse/(2*m.Variance)
	} else {
		m.LogLik = math.Inf(-1)
	}
	m.AIC = -2*m.LogLik + 2*k
	m.BIC = -2*m.LogLik + k*math.Log(n)
}

// Forecast returns exactly horizon predicted mean values for the periods
// immediately after the last observed point. Future residuals are taken as
// zero, so the output is deterministic for a given fitted model.
func (m *Model) Forecast(horizon int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before forecasting")
	}
	if horizon < 1 {
		return nil, fmt.Errorf("horizon must be positive, got %d", horizon)
	}

	y := m.work
	n := len(y)

	ext := make([]float64, n+horizon)
	copy(ext, y)
	extResid := make([]float64, n+horizon)
	copy(extResid, m.resid)

	for h := 0; h < horizon; h++ {
		t := n + h
		pred := m.Intercept
		for i := 0; i < m.Order.P && t-i-1 >= 0; i++ {
			pred += m.Phi[i] * (ext[t-i-1] - m.Intercept)
		}
		for i := 0; i < m.Order.SP; i++ {
			lag := (i + 1) * m.Order.M
			if t-lag >= 0 {
				pred += m.SPhi[i] * (ext[t-lag] - m.Intercept)
			}
		}
		// MA terms only reach observed residuals; future ones are zero.
		for i := 0; i < m.Order.Q && t-i-1 >= 0 && t-i-1 < n; i++ {
			pred += m.Theta[i] * extResid[t-i-1]
		}
		for i := 0; i < m.Order.SQ; i++ {
			lag := (i + 1) * m.Order.M
			if t-lag >= 0 && t-lag < n {
				pred += m.STheta[i] * extResid[t-lag]
			}
		}
		ext[t] = pred
	}

	out := make([]float64, horizon)
	copy(out, ext[n:])
	return m.integrate(out), nil
}

// Stats returns the fit summary for reporting.
func (m *Model) Stats() model.FitStats {
	return model.FitStats{
		AIC:      m.AIC,
		BIC:      m.BIC,
		LogLik:   m.LogLik,
		Variance: m.Variance,
		NObs:     len(m.observed),
	}
}

// integrate reverses the differencing applied in Fit: seasonal sums first
// (seeded from the non-seasonally differenced tail of the data), then
// cumulative sums from the last observed value.
func (m *Model) integrate(forecasts []float64) []float64 {
	d, sd, period := m.Order.D, m.Order.SD, m.Order.M

	result := append([]float64(nil), forecasts...)

	nonSeasonal := m.observed
	for i := 0; i < d; i++ {
		nonSeasonal = difference(nonSeasonal, 1)
	}

	if sd > 0 && period > 0 {
		nd := len(nonSeasonal)
		for i := 0; i < sd; i++ {
			for j := range result {
				if j < period {
					if idx := nd - period + j; idx >= 0 && idx < nd {
						result[j] += nonSeasonal[idx]
					}
				} else {
					result[j] += result[j-period]
				}
			}
		}
	}

	for i := 0; i < d; i++ {
		last := m.observed[len(m.observed)-1]
		for j := range result {
			if j == 0 {
				result[j] += last
			} else {
				result[j] += result[j-1]
			}
		}
	}
	return result
}

// difference returns lag-k differences of x, dropping the first k values.
func difference(x []float64, k int) []float64 {
	if k <= 0 || len(x) <= k {
		return nil
	}
	out := make([]float64, len(x)-k)
	for i := k; i < len(x); i++ {
		out[i-k] = x[i] - x[i-k]
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
