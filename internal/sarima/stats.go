package sarima

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// acf computes the sample autocorrelation function up to maxLag.
// Returns nil when the series is too short or has zero variance.
func acf(x []float64, maxLag int) []float64 {
	n := len(x)
	if maxLag < 1 || n <= maxLag {
		return nil
	}
	mean := stat.Mean(x, nil)

	var c0 float64
	for _, v := range x {
		d := v - mean
		c0 += d * d
	}
	if c0 == 0 {
		return nil
	}

	out := make([]float64, maxLag+1)
	out[0] = 1
	for k := 1; k <= maxLag; k++ {
		var ck float64
		for t := k; t < n; t++ {
			ck += (x[t] - mean) * (x[t-k] - mean)
		}
		out[k] = ck / c0
	}
	return out
}

// yuleWalker estimates AR(p) coefficients from the autocorrelations by
// solving the Toeplitz system R*phi = r. Returns nil when the system is
// singular, in which case the caller falls back to damped ACF values.
func yuleWalker(corr []float64, p int) []float64 {
	if p <= 0 || len(corr) <= p {
		return nil
	}

	r := mat.NewDense(p, p, nil)
	rhs := mat.NewVecDense(p, nil)
	for i := 0; i < p; i++ {
		rhs.SetVec(i, corr[i+1])
		for j := 0; j < p; j++ {
			lag := i - j
			if lag < 0 {
				lag = -lag
			}
			r.Set(i, j, corr[lag])
		}
	}

	var phi mat.VecDense
	if err := phi.SolveVec(r, rhs); err != nil {
		return nil
	}

	out := make([]float64, p)
	for i := 0; i < p; i++ {
		out[i] = clamp(phi.AtVec(i), -0.95, 0.95)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
