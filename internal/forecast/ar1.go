package forecast

import (
	"errors"
	"math"
)

// AR1 is a first-order autoregression on returns, fitted by ordinary
// least squares: r_t = c + phi * r_{t-1}.
type AR1 struct {
	c      float64
	phi    float64
	last   float64
	fitted bool
}

func (m *AR1) Name() string { return "ar1" }

// Fit estimates c and phi by regressing each return on its predecessor.
func (m *AR1) Fit(returns []float64) error {
	if len(returns) < 10 {
		return errors.New("ar1: need at least 10 returns")
	}
	n := len(returns) - 1
	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		x, y := returns[i], returns[i+1]
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	den := float64(n)*sumXX - sumX*sumX
	if math.Abs(den) < 1e-12 {
		return errors.New("ar1: degenerate regressor (constant returns)")
	}
	m.phi = (float64(n)*sumXY - sumX*sumY) / den
	m.c = (sumY - m.phi*sumX) / float64(n)
	m.last = returns[len(returns)-1]
	m.fitted = true
	return nil
}

// Forecast iterates the fitted recursion forward from the last observed
// return.
func (m *AR1) Forecast(steps int) []float64 {
	if !m.fitted || steps <= 0 {
		return nil
	}
	out := make([]float64, steps)
	prev := m.last
	for i := range out {
		prev = m.c + m.phi*prev
		out[i] = prev
	}
	return out
}
