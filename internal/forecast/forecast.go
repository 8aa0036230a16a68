// Package forecast provides simple univariate forecasters for daily
// return series.
package forecast

import "errors"

// Forecaster fits on a training return series and predicts future steps.
type Forecaster interface {
	Name() string
	Fit(returns []float64) error
	Forecast(steps int) []float64
}

// ErrNotFitted is returned when Forecast is called before a successful Fit.
var ErrNotFitted = errors.New("model not fitted")

// RandomWalk is the random-walk-with-drift baseline: every forecast step
// is the mean training return.
type RandomWalk struct {
	drift  float64
	fitted bool
}

func (m *RandomWalk) Name() string { return "random_walk" }

func (m *RandomWalk) Fit(returns []float64) error {
	if len(returns) == 0 {
		return errors.New("random walk: no training returns")
	}
	sum := 0.0
	for _, r := range returns {
		sum += r
	}
	m.drift = sum / float64(len(returns))
	m.fitted = true
	return nil
}

func (m *RandomWalk) Forecast(steps int) []float64 {
	if !m.fitted || steps <= 0 {
		return nil
	}
	out := make([]float64, steps)
	for i := range out {
		out[i] = m.drift
	}
	return out
}
