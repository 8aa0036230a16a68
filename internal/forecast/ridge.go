package forecast

import (
	"fmt"
	"math"
)

// Ridge regresses each return on its previous Lags returns with an L2
// penalty Lambda on the lag coefficients (the intercept is unpenalized).
type Ridge struct {
	Lags   int
	Lambda float64

	coef   []float64 // [intercept, beta_1 .. beta_Lags]
	recent []float64 // last Lags returns, most recent first
	fitted bool
}

// NewRidge creates a ridge forecaster with the given lag order and
// penalty strength.
func NewRidge(lags int, lambda float64) *Ridge {
	return &Ridge{Lags: lags, Lambda: lambda}
}

func (m *Ridge) Name() string { return fmt.Sprintf("ridge_lag%d", m.Lags) }

// Fit solves the ridge normal equations (X'X + lambda*I) beta = X'y over
// the lagged design matrix.
func (m *Ridge) Fit(returns []float64) error {
	if m.Lags < 1 {
		return fmt.Errorf("ridge: lags must be positive, got %d", m.Lags)
	}
	if m.Lambda < 0 {
		return fmt.Errorf("ridge: lambda must be non-negative, got %g", m.Lambda)
	}
	n := len(returns) - m.Lags
	if n < m.Lags+2 {
		return fmt.Errorf("ridge: need more than %d returns for %d lags", 2*m.Lags+2, m.Lags)
	}

	// Design matrix row t: [1, r_{t-1}, ..., r_{t-Lags}], target r_t.
	dim := m.Lags + 1
	xtx := make([][]float64, dim)
	for i := range xtx {
		xtx[i] = make([]float64, dim)
	}
	xty := make([]float64, dim)

	row := make([]float64, dim)
	for t := m.Lags; t < len(returns); t++ {
		row[0] = 1
		for j := 1; j <= m.Lags; j++ {
			row[j] = returns[t-j]
		}
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				xtx[i][j] += row[i] * row[j]
			}
			xty[i] += row[i] * returns[t]
		}
	}
	// Penalize lag coefficients only.
	for i := 1; i < dim; i++ {
		xtx[i][i] += m.Lambda
	}

	coef, err := solveLinear(xtx, xty)
	if err != nil {
		return fmt.Errorf("ridge: %w", err)
	}
	m.coef = coef

	m.recent = make([]float64, m.Lags)
	for j := 0; j < m.Lags; j++ {
		m.recent[j] = returns[len(returns)-1-j]
	}
	m.fitted = true
	return nil
}

// Forecast feeds each prediction back in as the newest lag.
func (m *Ridge) Forecast(steps int) []float64 {
	if !m.fitted || steps <= 0 {
		return nil
	}
	recent := make([]float64, len(m.recent))
	copy(recent, m.recent)

	out := make([]float64, steps)
	for i := range out {
		pred := m.coef[0]
		for j := 0; j < m.Lags; j++ {
			pred += m.coef[j+1] * recent[j]
		}
		out[i] = pred
		copy(recent[1:], recent[:len(recent)-1])
		recent[0] = pred
	}
	return out
}

// solveLinear solves A x = b by Gaussian elimination with partial
// pivoting. A is modified in place.
func solveLinear(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("singular system at column %d", col)
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x, nil
}
