package evaluate

import (
	"errors"
	"math"
	"testing"

	"StockLab/internal/forecast"
)

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float64{1, 2, 3}, []float64{1, 2, 3})
	if err != nil || got != 0 {
		t.Fatalf("identical arrays: rmse=%v err=%v", got, err)
	}
	got, err = RMSE([]float64{0, 0}, []float64{3, 4})
	if err != nil {
		t.Fatalf("rmse: %v", err)
	}
	want := math.Sqrt(12.5) // (9+16)/2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("rmse = %v, want %v", got, want)
	}
}

func TestMAE(t *testing.T) {
	got, err := MAE([]float64{1, -1}, []float64{0, 0})
	if err != nil || got != 1 {
		t.Fatalf("mae = %v, err = %v", got, err)
	}
}

func TestMetrics_LengthMismatch(t *testing.T) {
	if _, err := RMSE([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := MAE([]float64{1}, nil); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := RMSE(nil, nil); err == nil {
		t.Fatal("expected error for empty arrays")
	}
}

// failingModel always refuses to fit.
type failingModel struct{}

func (failingModel) Name() string           { return "broken" }
func (failingModel) Fit([]float64) error    { return errors.New("nope") }
func (failingModel) Forecast(int) []float64 { return nil }

func TestBacktest_SplitsAndScores(t *testing.T) {
	returns := make([]float64, 100)
	for i := range returns {
		returns[i] = 0.001 * float64(i%7)
	}
	models := []forecast.Forecaster{&forecast.RandomWalk{}, &forecast.AR1{}}
	res, err := Backtest(returns, 0.2, models)
	if err != nil {
		t.Fatalf("backtest: %v", err)
	}
	if res.TrainSize != 80 || res.TestSize != 20 {
		t.Fatalf("split = %d/%d, want 80/20", res.TrainSize, res.TestSize)
	}
	if len(res.Scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(res.Scores))
	}
	for _, s := range res.Scores {
		if s.Err != nil {
			t.Errorf("%s failed: %v", s.Model, s.Err)
			continue
		}
		if s.RMSE < 0 || s.MAE < 0 || math.IsNaN(s.RMSE) || math.IsNaN(s.MAE) {
			t.Errorf("%s: invalid metrics rmse=%v mae=%v", s.Model, s.RMSE, s.MAE)
		}
		if s.MAE > s.RMSE+1e-12 {
			t.Errorf("%s: MAE %v exceeds RMSE %v", s.Model, s.MAE, s.RMSE)
		}
	}
}

func TestBacktest_ModelFailureIsRecorded(t *testing.T) {
	returns := make([]float64, 50)
	for i := range returns {
		returns[i] = 0.001 * float64(i%5)
	}
	res, err := Backtest(returns, 0.2, []forecast.Forecaster{failingModel{}})
	if err != nil {
		t.Fatalf("backtest: %v", err)
	}
	if len(res.Scores) != 1 || res.Scores[0].Err == nil {
		t.Fatalf("expected recorded model failure, got %+v", res.Scores)
	}
}

func TestBacktest_InvalidFraction(t *testing.T) {
	returns := []float64{0.1, 0.2, 0.3, 0.4}
	if _, err := Backtest(returns, 0, nil); err == nil {
		t.Fatal("expected error for zero fraction")
	}
	if _, err := Backtest(returns, 1, nil); err == nil {
		t.Fatal("expected error for fraction of 1")
	}
}

func TestBacktest_TooFewReturns(t *testing.T) {
	if _, err := Backtest([]float64{0.1}, 0.2, nil); err == nil {
		t.Fatal("expected error for too few returns")
	}
}
