// Package evaluate scores return forecasters on held-out data.
package evaluate

import (
	"fmt"
	"log"

	"StockLab/internal/forecast"
)

// ModelScore holds one forecaster's held-out error metrics.
type ModelScore struct {
	Model string
	RMSE  float64
	MAE   float64
	Err   error // set when the model could not be fitted or scored
}

// BacktestResult summarizes a walk-forward evaluation run.
type BacktestResult struct {
	TrainSize int
	TestSize  int
	Scores    []ModelScore
}

// Backtest splits the return series chronologically, fits every model on
// the training portion and scores its multi-step forecast against the
// held-out tail. testFraction is the share of observations held out.
func Backtest(returns []float64, testFraction float64, models []forecast.Forecaster) (*BacktestResult, error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, fmt.Errorf("test fraction must be in (0, 1), got %g", testFraction)
	}
	split := int(float64(len(returns)) * (1 - testFraction))
	if split < 2 || split >= len(returns) {
		return nil, fmt.Errorf("not enough returns to split: %d", len(returns))
	}

	train, test := returns[:split], returns[split:]
	result := &BacktestResult{TrainSize: len(train), TestSize: len(test)}

	for _, m := range models {
		score := ModelScore{Model: m.Name()}
		if err := m.Fit(train); err != nil {
			log.Printf("[WARN] fit %s: %v", m.Name(), err)
			score.Err = err
			result.Scores = append(result.Scores, score)
			continue
		}
		pred := m.Forecast(len(test))
		if len(pred) != len(test) {
			score.Err = fmt.Errorf("forecast returned %d steps, want %d", len(pred), len(test))
			result.Scores = append(result.Scores, score)
			continue
		}
		var err error
		if score.RMSE, err = RMSE(test, pred); err != nil {
			score.Err = err
			result.Scores = append(result.Scores, score)
			continue
		}
		if score.MAE, err = MAE(test, pred); err != nil {
			score.Err = err
			result.Scores = append(result.Scores, score)
			continue
		}
		result.Scores = append(result.Scores, score)
	}
	return result, nil
}
