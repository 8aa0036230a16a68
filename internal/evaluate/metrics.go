package evaluate

import (
	"errors"
	"math"
)

// RMSE computes the root mean squared error between actual and predicted.
func RMSE(actual, predicted []float64) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, errors.New("actual and predicted must have the same length")
	}
	if len(actual) == 0 {
		return 0, errors.New("no values to score")
	}
	var ss float64
	for i := range actual {
		d := actual[i] - predicted[i]
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(actual))), nil
}

// MAE computes the mean absolute error between actual and predicted.
func MAE(actual, predicted []float64) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, errors.New("actual and predicted must have the same length")
	}
	if len(actual) == 0 {
		return 0, errors.New("no values to score")
	}
	var sum float64
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(len(actual)), nil
}
