package stats

import (
	"errors"
	"math"

	"StockLab/internal/model"
)

// tradingDaysPerYear is the conventional annualization factor for daily data.
const tradingDaysPerYear = 252

// Returns computes simple daily returns from the close column. The
// result has len(bars)-1 entries.
func Returns(bars model.Series) ([]float64, error) {
	closes := bars.Closes()
	if len(closes) < 2 {
		return nil, errors.New("not enough data for returns calculation")
	}
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			return nil, errors.New("zero close price in series")
		}
		rets = append(rets, closes[i]/closes[i-1]-1)
	}
	return rets, nil
}

// LogReturns computes daily log returns from the close column.
func LogReturns(bars model.Series) ([]float64, error) {
	closes := bars.Closes()
	if len(closes) < 2 {
		return nil, errors.New("not enough data for log returns calculation")
	}
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return nil, errors.New("non-positive close price in series")
		}
		rets = append(rets, math.Log(closes[i]/closes[i-1]))
	}
	return rets, nil
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// StdDev returns the sample standard deviation of values.
func StdDev(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, errors.New("not enough values for standard deviation")
	}
	mean, _ := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1)), nil
}

// AnnualizedVolatility scales the daily return standard deviation by
// the square root of the trading-day count.
func AnnualizedVolatility(dailyReturns []float64) (float64, error) {
	sd, err := StdDev(dailyReturns)
	if err != nil {
		return 0, err
	}
	return sd * math.Sqrt(tradingDaysPerYear), nil
}
