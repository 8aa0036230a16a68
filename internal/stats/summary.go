package stats

import (
	"errors"
	"time"

	"StockLab/internal/model"
)

// Summary collects descriptive statistics for one price series.
type Summary struct {
	Symbol     string
	Bars       int
	FirstDate  time.Time
	LastDate   time.Time
	LastClose  float64
	MinClose   float64
	MaxClose   float64
	MeanReturn float64
	AnnualVol  float64
}

// Summarize computes a Summary over the given series.
func Summarize(symbol string, bars model.Series) (*Summary, error) {
	if bars.Empty() {
		return nil, errors.New("empty series")
	}

	s := &Summary{
		Symbol:    symbol,
		Bars:      len(bars),
		FirstDate: bars.First().Date,
		LastDate:  bars.Last().Date,
		LastClose: bars.Last().Close,
		MinClose:  bars[0].Close,
		MaxClose:  bars[0].Close,
	}
	for _, b := range bars {
		if b.Close < s.MinClose {
			s.MinClose = b.Close
		}
		if b.Close > s.MaxClose {
			s.MaxClose = b.Close
		}
	}

	rets, err := Returns(bars)
	if err != nil {
		return nil, err
	}
	if s.MeanReturn, err = Mean(rets); err != nil {
		return nil, err
	}
	if s.AnnualVol, err = AnnualizedVolatility(rets); err != nil {
		return nil, err
	}
	return s, nil
}
