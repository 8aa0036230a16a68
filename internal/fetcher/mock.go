package fetcher

import (
	"time"

	"StockLab/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	RangeData   model.Series
	PeriodData  model.Series
	RangeErr    error
	PeriodErr   error
	RangeCalls  int
	PeriodCalls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchRange(_, _ string, _, _ time.Time) (model.Series, error) {
	m.RangeCalls++
	if m.RangeErr != nil {
		return nil, m.RangeErr
	}
	return m.RangeData, nil
}

func (m *MockFetcher) FetchPeriod(_, _, _ string) (model.Series, error) {
	m.PeriodCalls++
	if m.PeriodErr != nil {
		return nil, m.PeriodErr
	}
	return m.PeriodData, nil
}

// GenerateBars produces count consecutive daily bars starting at start,
// drifting gently around basePrice.
func GenerateBars(basePrice float64, start time.Time, count int) model.Series {
	bars := make(model.Series, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:     start.AddDate(0, 0, i),
			Open:     p * 0.999,
			High:     p * 1.005,
			Low:      p * 0.995,
			Close:    p,
			AdjClose: p,
			Volume:   1000000,
		}
	}
	return bars
}
