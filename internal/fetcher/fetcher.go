package fetcher

import (
	"time"

	"StockLab/internal/model"
)

// Fetcher defines the interface for fetching historical bars from a
// remote market-data source. Both operations may fail or legitimately
// return no bars; callers decide how to react.
type Fetcher interface {
	// FetchRange fetches bars whose timestamps fall in [start, end].
	FetchRange(symbol, interval string, start, end time.Time) (model.Series, error)
	// FetchPeriod fetches bars over a relative period such as "2y" or "5y".
	FetchPeriod(symbol, interval, period string) (model.Series, error)
	Name() string
}
