// Package cache provides per-ticker persistence of historical bar series.
package cache

import (
	"errors"

	"StockLab/internal/model"
)

// ErrNotFound is returned by Load when no entry exists for a symbol.
var ErrNotFound = errors.New("cache entry not found")

// Store persists one Series per ticker symbol. Save always replaces the
// whole entry; partial updates are not supported.
type Store interface {
	Load(symbol string) (model.Series, error)
	Save(symbol string, bars model.Series) error
	Name() string
	Close() error
}
