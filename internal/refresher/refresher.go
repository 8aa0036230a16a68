// Package refresher keeps the bar cache warm on a cron schedule.
package refresher

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockLab/internal/histstore"
)

// Refresher periodically re-fetches every configured ticker so the cache
// stays populated for cache-only consumers.
type Refresher struct {
	Cron     *cron.Cron
	Store    *histstore.HistoricalDataStore
	Tickers  []string
	Interval string
	Retries  int
}

// New creates a Refresher for the given store and ticker list.
func New(store *histstore.HistoricalDataStore, tickers []string, interval string, retries int) *Refresher {
	return &Refresher{
		Cron:     cron.New(cron.WithSeconds()),
		Store:    store,
		Tickers:  tickers,
		Interval: interval,
		Retries:  retries,
	}
}

// Register schedules the refresh task on the given cron expression.
func (r *Refresher) Register(cronExpr string) error {
	if _, err := r.Cron.AddFunc(cronExpr, r.RefreshAll); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Refresher) Start() {
	r.Cron.Start()
	log.Println("[INFO] refresher started")
}

// Stop stops the cron scheduler gracefully.
func (r *Refresher) Stop() {
	r.Cron.Stop()
	log.Println("[INFO] refresher stopped")
}

// RefreshAll re-downloads every ticker (cache write-through) and
// reports per-ticker outcomes.
func (r *Refresher) RefreshAll() {
	log.Printf("[INFO] refreshing %d tickers", len(r.Tickers))
	for _, ticker := range r.Tickers {
		res := r.Store.Refresh(ticker, r.Interval, r.Retries)
		if res.Series.Empty() {
			log.Printf("[WARN] refresh %s: no data after %d attempts", ticker, res.Attempts)
			continue
		}
		log.Printf("[INFO] refresh %s: %d bars", ticker, len(res.Series))
	}
}
