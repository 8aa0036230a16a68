// Package histstore implements the historical data store: a cache-first,
// retrying loader of daily price bars clamped to a fixed date window.
package histstore

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"StockLab/internal/cache"
	"StockLab/internal/fetcher"
	"StockLab/internal/model"
)

// rangeMargin widens the remote range request on both sides so boundary
// sessions are not lost to exchange-timezone offsets.
const rangeMargin = 7 * 24 * time.Hour

// Source identifies where a fetch result came from.
type Source int

const (
	// SourceCache means the series was served from the local cache.
	SourceCache Source = iota
	// SourceRemote means the series was downloaded on this call.
	SourceRemote
	// SourceNone means no data could be produced (cache-only miss, the
	// remote returned nothing, or retries were exhausted).
	SourceNone
)

func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceRemote:
		return "remote"
	default:
		return "none"
	}
}

// Options control a single Fetch call.
type Options struct {
	UseCache   bool // consult the cache first and persist downloads
	CacheOnly  bool // never perform a remote call
	MaxRetries int  // remote attempts before giving up
}

// DefaultOptions returns the standard fetch behavior: cache enabled,
// remote allowed, three attempts.
func DefaultOptions() Options {
	return Options{UseCache: true, CacheOnly: false, MaxRetries: 3}
}

// Result is the typed outcome of a Fetch. The series may be empty but
// Fetch never fails: remote and cache errors are absorbed internally.
type Result struct {
	Series   model.Series
	Source   Source
	Attempts int
}

// HistoricalDataStore produces bar series for ticker symbols, using a
// local cache to avoid remote calls and bounded jittered retries to ride
// out transient remote failures.
type HistoricalDataStore struct {
	fetcher        fetcher.Fetcher
	cache          cache.Store // nil disables caching entirely
	window         DateWindow
	fallbackPeriod string

	// mu serializes the cache-check -> fetch -> save sequence so
	// concurrent callers cannot trigger duplicate downloads.
	mu sync.Mutex

	// Injected for tests; default to real sleeping and math/rand.
	sleep     func(time.Duration)
	randFloat func() float64
}

// New creates a HistoricalDataStore. cacheStore may be nil, in which
// case every call goes remote. fallbackPeriod is the relative range used
// when the exact-window request fails (e.g. "5y").
func New(f fetcher.Fetcher, cacheStore cache.Store, window DateWindow, fallbackPeriod string) *HistoricalDataStore {
	if fallbackPeriod == "" {
		fallbackPeriod = "5y"
	}
	return &HistoricalDataStore{
		fetcher:        f,
		cache:          cacheStore,
		window:         window,
		fallbackPeriod: fallbackPeriod,
		sleep:          time.Sleep,
		randFloat:      rand.Float64,
	}
}

// Window returns the store's configured date window.
func (s *HistoricalDataStore) Window() DateWindow { return s.window }

// Fetch produces the series for symbol at the given sampling interval.
// The returned series is always normalized, deduplicated and clamped to
// the store's window; it is empty when no data could be produced.
func (s *HistoricalDataStore) Fetch(symbol, interval string, opts Options) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if symbol == "" {
		log.Println("[WARN] empty ticker symbol, returning empty series")
		return Result{Source: SourceNone}
	}
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}

	// 1) Cache lookup. A hit is returned as-is (after filtering) even
	// when it does not fully cover the window.
	if s.cache != nil && (opts.UseCache || opts.CacheOnly) {
		if bars, ok := s.loadCached(symbol); ok {
			return Result{Series: bars, Source: SourceCache}
		}
	}

	// 2) Cache-only mode forbids any remote call.
	if opts.CacheOnly {
		log.Printf("[INFO] cache-only mode and no cache entry for %s, returning empty series", symbol)
		return Result{Source: SourceNone}
	}

	// 3) Remote fetch with bounded, jittered retries.
	return s.remoteFetch(symbol, interval, opts.MaxRetries, opts.UseCache)
}

// Refresh forces a fresh download and cache write regardless of any
// existing entry. It is the refresh daemon's entry point; interactive
// callers should use Fetch.
func (s *HistoricalDataStore) Refresh(symbol, interval string, maxRetries int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if maxRetries < 1 {
		maxRetries = 1
	}
	return s.remoteFetch(symbol, interval, maxRetries, true)
}

// remoteFetch runs the bounded retry loop. Callers must hold s.mu.
func (s *HistoricalDataStore) remoteFetch(symbol, interval string, maxRetries int, persist bool) Result {
	s.sleep(initialDelay(s.randFloat))

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := retryDelay(attempt, s.randFloat)
			log.Printf("[INFO] retrying %s in %s (attempt %d/%d)", symbol, delay.Round(time.Millisecond), attempt+1, maxRetries)
			s.sleep(delay)
		}

		bars, err := s.fetchOnce(symbol, interval)
		if err != nil {
			log.Printf("[WARN] fetch %s attempt %d/%d: %v", symbol, attempt+1, maxRetries, err)
			continue
		}
		if len(bars) == 0 {
			log.Printf("[WARN] fetch %s attempt %d/%d: no data returned", symbol, attempt+1, maxRetries)
			continue
		}

		bars = ensureAdjClose(bars)
		bars = s.window.Filter(bars)

		if persist && s.cache != nil {
			if err := s.cache.Save(symbol, bars); err != nil {
				log.Printf("[WARN] save %s to cache: %v", symbol, err)
			} else {
				log.Printf("[INFO] cached %d bars for %s", len(bars), symbol)
			}
		}
		log.Printf("[INFO] fetched %d bars for %s (attempt %d/%d)", len(bars), symbol, attempt+1, maxRetries)
		return Result{Series: bars, Source: SourceRemote, Attempts: attempt + 1}
	}

	log.Printf("[WARN] giving up on %s after %d attempts", symbol, maxRetries)
	return Result{Source: SourceNone, Attempts: maxRetries}
}

// fetchOnce performs one two-tier remote attempt: the exact window
// (widened by a small margin) first, then a relative-period request
// filtered down afterwards.
func (s *HistoricalDataStore) fetchOnce(symbol, interval string) (model.Series, error) {
	start := s.window.Start.Add(-rangeMargin)
	end := s.window.End.Add(rangeMargin)

	bars, err := s.fetcher.FetchRange(symbol, interval, start, end)
	if err == nil {
		return bars, nil
	}
	log.Printf("[WARN] range fetch %s failed (%v), falling back to period %q", symbol, err, s.fallbackPeriod)
	return s.fetcher.FetchPeriod(symbol, interval, s.fallbackPeriod)
}

// loadCached reads and filters the cached entry for symbol. Malformed or
// unreadable entries are logged and treated as a miss.
func (s *HistoricalDataStore) loadCached(symbol string) (model.Series, bool) {
	bars, err := s.cache.Load(symbol)
	if err != nil {
		if err != cache.ErrNotFound {
			log.Printf("[WARN] cache read for %s: %v", symbol, err)
		}
		return nil, false
	}
	filtered := s.window.Filter(bars)
	log.Printf("[INFO] cache hit for %s (%d bars after window filter)", symbol, len(filtered))
	return filtered, true
}

// ensureAdjClose defaults the adjusted close to the close when the
// source did not supply one.
func ensureAdjClose(bars model.Series) model.Series {
	for i, b := range bars {
		if b.AdjClose == 0 {
			bars[i].AdjClose = b.Close
		}
	}
	return bars
}
