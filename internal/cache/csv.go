package cache

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"StockLab/internal/model"
)

var csvHeader = []string{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume"}

// CSVStore keeps one CSV file per ticker under a directory. The format is
// a header row followed by date-indexed OHLCV + adjusted-close rows.
type CSVStore struct {
	Dir string
}

// NewCSVStore creates the cache directory if needed.
func NewCSVStore(dir string) (*CSVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &CSVStore{Dir: dir}, nil
}

func (s *CSVStore) Name() string { return "csv" }

func (s *CSVStore) path(symbol string) string {
	// Guard against path separators sneaking in via the symbol.
	safe := strings.NewReplacer("/", "_", "\\", "_").Replace(symbol)
	return filepath.Join(s.Dir, fmt.Sprintf("bars_%s.csv", safe))
}

// Load reads the cached series for symbol. Returns ErrNotFound when no
// file exists; any parse failure is reported so callers can treat the
// entry as a miss.
func (s *CSVStore) Load(symbol string) (model.Series, error) {
	f, err := os.Open(s.path(symbol))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open cache: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	bars := make(model.Series, 0, len(rows)-1)
	for i, row := range rows[1:] {
		bar, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("cache row %d: %w", i+2, err)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// Save replaces the whole cache entry for symbol.
func (s *CSVStore) Save(symbol string, bars model.Series) error {
	f, err := os.Create(s.path(symbol))
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write cache header: %w", err)
	}
	for _, b := range bars {
		row := []string{
			b.Date.Format("2006-01-02"),
			formatFloat(b.Open),
			formatFloat(b.High),
			formatFloat(b.Low),
			formatFloat(b.Close),
			formatFloat(b.AdjClose),
			formatFloat(b.Volume),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write cache row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}
	return nil
}

func (s *CSVStore) Close() error { return nil }

func parseRow(row []string) (model.Bar, error) {
	if len(row) != len(csvHeader) {
		return model.Bar{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(row))
	}
	date, err := time.Parse("2006-01-02", row[0])
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse date %q: %w", row[0], err)
	}
	vals := make([]float64, 6)
	for i, cell := range row[1:] {
		if cell == "" && i == 4 {
			continue // missing Adj Close is defaulted to Close below
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return model.Bar{}, fmt.Errorf("parse %s %q: %w", csvHeader[i+1], cell, err)
		}
		vals[i] = v
	}
	bar := model.Bar{
		Date:     date,
		Open:     vals[0],
		High:     vals[1],
		Low:      vals[2],
		Close:    vals[3],
		AdjClose: vals[4],
		Volume:   vals[5],
	}
	if row[5] == "" {
		bar.AdjClose = bar.Close
	}
	return bar, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
