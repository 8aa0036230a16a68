package histstore

import (
	"sort"
	"time"

	"StockLab/internal/model"
)

// DateWindow is the fixed inclusive calendar range all data is clamped to.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow builds a window from two calendar dates. Both bounds are
// normalized to UTC midnight and are inclusive.
func NewDateWindow(start, end time.Time) DateWindow {
	return DateWindow{Start: canonicalDate(start), End: canonicalDate(end)}
}

// Contains reports whether the bar date d falls inside the window.
func (w DateWindow) Contains(d time.Time) bool {
	d = canonicalDate(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Filter normalizes every bar date to a timezone-naive calendar day,
// sorts the series, drops duplicate dates (last row wins), and retains
// only bars inside the window.
func (w DateWindow) Filter(bars model.Series) model.Series {
	normalized := Normalize(bars)
	out := make(model.Series, 0, len(normalized))
	for _, b := range normalized {
		if w.Contains(b.Date) {
			out = append(out, b)
		}
	}
	return out
}

// Normalize converts all dates to UTC midnight, orders the series
// chronologically and removes duplicate dates, keeping the last row
// seen for each date.
func Normalize(bars model.Series) model.Series {
	if len(bars) == 0 {
		return nil
	}
	normalized := make(model.Series, len(bars))
	for i, b := range bars {
		b.Date = canonicalDate(b.Date)
		normalized[i] = b
	}
	// Stable sort so that for duplicate dates the later input row wins.
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Date.Before(normalized[j].Date)
	})
	out := make(model.Series, 0, len(normalized))
	for _, b := range normalized {
		if n := len(out); n > 0 && out[n-1].Date.Equal(b.Date) {
			out[n-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}

// canonicalDate truncates a timestamp to its UTC calendar day.
func canonicalDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
