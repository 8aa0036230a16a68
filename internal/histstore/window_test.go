package histstore

import (
	"testing"
	"time"

	"StockLab/internal/model"
)

func TestNormalize_TruncatesToUTCDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	bars := model.Series{
		{Date: time.Date(2023, 6, 1, 21, 30, 0, 0, ny), Close: 100},
	}
	out := Normalize(bars)
	want := time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC) // 21:30 EDT is next day UTC
	if !out[0].Date.Equal(want) {
		t.Errorf("normalized date = %s, want %s", out[0].Date, want)
	}
	if out[0].Date.Location() != time.UTC {
		t.Errorf("normalized date not in UTC")
	}
}

func TestNormalize_SortsAndDedupes(t *testing.T) {
	bars := model.Series{
		{Date: day(2023, 6, 3), Close: 3},
		{Date: day(2023, 6, 1), Close: 1},
		{Date: day(2023, 6, 1), Close: 10}, // later row for same date wins
		{Date: day(2023, 6, 2), Close: 2},
	}
	out := Normalize(bars)
	if len(out) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(out))
	}
	if out[0].Close != 10 {
		t.Errorf("duplicate resolution: got close %v, want 10", out[0].Close)
	}
	for i := 1; i < len(out); i++ {
		if !out[i-1].Date.Before(out[i].Date) {
			t.Fatalf("not strictly increasing at %d", i)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	if out := Normalize(nil); out != nil {
		t.Errorf("expected nil for empty input, got %v", out)
	}
}

func TestWindow_InclusiveBounds(t *testing.T) {
	w := NewDateWindow(day(2020, 12, 14), day(2025, 12, 12))

	tests := []struct {
		date time.Time
		in   bool
	}{
		{day(2020, 12, 13), false},
		{day(2020, 12, 14), true},
		{day(2023, 1, 1), true},
		{day(2025, 12, 12), true},
		{day(2025, 12, 13), false},
		{day(2026, 1, 1), false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.date); got != tt.in {
			t.Errorf("Contains(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.in)
		}
	}
}

func TestWindow_FilterClampsAndOrders(t *testing.T) {
	w := NewDateWindow(day(2020, 12, 14), day(2025, 12, 12))
	bars := model.Series{
		{Date: day(2026, 1, 1), Close: 5},
		{Date: day(2025, 12, 12), Close: 4},
		{Date: day(2020, 12, 14), Close: 1},
		{Date: day(2019, 1, 1), Close: 0},
	}
	out := w.Filter(bars)
	if len(out) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(out))
	}
	if !out[0].Date.Equal(day(2020, 12, 14)) || !out[1].Date.Equal(day(2025, 12, 12)) {
		t.Errorf("unexpected bounds: %s .. %s", out[0].Date, out[1].Date)
	}
}
