package fetcher

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const chartPayload = `{
  "chart": {
    "result": [{
      "timestamp": [1685577600, 1685664000, 1685750400],
      "indicators": {
        "quote": [{
          "open":   [100.0, null, 102.0],
          "high":   [101.0, null, 103.5],
          "low":    [99.0,  null, 101.0],
          "close":  [100.5, null, 103.0],
          "volume": [5000,  null, 6000]
        }],
        "adjclose": [{
          "adjclose": [100.1, null, 102.7]
        }]
      }
    }],
    "error": null
  }
}`

func TestYahooFetcher_FetchRange(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chartPayload)
	}))
	defer server.Close()

	f := NewYahooFetcher(server.URL, "")
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC)
	bars, err := f.FetchRange("TSLA", "1d", start, end)
	if err != nil {
		t.Fatalf("fetch range: %v", err)
	}

	wantQuery := fmt.Sprintf("interval=1d&period1=%d&period2=%d", start.Unix(), end.Unix())
	if gotQuery != wantQuery {
		t.Errorf("query = %q, want %q", gotQuery, wantQuery)
	}
	// Middle bar is all null (holiday) and must be skipped.
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Close != 100.5 || bars[0].AdjClose != 100.1 {
		t.Errorf("first bar = %+v", bars[0])
	}
	if !bars[0].Date.Before(bars[1].Date) {
		t.Error("bars not in chronological order")
	}
}

func TestYahooFetcher_FetchPeriod(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, chartPayload)
	}))
	defer server.Close()

	f := NewYahooFetcher(server.URL, "")
	bars, err := f.FetchPeriod("TSLA", "1d", "5y")
	if err != nil {
		t.Fatalf("fetch period: %v", err)
	}
	if gotQuery != "interval=1d&range=5y" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
}

func TestYahooFetcher_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
	}))
	defer server.Close()

	f := NewYahooFetcher(server.URL, "")
	if _, err := f.FetchPeriod("NOPE", "1d", "5y"); err == nil {
		t.Fatal("expected an error for API error payload")
	}
}

func TestYahooFetcher_HTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	f := NewYahooFetcher(server.URL, "")
	if _, err := f.FetchPeriod("TSLA", "1d", "5y"); err == nil {
		t.Fatal("expected an error for HTTP 429")
	}
}

func TestYahooFetcher_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[{}]}}],"error":null}}`)
	}))
	defer server.Close()

	f := NewYahooFetcher(server.URL, "")
	bars, err := f.FetchPeriod("TSLA", "1d", "5y")
	if err != nil {
		t.Fatalf("empty result should not error: %v", err)
	}
	if len(bars) != 0 {
		t.Fatalf("expected no bars, got %d", len(bars))
	}
}

func TestYahooFetcher_SymbolMapping(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, chartPayload)
	}))
	defer server.Close()

	f := NewYahooFetcher(server.URL, "")
	if _, err := f.FetchPeriod("SPX500", "1d", "1y"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotPath != "/v8/finance/chart/%5EGSPC" && gotPath != "/v8/finance/chart/^GSPC" {
		t.Errorf("path = %q, want mapped ^GSPC ticker", gotPath)
	}
}
