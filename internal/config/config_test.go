package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Tickers) != 1 || cfg.Tickers[0] != "TSLA" {
		t.Errorf("tickers = %v", cfg.Tickers)
	}
	if cfg.Window.Start != "2020-12-14" || cfg.Window.End != "2025-12-12" {
		t.Errorf("window = %s..%s", cfg.Window.Start, cfg.Window.End)
	}
	if cfg.Cache.Backend != "csv" || cfg.Fetch.MaxRetries != 3 {
		t.Errorf("backend=%s retries=%d", cfg.Cache.Backend, cfg.Fetch.MaxRetries)
	}
	if cfg.Fetch.Interval != "1d" || cfg.Fetch.FallbackPeriod != "5y" {
		t.Errorf("interval=%s fallback=%s", cfg.Fetch.Interval, cfg.Fetch.FallbackPeriod)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
tickers: [AAPL, MSFT]
window:
  start: "2021-01-04"
  end: "2024-12-31"
cache:
  backend: sqlite
fetch:
  max_retries: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Tickers) != 2 || cfg.Tickers[0] != "AAPL" {
		t.Errorf("tickers = %v", cfg.Tickers)
	}
	if cfg.Cache.Backend != "sqlite" || cfg.Fetch.MaxRetries != 5 {
		t.Errorf("backend=%s retries=%d", cfg.Cache.Backend, cfg.Fetch.MaxRetries)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STOCKLAB_TICKERS", "NVDA, AMD")
	t.Setenv("STOCKLAB_MAX_RETRIES", "7")
	t.Setenv("STOCKLAB_CACHE_BACKEND", "sqlite")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Tickers) != 2 || cfg.Tickers[0] != "NVDA" || cfg.Tickers[1] != "AMD" {
		t.Errorf("tickers = %v", cfg.Tickers)
	}
	if cfg.Fetch.MaxRetries != 7 {
		t.Errorf("retries = %d", cfg.Fetch.MaxRetries)
	}
	if cfg.Cache.Backend != "sqlite" {
		t.Errorf("backend = %s", cfg.Cache.Backend)
	}
}

func TestValidate_Errors(t *testing.T) {
	base := func() *Config {
		cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad start date", func(c *Config) { c.Window.Start = "never" }},
		{"bad end date", func(c *Config) { c.Window.End = "12/31/2024" }},
		{"inverted window", func(c *Config) { c.Window.Start, c.Window.End = c.Window.End, c.Window.Start }},
		{"bad backend", func(c *Config) { c.Cache.Backend = "redis" }},
		{"zero retries", func(c *Config) { c.Fetch.MaxRetries = 0 }},
		{"bad fraction", func(c *Config) { c.Backtest.TestFraction = 1.5 }},
		{"no tickers", func(c *Config) { c.Tickers = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestWindowDates(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	start, end := cfg.WindowDates()
	if start.Year() != 2020 || end.Year() != 2025 {
		t.Errorf("window dates = %s..%s", start, end)
	}
	if start.After(end) {
		t.Error("start after end")
	}
}
