package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Tickers    []string `yaml:"tickers"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"data_source"`
	Window struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"window"`
	Cache struct {
		Backend    string `yaml:"backend"` // "csv" or "sqlite"
		Dir        string `yaml:"dir"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"cache"`
	Fetch struct {
		Interval       string `yaml:"interval"`
		MaxRetries     int    `yaml:"max_retries"`
		FallbackPeriod string `yaml:"fallback_period"`
	} `yaml:"fetch"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Backtest struct {
		Lags         int     `yaml:"lags"`
		RidgeLambda  float64 `yaml:"ridge_lambda"`
		TestFraction float64 `yaml:"test_fraction"`
	} `yaml:"backtest"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKLAB_TICKERS"); v != "" {
		cfg.Tickers = splitTickers(v)
	}
	if v := os.Getenv("STOCKLAB_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("STOCKLAB_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("STOCKLAB_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("STOCKLAB_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Fetch.MaxRetries = n
		}
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = []string{"TSLA"}
	}
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://query1.finance.yahoo.com"
	}
	if cfg.Window.Start == "" {
		cfg.Window.Start = "2020-12-14"
	}
	if cfg.Window.End == "" {
		cfg.Window.End = "2025-12-12"
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "csv"
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = "data/raw"
	}
	if cfg.Cache.SQLitePath == "" {
		cfg.Cache.SQLitePath = "data/stocklab.db"
	}
	if cfg.Fetch.Interval == "" {
		cfg.Fetch.Interval = "1d"
	}
	if cfg.Fetch.MaxRetries == 0 {
		cfg.Fetch.MaxRetries = 3
	}
	if cfg.Fetch.FallbackPeriod == "" {
		cfg.Fetch.FallbackPeriod = "5y"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 22 * * 1-5"
	}
	if cfg.Backtest.Lags == 0 {
		cfg.Backtest.Lags = 5
	}
	if cfg.Backtest.RidgeLambda == 0 {
		cfg.Backtest.RidgeLambda = 1.0
	}
	if cfg.Backtest.TestFraction == 0 {
		cfg.Backtest.TestFraction = 0.2
	}

	return cfg, nil
}

// Validate checks that all required fields are coherent.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers must not be empty")
	}
	start, err := time.Parse("2006-01-02", c.Window.Start)
	if err != nil {
		return fmt.Errorf("window.start: %w", err)
	}
	end, err := time.Parse("2006-01-02", c.Window.End)
	if err != nil {
		return fmt.Errorf("window.end: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("window.end %s is before window.start %s", c.Window.End, c.Window.Start)
	}
	if c.Cache.Backend != "csv" && c.Cache.Backend != "sqlite" {
		return fmt.Errorf("cache.backend must be \"csv\" or \"sqlite\", got %q", c.Cache.Backend)
	}
	if c.Fetch.MaxRetries < 1 {
		return fmt.Errorf("fetch.max_retries must be positive")
	}
	if c.Backtest.TestFraction <= 0 || c.Backtest.TestFraction >= 1 {
		return fmt.Errorf("backtest.test_fraction must be in (0, 1)")
	}
	return nil
}

// WindowDates returns the parsed window bounds. Call Validate first.
func (c *Config) WindowDates() (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", c.Window.Start)
	end, _ = time.Parse("2006-01-02", c.Window.End)
	return start.UTC(), end.UTC()
}

func splitTickers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
