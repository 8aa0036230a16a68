package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"StockLab/internal/cache"
	"StockLab/internal/config"
	"StockLab/internal/evaluate"
	"StockLab/internal/fetcher"
	"StockLab/internal/forecast"
	"StockLab/internal/histstore"
	"StockLab/internal/report"
	"StockLab/internal/stats"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := flag.String("config", "configs/config.yaml", "path to YAML config")
	ticker := flag.String("ticker", "", "ticker symbol (default: first configured ticker)")
	mode := flag.String("mode", "stats", "one of: fetch, stats, backtest")
	cacheOnly := flag.Bool("cache-only", false, "never download, use cached data only")
	noCache := flag.Bool("no-cache", false, "bypass the cache entirely")
	flag.Parse()

	if v := os.Getenv("CONFIG_PATH"); v != "" && *cfgPath == "configs/config.yaml" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	if *ticker == "" {
		*ticker = cfg.Tickers[0]
	}

	store, closeStore, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("[FATAL] init store: %v", err)
	}
	defer closeStore()

	opts := histstore.Options{
		UseCache:   !*noCache,
		CacheOnly:  *cacheOnly,
		MaxRetries: cfg.Fetch.MaxRetries,
	}
	res := store.Fetch(*ticker, cfg.Fetch.Interval, opts)
	if res.Series.Empty() {
		log.Printf("[ERROR] no data available for %s", *ticker)
		fmt.Print(report.FormatFetch(*ticker, res))
		os.Exit(1)
	}

	switch *mode {
	case "fetch":
		fmt.Print(report.FormatFetch(*ticker, res))

	case "stats":
		summary, err := stats.Summarize(*ticker, res.Series)
		if err != nil {
			log.Fatalf("[FATAL] summarize %s: %v", *ticker, err)
		}
		fmt.Print(report.FormatSummary(summary))

	case "backtest":
		returns, err := stats.Returns(res.Series)
		if err != nil {
			log.Fatalf("[FATAL] returns for %s: %v", *ticker, err)
		}
		models := []forecast.Forecaster{
			&forecast.RandomWalk{},
			&forecast.AR1{},
			forecast.NewRidge(cfg.Backtest.Lags, cfg.Backtest.RidgeLambda),
		}
		result, err := evaluate.Backtest(returns, cfg.Backtest.TestFraction, models)
		if err != nil {
			log.Fatalf("[FATAL] backtest %s: %v", *ticker, err)
		}
		fmt.Print(report.FormatBacktest(*ticker, result))

	default:
		log.Fatalf("[FATAL] unknown mode %q (want fetch, stats or backtest)", *mode)
	}
}

// buildStore wires the configured cache backend, fetcher and window into
// a HistoricalDataStore.
func buildStore(cfg *config.Config) (*histstore.HistoricalDataStore, func(), error) {
	var (
		cacheStore cache.Store
		err        error
	)
	switch cfg.Cache.Backend {
	case "sqlite":
		cacheStore, err = cache.NewSQLiteStore(cfg.Cache.SQLitePath)
	default:
		cacheStore, err = cache.NewCSVStore(cfg.Cache.Dir)
	}
	if err != nil {
		return nil, nil, err
	}
	log.Printf("[INFO] cache backend: %s", cacheStore.Name())

	yf := fetcher.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Printf("[INFO] data source: %s", yf.Name())

	start, end := cfg.WindowDates()
	window := histstore.NewDateWindow(start, end)
	store := histstore.New(yf, cacheStore, window, cfg.Fetch.FallbackPeriod)

	closer := func() {
		if err := cacheStore.Close(); err != nil {
			log.Printf("[WARN] close cache: %v", err)
		}
	}
	return store, closer, nil
}
