package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockLab/internal/cache"
	"StockLab/internal/config"
	"StockLab/internal/fetcher"
	"StockLab/internal/histstore"
	"StockLab/internal/refresher"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] refreshd starting...")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	var cacheStore cache.Store
	switch cfg.Cache.Backend {
	case "sqlite":
		cacheStore, err = cache.NewSQLiteStore(cfg.Cache.SQLitePath)
	default:
		cacheStore, err = cache.NewCSVStore(cfg.Cache.Dir)
	}
	if err != nil {
		log.Fatalf("[FATAL] init cache: %v", err)
	}
	defer cacheStore.Close()
	log.Printf("[INFO] cache backend: %s", cacheStore.Name())

	yf := fetcher.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Printf("[INFO] data source: %s", yf.Name())

	start, end := cfg.WindowDates()
	store := histstore.New(yf, cacheStore, histstore.NewDateWindow(start, end), cfg.Fetch.FallbackPeriod)

	ref := refresher.New(store, cfg.Tickers, cfg.Fetch.Interval, cfg.Fetch.MaxRetries)
	if err := ref.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	ref.Start()
	defer ref.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing now")
		go ref.RefreshAll()
	}

	log.Println("[INFO] refreshd is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] refreshd stopped")
}
