package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StockForecast/internal/cache"
	"StockForecast/internal/catalog"
	"StockForecast/internal/collector"
	"StockForecast/internal/config"
	"StockForecast/internal/forecast"
	"StockForecast/internal/prepare"
	"StockForecast/internal/presenter"
	"StockForecast/internal/recorder"
	"StockForecast/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockForecast starting...")

	symbolFlag := flag.String("symbol", "", "forecast a single stock (display name or code) and exit")
	yearsFlag := flag.Int("years", 0, "years of prediction (1-10), overrides config")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *yearsFlag != 0 {
		cfg.Forecast.Years = *yearsFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher with explicit fetch cache
	ttl, _ := cfg.CacheTTL()
	var fetcher collector.Fetcher = collector.NewYahooFetcher(cfg.Proxy)
	fetcher = collector.NewCachedFetcher(fetcher, cache.NewMemoryCache(ttl))
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init pipeline
	preparer := &prepare.Preparer{Difference: cfg.Model.Difference}
	pipeline := forecast.NewPipeline(preparer, cfg.Model.Order)
	log.Printf("[INFO] model order: %s, horizon: %d days", cfg.Model.Order, cfg.HorizonDays())

	cat := catalog.New(cfg.Stocks)
	startDate, _ := cfg.StartTime()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, fetcher, cat, pipeline, rec, os.Stdout, startDate, cfg.HorizonDays())

	// One-shot mode: forecast a single stock and exit.
	if *symbolFlag != "" {
		res, err := sched.RunSymbol(*symbolFlag)
		if err != nil {
			fmt.Println(presenter.FormatFailure(*symbolFlag, err))
			os.Exit(1)
		}
		fmt.Println(presenter.FormatReport(res))
		return
	}

	// Service mode: periodic refresh of all catalog symbols.
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing all symbols now")
		go sched.RunAllNow()
	}

	log.Println("[INFO] StockForecast is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockForecast stopped")
}
