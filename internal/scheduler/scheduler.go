package scheduler

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"StockForecast/internal/catalog"
	"StockForecast/internal/collector"
	"StockForecast/internal/forecast"
	"StockForecast/internal/model"
	"StockForecast/internal/presenter"
	"StockForecast/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically refreshes forecasts for every catalog symbol.
type Scheduler struct {
	Cron         *cron.Cron
	Fetcher      collector.Fetcher
	Catalog      *catalog.Catalog
	Pipeline     *forecast.Pipeline
	Recorder     recorder.Recorder
	Out          io.Writer
	HistoryStart time.Time
	HorizonDays  int
	Ctx          context.Context
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, f collector.Fetcher, cat *catalog.Catalog, p *forecast.Pipeline, rec recorder.Recorder, out io.Writer, historyStart time.Time, horizonDays int) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Fetcher:      f,
		Catalog:      cat,
		Pipeline:     p,
		Recorder:     rec,
		Out:          out,
		HistoryStart: historyStart,
		HorizonDays:  horizonDays,
		Ctx:          ctx,
	}
}

// Register registers the periodic refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAllNow refreshes every catalog symbol immediately (for manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunAllNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running forecast refresh")
	for _, code := range s.Catalog.Codes() {
		if s.Ctx.Err() != nil {
			log.Println("[WARN] refresh aborted: context cancelled")
			return
		}
		res, err := s.RunSymbol(code)
		if err != nil {
			log.Printf("[ERROR] forecast %s: %v", code, err)
			fmt.Fprintln(s.Out, presenter.FormatFailure(code, err))
			continue
		}
		fmt.Fprintln(s.Out, presenter.FormatReport(res))
	}
}

// RunSymbol fetches history for one symbol, runs the pipeline, and records
// the outcome. nameOrCode may be a display name or a provider code.
func (s *Scheduler) RunSymbol(nameOrCode string) (*model.ForecastResult, error) {
	code, err := s.Catalog.Resolve(nameOrCode)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	rows, err := s.Fetcher.FetchDaily(code, s.HistoryStart, started)
	if err != nil {
		s.record(code, nil, started, err)
		return nil, fmt.Errorf("fetch %s: %w", code, err)
	}

	res, err := s.Pipeline.Run(s.Ctx, code, rows, s.HorizonDays)
	s.record(code, res, started, err)
	if err != nil {
		return res, err
	}
	return res, nil
}

func (s *Scheduler) record(code string, res *model.ForecastResult, started time.Time, runErr error) {
	evt := &recorder.RunEvent{
		Symbol:      code,
		HorizonDays: s.HorizonDays,
		Duration:    time.Since(started),
		Status:      "OK",
	}
	if res != nil {
		evt.Observations = res.Observed.Len()
		evt.LastObservedDate = res.Observed.LastDate()
		evt.LastClose = res.Observed.LastValue()
		evt.AIC = res.Stats.AIC
		if !res.Forecast.IsEmpty() {
			evt.FirstForecast = res.Forecast.Values[0]
			evt.LastForecast = res.Forecast.LastValue()
		}
	}
	if runErr != nil {
		evt.Status = "ERROR"
		evt.ErrorMsg = runErr.Error()
	}
	if err := s.Recorder.RecordRun(evt); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
