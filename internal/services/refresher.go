package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReportRefresher rebuilds the report on a schedule so server requests
// mostly hit the cached copy.
type ReportRefresher struct {
	reports   *ReportService
	logger    *logrus.Logger
	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
	interval  time.Duration
}

// NewReportRefresher creates a new report refresher.
func NewReportRefresher(reports *ReportService, logger *logrus.Logger, interval time.Duration) *ReportRefresher {
	return &ReportRefresher{
		reports:  reports,
		logger:   logger,
		cron:     cron.New(),
		interval: interval,
	}
}

// Start begins the scheduled refresh and warms the report once in the
// background.
func (r *ReportRefresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return fmt.Errorf("report refresher is already running")
	}

	schedule := fmt.Sprintf("@every %s", r.interval.String())
	if _, err := r.cron.AddFunc(schedule, r.refresh); err != nil {
		return fmt.Errorf("failed to schedule report refresh: %w", err)
	}

	r.cron.Start()
	r.isRunning = true

	// Warm the cache so the first request does not pay for a full
	// season fetch.
	go r.refresh()

	r.logger.Info("Report refresher started")
	return nil
}

// Stop halts the scheduled refresh.
func (r *ReportRefresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}

	ctx := r.cron.Stop()
	<-ctx.Done()

	r.isRunning = false
	r.logger.Info("Report refresher stopped")
}

func (r *ReportRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	if _, err := r.reports.GetReport(ctx, true); err != nil {
		r.logger.Errorf("Scheduled report refresh failed: %v", err)
		return
	}
	r.logger.Infof("Report refreshed in %v", time.Since(start).Round(time.Millisecond))
}
