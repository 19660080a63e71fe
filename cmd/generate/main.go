package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/league-charts/internal/espn"
	"github.com/jstittsworth/league-charts/internal/report"
	"github.com/jstittsworth/league-charts/internal/services"
	"github.com/jstittsworth/league-charts/pkg/config"
)

// One-shot mode: fetch the season, aggregate, and write the static
// dashboard page. No Redis required; every run recomputes from
// scratch.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	espnClient := espn.NewClient(espn.Options{
		LeagueID:         cfg.LeagueID,
		Season:           cfg.Season,
		ESPNS2:           cfg.ESPNS2,
		SWID:             cfg.SWID,
		Timeout:          cfg.ExternalAPITimeout,
		RequestsPerSec:   cfg.ESPNRateLimit,
		BreakerThreshold: cfg.CircuitBreakerThreshold,
	}, nil, logrus.StandardLogger())

	reportService := services.NewReportService(espnClient, nil, logrus.StandardLogger(), cfg)

	rep, err := reportService.GetReport(context.Background(), true)
	if err != nil {
		logrus.Fatalf("Failed to build report: %v", err)
	}

	for _, diag := range rep.Diagnostics {
		logrus.Warnf("Week %d: %s", diag.Week, diag.Message)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logrus.Fatalf("Failed to create output directory: %v", err)
	}

	outPath := filepath.Join(cfg.OutputDir, cfg.OutputFilename)
	f, err := os.Create(outPath)
	if err != nil {
		logrus.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	if err := report.RenderHTML(f, rep); err != nil {
		logrus.Fatalf("Failed to render dashboard: %v", err)
	}

	logrus.Infof("Wrote %s (%d weeks, %d teams)", outPath, len(rep.Weeks), len(rep.Teams))
}
