package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/league-charts/internal/league"
	"github.com/jstittsworth/league-charts/internal/report"
	"github.com/jstittsworth/league-charts/internal/stats"
	"github.com/jstittsworth/league-charts/pkg/config"
)

// ReportService owns report construction: it runs the aggregation
// pipeline against the matchup source and caches the assembled report.
type ReportService struct {
	source league.MatchupSource
	cache  *CacheService
	logger *logrus.Logger
	cfg    *config.Config
}

// NewReportService creates a new report service. cache may be nil in
// one-shot mode.
func NewReportService(source league.MatchupSource, cache *CacheService, logger *logrus.Logger, cfg *config.Config) *ReportService {
	return &ReportService{
		source: source,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

// GetReport returns the current report, serving the cached copy unless
// forceRefresh is set. A fresh build that fails leaves any cached
// report untouched; no partial report is ever stored.
func (s *ReportService) GetReport(ctx context.Context, forceRefresh bool) (*report.Report, error) {
	cacheKey := ReportCacheKey(s.cfg.LeagueID, s.cfg.Season)

	if !forceRefresh && s.cache != nil {
		var cached report.Report
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	pipeline := stats.NewPipeline(s.source, s.logger, stats.Options{
		TopPlayersPerTeam: s.cfg.TopPlayersPerTeam,
		HistogramBins:     s.cfg.HistogramBins,
	})

	result, err := pipeline.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline run failed: %w", err)
	}

	assembled := report.Assemble(result)

	if s.cache != nil {
		if err := s.cache.SetWithRetry(ctx, cacheKey, assembled, 1*time.Hour, 3); err != nil {
			s.logger.Warnf("Failed to cache report: %v", err)
		}
	}

	return assembled, nil
}
