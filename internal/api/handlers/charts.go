package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/league-charts/internal/league"
	"github.com/jstittsworth/league-charts/internal/report"
	"github.com/jstittsworth/league-charts/internal/services"
	"github.com/jstittsworth/league-charts/pkg/utils"
)

type ChartsHandler struct {
	reports *services.ReportService
}

func NewChartsHandler(reports *services.ReportService) *ChartsHandler {
	return &ChartsHandler{
		reports: reports,
	}
}

// getReport fetches the current report, translating pipeline failures
// into the response envelope.
func (h *ChartsHandler) getReport(c *gin.Context) (*report.Report, bool) {
	rep, err := h.reports.GetReport(c.Request.Context(), false)
	if err != nil {
		if errors.Is(err, league.ErrSourceUnavailable) {
			utils.SendUnavailable(c, "League data provider is unavailable")
		} else {
			utils.SendInternalError(c, err.Error())
		}
		return nil, false
	}
	return rep, true
}

func (h *ChartsHandler) meta(rep *report.Report) *utils.Meta {
	return &utils.Meta{
		GeneratedAt: rep.GeneratedAt.Format(time.RFC3339),
		Weeks:       len(rep.Weeks),
		Teams:       len(rep.Teams),
	}
}

// GetReport returns the full report with every dataset.
func (h *ChartsHandler) GetReport(c *gin.Context) {
	rep, ok := h.getReport(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, rep)
}

// RefreshReport rebuilds the report, bypassing the cache.
func (h *ChartsHandler) RefreshReport(c *gin.Context) {
	rep, err := h.reports.GetReport(c.Request.Context(), true)
	if err != nil {
		if errors.Is(err, league.ErrSourceUnavailable) {
			utils.SendUnavailable(c, "League data provider is unavailable")
		} else {
			utils.SendInternalError(c, err.Error())
		}
		return
	}
	utils.SendSuccessWithMeta(c, gin.H{"run_id": rep.RunID}, h.meta(rep))
}

// GetWeeklyScores returns per-team weekly and cumulative scoring
// series.
func (h *ChartsHandler) GetWeeklyScores(c *gin.Context) {
	rep, ok := h.getReport(c)
	if !ok {
		return
	}
	utils.SendSuccessWithMeta(c, gin.H{
		"weekly":     rep.WeeklyScores,
		"cumulative": rep.CumulativePoints,
	}, h.meta(rep))
}

// GetStandings returns the week-by-week standings progression.
func (h *ChartsHandler) GetStandings(c *gin.Context) {
	rep, ok := h.getReport(c)
	if !ok {
		return
	}
	utils.SendSuccessWithMeta(c, rep.Standings, h.meta(rep))
}

// GetContributions returns top-scorer breakdowns: per-team top-K plus
// the league-wide weekly and season podiums.
func (h *ChartsHandler) GetContributions(c *gin.Context) {
	rep, ok := h.getReport(c)
	if !ok {
		return
	}
	utils.SendSuccessWithMeta(c, gin.H{
		"per_team":         rep.Contributions,
		"top_teams":        rep.TopTeams,
		"weekly_podium":    rep.TopPlayersWeekly,
		"top_performances": rep.TopPerformances,
	}, h.meta(rep))
}

// GetMargins returns the win-margin histogram and summary statistics.
func (h *ChartsHandler) GetMargins(c *gin.Context) {
	rep, ok := h.getReport(c)
	if !ok {
		return
	}
	utils.SendSuccessWithMeta(c, gin.H{
		"histogram": rep.Histogram,
		"summary":   rep.MarginSummary,
	}, h.meta(rep))
}

// GetAllPlay returns the all-play records.
func (h *ChartsHandler) GetAllPlay(c *gin.Context) {
	rep, ok := h.getReport(c)
	if !ok {
		return
	}
	utils.SendSuccessWithMeta(c, rep.AllPlay, h.meta(rep))
}

// Dashboard renders the static HTML page with the report embedded.
func (h *ChartsHandler) Dashboard(c *gin.Context) {
	rep, ok := h.getReport(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := report.RenderHTML(c.Writer, rep); err != nil {
		_ = c.Error(err)
	}
}
