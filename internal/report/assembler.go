package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/jstittsworth/league-charts/internal/league"
	"github.com/jstittsworth/league-charts/internal/stats"
)

// Chart.js palette, assigned by team index so a team keeps its color
// across every chart.
var chartColors = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
	"#FF9F40", "#E7E9ED", "#C9CBCF", "#7ACBF5", "#F67019",
	"#00A950", "#58595B", "#8549BA", "#B2912F", "#D13F8E",
}

// TeamInfo is a roster entry with its assigned chart color.
type TeamInfo struct {
	league.Team
	Color string `json:"color"`
}

// Report is the display artifact of one pipeline run: league metadata
// plus every chart-ready dataset. It is immutable once assembled.
type Report struct {
	RunID       string     `json:"run_id"`
	GeneratedAt time.Time  `json:"generated_at"`
	LeagueName  string     `json:"league_name"`
	Season      int        `json:"season"`
	CurrentWeek int        `json:"current_week"`
	Weeks       []int      `json:"weeks"`
	Teams       []TeamInfo `json:"teams"`

	WeeklyScores     []stats.TeamSeries         `json:"weekly_scores"`
	CumulativePoints []stats.TeamSeries         `json:"cumulative_points"`
	Standings        []stats.StandingsSeries    `json:"standings"`
	Contributions    []stats.ContributionSeries `json:"contributions"`
	TopTeams         []stats.WeekTopTeam        `json:"top_teams"`
	TopPlayersWeekly []stats.WeekTopPlayers     `json:"top_players_weekly"`
	TopPerformances  []stats.PlayerPerformance  `json:"top_performances"`
	Histogram        []stats.HistogramBin       `json:"histogram"`
	MarginSummary    stats.MarginSummary        `json:"margin_summary"`
	AllPlay          []stats.AllPlayRecord      `json:"all_play"`

	Diagnostics []league.Diagnostic `json:"diagnostics,omitempty"`
}

// Assemble wraps a pipeline result with run metadata and team colors.
func Assemble(result *stats.Result) *Report {
	teams := make([]TeamInfo, 0, len(result.Teams))
	for _, team := range result.Teams {
		teams = append(teams, TeamInfo{
			Team:  team,
			Color: chartColors[team.Index%len(chartColors)],
		})
	}

	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		LeagueName:  result.LeagueName,
		Season:      result.Season,
		CurrentWeek: result.CurrentWeek,
		Weeks:       result.Weeks,
		Teams:       teams,

		WeeklyScores:     result.WeeklyScores,
		CumulativePoints: result.CumulativePoints,
		Standings:        result.Standings,
		Contributions:    result.Contributions,
		TopTeams:         result.TopTeams,
		TopPlayersWeekly: result.TopPlayersWeekly,
		TopPerformances:  result.TopPerformances,
		Histogram:        result.Histogram,
		MarginSummary:    result.MarginSummary,
		AllPlay:          result.AllPlay,

		Diagnostics: result.Diagnostics,
	}
}
