package stats

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/league-charts/internal/league"
)

// Number of league-wide top players tracked per week and for the
// season, matching the dashboard's podium layout.
const topPerformerCount = 3

// Options shape the derived datasets.
type Options struct {
	TopPlayersPerTeam int
	HistogramBins     int
}

// Pipeline folds a season's matchup records into every chart dataset
// in a single ordered pass. It holds no state between runs.
type Pipeline struct {
	source league.MatchupSource
	logger *logrus.Logger
	opts   Options
}

func NewPipeline(source league.MatchupSource, logger *logrus.Logger, opts Options) *Pipeline {
	if opts.TopPlayersPerTeam < 1 {
		opts.TopPlayersPerTeam = 1
	}
	if opts.HistogramBins < 1 {
		opts.HistogramBins = 1
	}
	return &Pipeline{
		source: source,
		logger: logger,
		opts:   opts,
	}
}

// Result is the immutable output of one pipeline run. Team order
// follows the team index everywhere, weeks ascend, so identical input
// yields identical output.
type Result struct {
	LeagueName  string        `json:"league_name"`
	Season      int           `json:"season"`
	CurrentWeek int           `json:"current_week"`
	Teams       []league.Team `json:"teams"`
	Weeks       []int         `json:"weeks"`

	WeeklyScores     []TeamSeries         `json:"weekly_scores"`
	CumulativePoints []TeamSeries         `json:"cumulative_points"`
	Standings        []StandingsSeries    `json:"standings"`
	Contributions    []ContributionSeries `json:"contributions"`
	TopTeams         []WeekTopTeam        `json:"top_teams"`
	TopPlayersWeekly []WeekTopPlayers     `json:"top_players_weekly"`
	TopPerformances  []PlayerPerformance  `json:"top_performances"`
	Histogram        []HistogramBin       `json:"histogram"`
	MarginSummary    MarginSummary        `json:"margin_summary"`
	AllPlay          []AllPlayRecord      `json:"all_play"`

	Diagnostics []league.Diagnostic `json:"diagnostics,omitempty"`
}

// Run fetches weeks 1..currentWeek in order and derives every dataset.
// A failed week fetch aborts the whole run; partial charts would
// misstate ranks and totals. A season with zero completed weeks
// produces empty datasets, not an error.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	meta, err := p.source.GetMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch league metadata: %w", err)
	}

	index := league.NewTeamIndex()
	for _, team := range meta.Teams {
		index.Register(team.ID, team.Abbrev, team.Name)
	}

	var (
		weeks       []league.Week
		diagnostics []league.Diagnostic
	)

	for weekNum := 1; weekNum <= meta.CurrentWeek; weekNum++ {
		p.logger.Debugf("Processing week %d", weekNum)

		matchups, diags, err := p.source.GetWeekMatchups(ctx, weekNum)
		if err != nil {
			return nil, fmt.Errorf("fetch week %d: %w", weekNum, err)
		}
		diagnostics = append(diagnostics, diags...)

		// Teams missing from the roster metadata still get a stable
		// index in order of first appearance.
		for _, matchup := range matchups {
			for _, side := range matchup.Sides() {
				if _, ok := index.ByID(side.TeamID); !ok {
					placeholder := fmt.Sprintf("T%d", side.TeamID)
					index.Register(side.TeamID, placeholder, placeholder)
					diagnostics = append(diagnostics, league.Diagnostic{
						Week:    weekNum,
						Message: fmt.Sprintf("team %d appears in matchups but not in league roster", side.TeamID),
					})
				}
			}
		}

		weeks = append(weeks, league.Week{Number: weekNum, Matchups: matchups})
	}

	weekNumbers := make([]int, 0, len(weeks))
	for _, week := range weeks {
		weekNumbers = append(weekNumbers, week.Number)
	}

	weekly := WeeklyScores(weeks, index)
	margins := Margins(weeks)

	result := &Result{
		LeagueName:  meta.LeagueName,
		Season:      meta.Season,
		CurrentWeek: meta.CurrentWeek,
		Teams:       index.Teams(),
		Weeks:       weekNumbers,

		WeeklyScores:     weekly,
		CumulativePoints: CumulativePoints(weekly),
		Standings:        StandingsProgression(weeks, index),
		Contributions:    TopContributions(weeks, index, p.opts.TopPlayersPerTeam),
		TopTeams:         TopTeamByWeek(weeks, index),
		TopPlayersWeekly: TopPlayersByWeek(weeks, index, topPerformerCount),
		TopPerformances:  TopPerformances(weeks, index, topPerformerCount),
		Histogram:        Histogram(margins, p.opts.HistogramBins),
		MarginSummary:    SummarizeMargins(margins),
		AllPlay:          AllPlayRecords(weeks, index),

		Diagnostics: diagnostics,
	}

	p.logger.Infof("Aggregated %d weeks for %d teams (%d margins, %d diagnostics)",
		len(weeks), index.Len(), len(margins), len(diagnostics))

	return result, nil
}
