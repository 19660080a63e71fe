package stats

import (
	"github.com/jstittsworth/league-charts/internal/league"
)

// WeekPoints is one chart point of a team's scoring series.
type WeekPoints struct {
	Week   int     `json:"week"`
	Points float64 `json:"points"`
}

// TeamSeries is a team's ordered per-week scoring totals. A team has
// one entry per week it played; byes keep the lone recorded score and
// absent weeks are omitted, never zero-filled.
type TeamSeries struct {
	Team   league.Team  `json:"team"`
	Points []WeekPoints `json:"points"`
}

// WeeklyScores projects the season's matchups into per-team scoring
// series, ordered by team index for stable chart colors.
func WeeklyScores(weeks []league.Week, index *league.TeamIndex) []TeamSeries {
	byTeam := make(map[int][]WeekPoints, index.Len())

	for _, week := range weeks {
		for _, matchup := range week.Matchups {
			for _, side := range matchup.Sides() {
				byTeam[side.TeamID] = append(byTeam[side.TeamID], WeekPoints{
					Week:   week.Number,
					Points: side.Score,
				})
			}
		}
	}

	series := make([]TeamSeries, 0, index.Len())
	for _, team := range index.Teams() {
		series = append(series, TeamSeries{
			Team:   team,
			Points: byTeam[team.ID],
		})
	}
	return series
}

// CumulativePoints folds each scoring series into running totals, one
// entry per played week.
func CumulativePoints(series []TeamSeries) []TeamSeries {
	out := make([]TeamSeries, 0, len(series))
	for _, s := range series {
		running := 0.0
		points := make([]WeekPoints, 0, len(s.Points))
		for _, wp := range s.Points {
			running += wp.Points
			points = append(points, WeekPoints{Week: wp.Week, Points: running})
		}
		out = append(out, TeamSeries{Team: s.Team, Points: points})
	}
	return out
}
