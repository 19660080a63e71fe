package stats

import (
	"sort"

	"github.com/jstittsworth/league-charts/internal/league"
)

// PlayerPoints is one player's scoring line for a single week.
type PlayerPoints struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

// WeekContributions carries a team's top scorers for one week, points
// descending, at most K entries.
type WeekContributions struct {
	Week    int            `json:"week"`
	Players []PlayerPoints `json:"players"`
}

// ContributionSeries is a team's top-scorer breakdown across the
// season.
type ContributionSeries struct {
	Team  league.Team         `json:"team"`
	Weeks []WeekContributions `json:"weeks"`
}

// TopContributions selects, per team per week, the top-K starters by
// points. The sort is stable so equal scores keep their lineup order,
// which keeps output identical across runs. Lineups with fewer than K
// eligible players yield fewer entries, never placeholders.
func TopContributions(weeks []league.Week, index *league.TeamIndex, k int) []ContributionSeries {
	byTeam := make(map[int][]WeekContributions, index.Len())

	for _, week := range weeks {
		for _, matchup := range week.Matchups {
			for _, side := range matchup.Sides() {
				players := topStarters(side.Lineup, k)
				byTeam[side.TeamID] = append(byTeam[side.TeamID], WeekContributions{
					Week:    week.Number,
					Players: players,
				})
			}
		}
	}

	series := make([]ContributionSeries, 0, index.Len())
	for _, team := range index.Teams() {
		series = append(series, ContributionSeries{
			Team:  team,
			Weeks: byTeam[team.ID],
		})
	}
	return series
}

// topStarters filters a lineup to scoring starters and keeps the top k.
func topStarters(lineup []league.PlayerContribution, k int) []PlayerPoints {
	eligible := make([]PlayerPoints, 0, len(lineup))
	for _, entry := range lineup {
		if entry.Starter && entry.Points > 0 {
			eligible = append(eligible, PlayerPoints{
				Name:   entry.Name,
				Points: entry.Points,
			})
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Points > eligible[j].Points
	})

	if len(eligible) > k {
		eligible = eligible[:k]
	}
	return eligible
}

// WeekTopTeam is the highest scorer of one week.
type WeekTopTeam struct {
	Week   int         `json:"week"`
	Team   league.Team `json:"team"`
	Points float64     `json:"points"`
}

// TopTeamByWeek finds the team with the most points each week. Weeks
// without any recorded score are skipped.
func TopTeamByWeek(weeks []league.Week, index *league.TeamIndex) []WeekTopTeam {
	out := make([]WeekTopTeam, 0, len(weeks))

	for _, week := range weeks {
		var best *league.MatchupSide
		for _, matchup := range week.Matchups {
			for _, side := range matchup.Sides() {
				if best == nil || side.Score > best.Score {
					best = side
				}
			}
		}
		if best == nil {
			continue
		}
		if team, ok := index.ByID(best.TeamID); ok {
			out = append(out, WeekTopTeam{
				Week:   week.Number,
				Team:   team,
				Points: best.Score,
			})
		}
	}
	return out
}

// PlayerPerformance is a single starter's scoring line tagged with
// team and week.
type PlayerPerformance struct {
	Name   string      `json:"name"`
	Team   league.Team `json:"team"`
	Week   int         `json:"week"`
	Points float64     `json:"points"`
}

// WeekTopPlayers carries the league-wide top starters of one week.
type WeekTopPlayers struct {
	Week    int                 `json:"week"`
	Players []PlayerPerformance `json:"players"`
}

// TopPlayersByWeek picks the n best starter performances across all
// teams for each week.
func TopPlayersByWeek(weeks []league.Week, index *league.TeamIndex, n int) []WeekTopPlayers {
	out := make([]WeekTopPlayers, 0, len(weeks))

	for _, week := range weeks {
		performances := collectPerformances(week, index)
		if len(performances) > n {
			performances = performances[:n]
		}
		out = append(out, WeekTopPlayers{
			Week:    week.Number,
			Players: performances,
		})
	}
	return out
}

// TopPerformances picks the n best single-week starter performances of
// the whole season.
func TopPerformances(weeks []league.Week, index *league.TeamIndex, n int) []PlayerPerformance {
	var all []PlayerPerformance
	for _, week := range weeks {
		all = append(all, collectPerformances(week, index)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Points > all[j].Points
	})

	if len(all) > n {
		all = all[:n]
	}
	return all
}

// collectPerformances gathers one week's scoring starters, points
// descending, stable on encounter order.
func collectPerformances(week league.Week, index *league.TeamIndex) []PlayerPerformance {
	var performances []PlayerPerformance

	for _, matchup := range week.Matchups {
		for _, side := range matchup.Sides() {
			team, ok := index.ByID(side.TeamID)
			if !ok {
				continue
			}
			for _, entry := range side.Lineup {
				if entry.Starter && entry.Points > 0 {
					performances = append(performances, PlayerPerformance{
						Name:   entry.Name,
						Team:   team,
						Week:   week.Number,
						Points: entry.Points,
					})
				}
			}
		}
	}

	sort.SliceStable(performances, func(i, j int) bool {
		return performances[i].Points > performances[j].Points
	})
	return performances
}
