package stats

import (
	"github.com/jstittsworth/league-charts/internal/league"
)

// Test fixtures shared by the aggregator tests.

func side(teamID int, score float64, lineup ...league.PlayerContribution) *league.MatchupSide {
	return &league.MatchupSide{
		TeamID: teamID,
		Score:  score,
		Lineup: lineup,
	}
}

func starter(name string, points float64) league.PlayerContribution {
	return league.PlayerContribution{Name: name, Points: points, Starter: true}
}

func benchPlayer(name string, points float64) league.PlayerContribution {
	return league.PlayerContribution{Name: name, Points: points, Starter: false}
}

// versus builds a completed matchup; the verdict follows the scores the
// way the provider reports it once a period closes. A nil side is a
// bye and carries no verdict.
func versus(home, away *league.MatchupSide) league.Matchup {
	m := league.Matchup{Home: home, Away: away}
	if home == nil || away == nil {
		return m
	}
	switch {
	case home.Score > away.Score:
		m.Result = league.ResultHome
	case home.Score < away.Score:
		m.Result = league.ResultAway
	default:
		m.Result = league.ResultTie
	}
	return m
}

// inProgress builds a matchup the provider has not ruled on yet.
func inProgress(home, away *league.MatchupSide) league.Matchup {
	return league.Matchup{Home: home, Away: away, Result: league.ResultUndecided}
}

func week(num int, matchups ...league.Matchup) league.Week {
	return league.Week{Number: num, Matchups: matchups}
}

func indexFor(teams ...league.Team) *league.TeamIndex {
	ix := league.NewTeamIndex()
	for _, t := range teams {
		ix.Register(t.ID, t.Abbrev, t.Name)
	}
	return ix
}

func twoTeamIndex() *league.TeamIndex {
	return indexFor(
		league.Team{ID: 1, Abbrev: "AAA", Name: "Team A"},
		league.Team{ID: 2, Abbrev: "BBB", Name: "Team B"},
	)
}
