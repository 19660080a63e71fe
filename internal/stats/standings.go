package stats

import (
	"sort"

	"github.com/jstittsworth/league-charts/internal/league"
)

// WeekRank is one chart point of a team's standings progression.
// Rank 1 is best.
type WeekRank struct {
	Week int `json:"week"`
	Rank int `json:"rank"`
}

// StandingsSeries is a team's week-by-week rank plus its final record.
// Ranks cover every processed week even if the team had a bye.
type StandingsSeries struct {
	Team      league.Team `json:"team"`
	Ranks     []WeekRank  `json:"ranks"`
	Wins      int         `json:"wins"`
	Losses    int         `json:"losses"`
	Ties      int         `json:"ties"`
	PointsFor float64     `json:"points_for"`
}

// record is the running accumulator carried across the week loop.
type record struct {
	teamID    int
	wins      int
	losses    int
	ties      int
	pointsFor float64
}

// StandingsProgression derives each team's cumulative W/L/T record and
// per-week rank. Ranking sorts by wins descending with cumulative
// points-for as the tie-break; teams equal on both keys share a rank.
// Week w depends only on weeks 1..w, so the fold must run in week
// order.
func StandingsProgression(weeks []league.Week, index *league.TeamIndex) []StandingsSeries {
	teams := index.Teams()
	records := make(map[int]*record, len(teams))
	for _, team := range teams {
		records[team.ID] = &record{teamID: team.ID}
	}

	ranksByTeam := make(map[int][]WeekRank, len(teams))

	for _, week := range weeks {
		for _, matchup := range week.Matchups {
			applyMatchup(records, matchup)
		}

		for teamID, rank := range rankWeek(records, teams) {
			ranksByTeam[teamID] = append(ranksByTeam[teamID], WeekRank{
				Week: week.Number,
				Rank: rank,
			})
		}
	}

	series := make([]StandingsSeries, 0, len(teams))
	for _, team := range teams {
		rec := records[team.ID]
		series = append(series, StandingsSeries{
			Team:      team,
			Ranks:     ranksByTeam[team.ID],
			Wins:      rec.wins,
			Losses:    rec.losses,
			Ties:      rec.ties,
			PointsFor: rec.pointsFor,
		})
	}
	return series
}

// applyMatchup folds one matchup into the running records. Byes add
// points-for only; no W/L/T is recorded without an opponent. Outcomes
// follow the provider's verdict, not a raw score comparison, so an
// in-progress matchup never shows up as a 0-0 tie.
func applyMatchup(records map[int]*record, matchup league.Matchup) {
	for _, side := range matchup.Sides() {
		if rec, ok := records[side.TeamID]; ok {
			rec.pointsFor += side.Score
		}
	}

	if matchup.IsBye() || !matchup.Decided() {
		return
	}

	home, away := records[matchup.Home.TeamID], records[matchup.Away.TeamID]
	if home == nil || away == nil {
		return
	}

	switch matchup.Result {
	case league.ResultHome:
		home.wins++
		away.losses++
	case league.ResultAway:
		away.wins++
		home.losses++
	case league.ResultTie:
		home.ties++
		away.ties++
	}
}

// rankWeek assigns 1-based competition ranks for the current running
// records: equal (wins, pointsFor) share a rank, the next distinct
// record resumes at its list position.
func rankWeek(records map[int]*record, teams []league.Team) map[int]int {
	ordered := make([]*record, 0, len(teams))
	for _, team := range teams {
		ordered = append(ordered, records[team.ID])
	}

	// Stable so that true ties keep team-index order internally; the
	// shared rank value is what the charts display.
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].wins != ordered[j].wins {
			return ordered[i].wins > ordered[j].wins
		}
		return ordered[i].pointsFor > ordered[j].pointsFor
	})

	ranks := make(map[int]int, len(ordered))
	for pos, rec := range ordered {
		rank := pos + 1
		if pos > 0 {
			prev := ordered[pos-1]
			if prev.wins == rec.wins && prev.pointsFor == rec.pointsFor {
				rank = ranks[prev.teamID]
			}
		}
		ranks[rec.teamID] = rank
	}
	return ranks
}
