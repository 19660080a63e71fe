package stats

import (
	"github.com/jstittsworth/league-charts/internal/league"
)

// AllPlayRecord is how a team would have fared playing every other
// team's score each week instead of its single scheduled opponent.
type AllPlayRecord struct {
	Team         league.Team `json:"team"`
	WeeklyWins   []int       `json:"weekly_wins"`
	WeeklyLosses []int       `json:"weekly_losses"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	WinPct       float64     `json:"win_pct"`
}

// AllPlayRecords compares each team's weekly score against every other
// team that posted a score the same week. Ties count as neither a win
// nor a loss, so for any week total all-play wins equal total losses.
func AllPlayRecords(weeks []league.Week, index *league.TeamIndex) []AllPlayRecord {
	teams := index.Teams()
	recs := make(map[int]*AllPlayRecord, len(teams))
	for _, team := range teams {
		recs[team.ID] = &AllPlayRecord{Team: team}
	}

	for _, week := range weeks {
		scores := make(map[int]float64)
		played := make([]int, 0, len(teams))
		for _, matchup := range week.Matchups {
			for _, side := range matchup.Sides() {
				if _, seen := scores[side.TeamID]; !seen {
					played = append(played, side.TeamID)
				}
				scores[side.TeamID] = side.Score
			}
		}

		for _, teamID := range played {
			rec, ok := recs[teamID]
			if !ok {
				continue
			}
			wins, losses := 0, 0
			for _, opponentID := range played {
				if opponentID == teamID {
					continue
				}
				switch {
				case scores[teamID] > scores[opponentID]:
					wins++
				case scores[teamID] < scores[opponentID]:
					losses++
				}
			}
			rec.WeeklyWins = append(rec.WeeklyWins, wins)
			rec.WeeklyLosses = append(rec.WeeklyLosses, losses)
			rec.Wins += wins
			rec.Losses += losses
		}
	}

	out := make([]AllPlayRecord, 0, len(teams))
	for _, team := range teams {
		rec := recs[team.ID]
		if games := rec.Wins + rec.Losses; games > 0 {
			rec.WinPct = float64(rec.Wins) / float64(games)
		}
		out = append(out, *rec)
	}
	return out
}
