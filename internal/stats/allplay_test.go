package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/league-charts/internal/league"
)

func TestAllPlayRecords(t *testing.T) {
	index := indexFor(
		league.Team{ID: 1, Abbrev: "AAA"},
		league.Team{ID: 2, Abbrev: "BBB"},
		league.Team{ID: 3, Abbrev: "CCC"},
		league.Team{ID: 4, Abbrev: "DDD"},
	)
	weeks := []league.Week{
		week(1,
			versus(side(1, 100), side(2, 90)),
			versus(side(3, 80), side(4, 70)),
		),
	}

	records := AllPlayRecords(weeks, index)

	require.Len(t, records, 4)
	// Highest scorer beats all three others.
	assert.Equal(t, []int{3}, records[0].WeeklyWins)
	assert.Equal(t, []int{0}, records[0].WeeklyLosses)
	assert.Equal(t, 1.0, records[0].WinPct)
	// Lowest scorer loses to all three.
	assert.Equal(t, []int{0}, records[3].WeeklyWins)
	assert.Equal(t, []int{3}, records[3].WeeklyLosses)
	assert.Equal(t, 0.0, records[3].WinPct)
}

func TestAllPlayWinsEqualLosses(t *testing.T) {
	index := indexFor(
		league.Team{ID: 1, Abbrev: "AAA"},
		league.Team{ID: 2, Abbrev: "BBB"},
		league.Team{ID: 3, Abbrev: "CCC"},
		league.Team{ID: 4, Abbrev: "DDD"},
	)
	weeks := []league.Week{
		week(1,
			versus(side(1, 100), side(2, 90)),
			versus(side(3, 90), side(4, 70)),
		),
		week(2,
			versus(side(1, 60), side(3, 85)),
			versus(side(2, 85), side(4, 85)),
		),
	}

	records := AllPlayRecords(weeks, index)

	wins, losses := 0, 0
	for _, rec := range records {
		wins += rec.Wins
		losses += rec.Losses
	}
	// Ties count as neither, so totals still balance.
	assert.Equal(t, wins, losses)
}

func TestAllPlayNoGamesZeroPct(t *testing.T) {
	index := twoTeamIndex()

	records := AllPlayRecords(nil, index)

	for _, rec := range records {
		assert.Equal(t, 0.0, rec.WinPct)
		assert.Empty(t, rec.WeeklyWins)
	}
}
