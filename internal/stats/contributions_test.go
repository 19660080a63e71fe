package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/league-charts/internal/league"
)

func TestTopContributionsSelectsTopK(t *testing.T) {
	index := twoTeamIndex()
	weeks := []league.Week{
		week(1, versus(
			side(1, 65, starter("Alpha", 30), starter("Bravo", 25), starter("Charlie", 10)),
			side(2, 40, starter("Delta", 40)),
		)),
	}

	series := TopContributions(weeks, index, 2)

	require.Len(t, series, 2)
	require.Len(t, series[0].Weeks, 1)
	assert.Equal(t, []PlayerPoints{{Name: "Alpha", Points: 30}, {Name: "Bravo", Points: 25}}, series[0].Weeks[0].Players)
	assert.Equal(t, []PlayerPoints{{Name: "Delta", Points: 40}}, series[1].Weeks[0].Players)
}

func TestTopContributionsFewerThanKNoPadding(t *testing.T) {
	index := twoTeamIndex()
	weeks := []league.Week{
		week(1, versus(
			side(1, 30, starter("Alpha", 30)),
			side(2, 0),
		)),
	}

	series := TopContributions(weeks, index, 5)

	assert.Len(t, series[0].Weeks[0].Players, 1)
	assert.Empty(t, series[1].Weeks[0].Players)
}

func TestTopContributionsExcludesBenchAndZeroScores(t *testing.T) {
	index := twoTeamIndex()
	weeks := []league.Week{
		week(1, versus(
			side(1, 55,
				starter("Alpha", 30),
				benchPlayer("Bench Star", 50),
				starter("Scoreless", 0),
				starter("Bravo", 25),
			),
			side(2, 10, starter("Delta", 10)),
		)),
	}

	series := TopContributions(weeks, index, 5)

	assert.Equal(t, []PlayerPoints{{Name: "Alpha", Points: 30}, {Name: "Bravo", Points: 25}}, series[0].Weeks[0].Players)
}

func TestTopContributionsTiesKeepLineupOrder(t *testing.T) {
	index := twoTeamIndex()
	weeks := []league.Week{
		week(1, versus(
			side(1, 60, starter("First", 20), starter("Second", 20), starter("Third", 20)),
			side(2, 10, starter("Delta", 10)),
		)),
	}

	series := TopContributions(weeks, index, 2)

	// Stable sort: equal points preserve lineup order across runs.
	assert.Equal(t, []PlayerPoints{{Name: "First", Points: 20}, {Name: "Second", Points: 20}}, series[0].Weeks[0].Players)
}

func TestTopTeamByWeek(t *testing.T) {
	index := twoTeamIndex()
	weeks := []league.Week{
		week(1, versus(side(1, 100), side(2, 90))),
		week(2, versus(side(1, 80), side(2, 95))),
	}

	top := TopTeamByWeek(weeks, index)

	require.Len(t, top, 2)
	assert.Equal(t, "AAA", top[0].Team.Abbrev)
	assert.Equal(t, 100.0, top[0].Points)
	assert.Equal(t, "BBB", top[1].Team.Abbrev)
}

func TestTopPlayersByWeek(t *testing.T) {
	index := twoTeamIndex()
	weeks := []league.Week{
		week(1, versus(
			side(1, 55, starter("Alpha", 30), starter("Bravo", 25)),
			side(2, 70, starter("Delta", 40), starter("Echo", 30)),
		)),
	}

	top := TopPlayersByWeek(weeks, index, 3)

	require.Len(t, top, 1)
	require.Len(t, top[0].Players, 3)
	assert.Equal(t, "Delta", top[0].Players[0].Name)
	// Equal points resolve by encounter order: home lineup first.
	assert.Equal(t, "Alpha", top[0].Players[1].Name)
	assert.Equal(t, "Echo", top[0].Players[2].Name)
}

func TestTopPerformancesAcrossSeason(t *testing.T) {
	index := twoTeamIndex()
	weeks := []league.Week{
		week(1, versus(side(1, 30, starter("Alpha", 30)), side(2, 20, starter("Delta", 20)))),
		week(2, versus(side(1, 25, starter("Alpha", 25)), side(2, 45, starter("Delta", 45)))),
	}

	top := TopPerformances(weeks, index, 2)

	require.Len(t, top, 2)
	assert.Equal(t, PlayerPerformance{Name: "Delta", Team: index.Teams()[1], Week: 2, Points: 45}, top[0])
	assert.Equal(t, PlayerPerformance{Name: "Alpha", Team: index.Teams()[0], Week: 1, Points: 30}, top[1])
}
