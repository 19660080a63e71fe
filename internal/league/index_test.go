package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamIndexAssignsStableIndices(t *testing.T) {
	ix := NewTeamIndex()

	a := ix.Register(7, "AAA", "Team A")
	b := ix.Register(3, "BBB", "Team B")

	assert.Equal(t, 0, a.Index)
	assert.Equal(t, 1, b.Index)
	assert.Equal(t, 2, ix.Len())
}

func TestTeamIndexRegisterIsIdempotent(t *testing.T) {
	ix := NewTeamIndex()

	first := ix.Register(7, "AAA", "Team A")
	again := ix.Register(7, "ZZZ", "Renamed")

	// First registration wins; the index never shifts.
	assert.Equal(t, first, again)
	assert.Equal(t, 1, ix.Len())

	got, ok := ix.ByID(7)
	require.True(t, ok)
	assert.Equal(t, "AAA", got.Abbrev)
}

func TestTeamIndexByIDMissing(t *testing.T) {
	ix := NewTeamIndex()

	_, ok := ix.ByID(42)
	assert.False(t, ok)
}

func TestTeamIndexTeamsReturnsCopy(t *testing.T) {
	ix := NewTeamIndex()
	ix.Register(1, "AAA", "Team A")

	teams := ix.Teams()
	teams[0].Abbrev = "mutated"

	got, _ := ix.ByID(1)
	assert.Equal(t, "AAA", got.Abbrev)
}

func TestMatchupIsBye(t *testing.T) {
	full := Matchup{Home: &MatchupSide{TeamID: 1}, Away: &MatchupSide{TeamID: 2}}
	bye := Matchup{Home: &MatchupSide{TeamID: 1}}

	assert.False(t, full.IsBye())
	assert.True(t, bye.IsBye())
	assert.Len(t, full.Sides(), 2)
	assert.Len(t, bye.Sides(), 1)
}

func TestMatchupDecided(t *testing.T) {
	for _, result := range []MatchupResult{ResultHome, ResultAway, ResultTie} {
		assert.True(t, Matchup{Result: result}.Decided())
	}
	assert.False(t, Matchup{Result: ResultUndecided}.Decided())
	assert.False(t, Matchup{}.Decided())
}
