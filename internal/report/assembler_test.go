package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/league-charts/internal/league"
	"github.com/jstittsworth/league-charts/internal/stats"
)

func sampleResult() *stats.Result {
	alpha := league.Team{ID: 1, Abbrev: "ALP", Name: "Alpha", Index: 0}
	beta := league.Team{ID: 2, Abbrev: "BET", Name: "Beta", Index: 1}

	return &stats.Result{
		LeagueName:  "Test League",
		Season:      2026,
		CurrentWeek: 2,
		Weeks:       []int{1, 2},
		Teams:       []league.Team{alpha, beta},
		WeeklyScores: []stats.TeamSeries{
			{Team: alpha, Points: []stats.WeekPoints{{Week: 1, Points: 100}, {Week: 2, Points: 90}}},
			{Team: beta, Points: []stats.WeekPoints{{Week: 1, Points: 80}, {Week: 2, Points: 110}}},
		},
		Histogram: []stats.HistogramBin{{Label: "0-20", Low: 0, High: 20, Count: 2}},
	}
}

func TestAssembleTeamColors(t *testing.T) {
	report := Assemble(sampleResult())

	require.Len(t, report.Teams, 2)
	assert.Equal(t, chartColors[0], report.Teams[0].Color)
	assert.Equal(t, chartColors[1], report.Teams[1].Color)
	assert.Equal(t, "Alpha", report.Teams[0].Name)
}

func TestAssembleColorWrapsAroundPalette(t *testing.T) {
	result := sampleResult()
	result.Teams = append(result.Teams, league.Team{
		ID: 99, Abbrev: "WRP", Name: "Wrap", Index: len(chartColors),
	})

	report := Assemble(result)

	assert.Equal(t, chartColors[0], report.Teams[2].Color)
}

func TestAssembleCarriesMetadata(t *testing.T) {
	report := Assemble(sampleResult())

	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, "Test League", report.LeagueName)
	assert.Equal(t, 2026, report.Season)
	assert.Equal(t, 2, report.CurrentWeek)
	assert.Equal(t, []int{1, 2}, report.Weeks)
}

func TestAssembleDistinctRunIDs(t *testing.T) {
	first := Assemble(sampleResult())
	second := Assemble(sampleResult())

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRenderHTML(t *testing.T) {
	report := Assemble(sampleResult())

	var buf bytes.Buffer
	err := RenderHTML(&buf, report)
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(html), "<!DOCTYPE html>"))
	assert.Contains(t, html, "Test League")
	assert.Contains(t, html, "const REPORT = ")
	assert.Contains(t, html, `"weekly_scores"`)
	assert.Contains(t, html, report.RunID)
}
