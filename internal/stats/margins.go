package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jstittsworth/league-charts/internal/league"
)

// HistogramBin is a [Low, High) slice of the margin range with the
// number of matchups that landed in it. The final bin of a histogram
// is closed on both ends so the maximum margin is counted exactly
// once.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
	Label string  `json:"label"`
}

// MarginSummary describes the margin distribution alongside the
// histogram. All values are finite; an empty season yields zeros.
type MarginSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Margins computes |home - away| for every two-sided matchup, in week
// then matchup order. Byes have no margin, and a matchup where either
// side has not scored yet is still in progress and is excluded.
func Margins(weeks []league.Week) []float64 {
	var margins []float64
	for _, week := range weeks {
		for _, matchup := range week.Matchups {
			if matchup.IsBye() {
				continue
			}
			if matchup.Home.Score <= 0 || matchup.Away.Score <= 0 {
				continue
			}
			margin := matchup.Home.Score - matchup.Away.Score
			if margin < 0 {
				margin = -margin
			}
			margins = append(margins, margin)
		}
	}
	return margins
}

// Histogram bins margins into numBins equal-width ranges spanning
// [0, max(margins)]. Zero margins produce an empty bin set rather than
// a division by zero.
func Histogram(margins []float64, numBins int) []HistogramBin {
	if len(margins) == 0 || numBins < 1 {
		return []HistogramBin{}
	}

	maxMargin := floats.Max(margins)
	binWidth := maxMargin / float64(numBins)

	bins := make([]HistogramBin, 0, numBins)
	for i := 0; i < numBins; i++ {
		low := float64(i) * binWidth
		high := low + binWidth
		last := i == numBins-1

		count := 0
		for _, m := range margins {
			if m >= low && (m < high || (last && m <= high)) {
				count++
			}
		}

		bins = append(bins, HistogramBin{
			Low:   low,
			High:  high,
			Count: count,
			Label: fmt.Sprintf("%.0f-%.0f", low, high),
		})
	}
	return bins
}

// SummarizeMargins computes descriptive statistics over the margin
// list. The standard deviation of fewer than two samples is reported
// as zero to keep the output free of NaN.
func SummarizeMargins(margins []float64) MarginSummary {
	if len(margins) == 0 {
		return MarginSummary{}
	}

	summary := MarginSummary{
		Count: len(margins),
		Mean:  stat.Mean(margins, nil),
		Min:   floats.Min(margins),
		Max:   floats.Max(margins),
	}
	if len(margins) > 1 {
		summary.StdDev = stat.StdDev(margins, nil)
	}
	return summary
}
