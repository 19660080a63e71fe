package league

import (
	"context"
	"errors"
)

// ErrSourceUnavailable marks a fatal provider failure: unreachable
// host, rejected credentials, or an unusable response. A run that hits
// it produces no partial output, since every dataset assumes a
// complete contiguous week range.
var ErrSourceUnavailable = errors.New("matchup source unavailable")

// MatchupSource yields a season's matchup records one week at a time.
// Implementations validate the provider's loose records at this
// boundary and report skipped entries as diagnostics rather than
// failing the whole week.
type MatchupSource interface {
	// GetMetadata returns league name, team roster, and the current
	// matchup period.
	GetMetadata(ctx context.Context) (*Metadata, error)

	// GetWeekMatchups returns the matchups of one week together with
	// diagnostics for any records it had to skip.
	GetWeekMatchups(ctx context.Context, week int) ([]Matchup, []Diagnostic, error)
}
