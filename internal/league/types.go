package league

// Team is a league franchise. Index is the 0-based order of first
// appearance and stays stable for a whole run so chart colors never
// shift between datasets.
type Team struct {
	ID     int    `json:"id"`
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	Index  int    `json:"index"`
}

// PlayerContribution is one lineup entry from a team's box score.
type PlayerContribution struct {
	Name    string  `json:"name"`
	Points  float64 `json:"points"`
	Starter bool    `json:"starter"`
}

// MatchupSide is one half of a matchup: a team, its total score for the
// week, and the lineup that produced it.
type MatchupSide struct {
	TeamID int                  `json:"team_id"`
	Score  float64              `json:"score"`
	Lineup []PlayerContribution `json:"lineup,omitempty"`
}

// MatchupResult is the provider's verdict on a matchup. Scores arrive
// before the verdict while a matchup period is in progress.
type MatchupResult string

const (
	ResultUndecided MatchupResult = "UNDECIDED"
	ResultHome      MatchupResult = "HOME"
	ResultAway      MatchupResult = "AWAY"
	ResultTie       MatchupResult = "TIE"
)

// Matchup is a single week's pairing. A bye has exactly one side set.
type Matchup struct {
	Home   *MatchupSide  `json:"home,omitempty"`
	Away   *MatchupSide  `json:"away,omitempty"`
	Result MatchupResult `json:"result,omitempty"`
}

// Decided reports whether the provider has ruled on the matchup. Only
// decided matchups produce a W/L/T outcome; scores of an in-progress
// matchup still count toward weekly totals.
func (m Matchup) Decided() bool {
	switch m.Result {
	case ResultHome, ResultAway, ResultTie:
		return true
	}
	return false
}

// IsBye reports whether the matchup is missing an opponent. Bye scores
// still count toward weekly totals but produce no margin or W/L/T.
func (m Matchup) IsBye() bool {
	return m.Home == nil || m.Away == nil
}

// Sides returns the present sides of the matchup, home first.
func (m Matchup) Sides() []*MatchupSide {
	sides := make([]*MatchupSide, 0, 2)
	if m.Home != nil {
		sides = append(sides, m.Home)
	}
	if m.Away != nil {
		sides = append(sides, m.Away)
	}
	return sides
}

// Week holds all matchups of one matchup period. Numbers are 1-based
// and contiguous for a run.
type Week struct {
	Number   int       `json:"number"`
	Matchups []Matchup `json:"matchups"`
}

// Metadata is the league-level information the source exposes beyond
// per-week matchups.
type Metadata struct {
	LeagueName  string `json:"league_name"`
	Season      int    `json:"season"`
	CurrentWeek int    `json:"current_week"`
	Teams       []Team `json:"teams"`
}

// Diagnostic records a malformed record that was skipped at the
// provider boundary instead of aborting the run.
type Diagnostic struct {
	Week    int    `json:"week"`
	Message string `json:"message"`
}
