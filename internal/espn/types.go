package espn

// ESPN Fantasy v3 response structures. Only the fields the pipeline
// consumes are mapped; everything else in the payload is ignored.

type leagueResponse struct {
	ID       int `json:"id"`
	Settings struct {
		Name string `json:"name"`
	} `json:"settings"`
	Status struct {
		CurrentMatchupPeriod int `json:"currentMatchupPeriod"`
		LatestScoringPeriod  int `json:"latestScoringPeriod"`
	} `json:"status"`
	Teams    []wireTeam    `json:"teams"`
	Schedule []wireMatchup `json:"schedule"`
}

type wireTeam struct {
	ID       int    `json:"id"`
	Abbrev   string `json:"abbrev"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Nickname string `json:"nickname"`
}

// displayName handles both payload generations: newer seasons carry a
// single name field, older ones split location and nickname.
func (t wireTeam) displayName() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Location != "" || t.Nickname != "" {
		name := t.Location
		if name != "" && t.Nickname != "" {
			name += " "
		}
		return name + t.Nickname
	}
	return t.Abbrev
}

type wireMatchup struct {
	ID              int       `json:"id"`
	MatchupPeriodID int       `json:"matchupPeriodId"`
	Winner          string    `json:"winner"`
	Home            *wireSide `json:"home"`
	Away            *wireSide `json:"away"`
}

type wireSide struct {
	TeamID                        int         `json:"teamId"`
	TotalPoints                   float64     `json:"totalPoints"`
	RosterForCurrentScoringPeriod *wireRoster `json:"rosterForCurrentScoringPeriod"`
	RosterForMatchupPeriod        *wireRoster `json:"rosterForMatchupPeriod"`
}

// roster prefers the matchup-period roster when the API sends both.
func (s *wireSide) roster() *wireRoster {
	if s.RosterForMatchupPeriod != nil && len(s.RosterForMatchupPeriod.Entries) > 0 {
		return s.RosterForMatchupPeriod
	}
	return s.RosterForCurrentScoringPeriod
}

type wireRoster struct {
	Entries []wireRosterEntry `json:"entries"`
}

type wireRosterEntry struct {
	LineupSlotID    int `json:"lineupSlotId"`
	PlayerPoolEntry struct {
		AppliedStatTotal float64 `json:"appliedStatTotal"`
		Player           struct {
			ID       int    `json:"id"`
			FullName string `json:"fullName"`
		} `json:"player"`
	} `json:"playerPoolEntry"`
}

// Basketball lineup slots that do not count as starters.
const (
	slotBench          = 12
	slotInjuredReserve = 13
)

func (e wireRosterEntry) isStarter() bool {
	return e.LineupSlotID != slotBench && e.LineupSlotID != slotInjuredReserve
}
