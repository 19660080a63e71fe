package league

// TeamIndex assigns every team a stable 0-based index in order of first
// appearance. Registration is idempotent: the first abbrev/name seen
// for an id wins.
type TeamIndex struct {
	teams []Team
	byID  map[int]int
}

func NewTeamIndex() *TeamIndex {
	return &TeamIndex{
		byID: make(map[int]int),
	}
}

// Register adds a team if it has not been seen yet and returns its
// indexed form.
func (ix *TeamIndex) Register(id int, abbrev, name string) Team {
	if pos, ok := ix.byID[id]; ok {
		return ix.teams[pos]
	}
	team := Team{
		ID:     id,
		Abbrev: abbrev,
		Name:   name,
		Index:  len(ix.teams),
	}
	ix.byID[id] = team.Index
	ix.teams = append(ix.teams, team)
	return team
}

// ByID looks up a registered team.
func (ix *TeamIndex) ByID(id int) (Team, bool) {
	pos, ok := ix.byID[id]
	if !ok {
		return Team{}, false
	}
	return ix.teams[pos], true
}

// Teams returns all registered teams in index order.
func (ix *TeamIndex) Teams() []Team {
	out := make([]Team, len(ix.teams))
	copy(out, ix.teams)
	return out
}

// Len returns the number of registered teams.
func (ix *TeamIndex) Len() int {
	return len(ix.teams)
}
