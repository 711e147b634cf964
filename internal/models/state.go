package models

// DefaultHole is the hole a new session starts on
const DefaultHole = 1

// ApplicationState is the whole persisted state of the scorecard.
// It is owned by the state synchronizer; every other component works on copies.
type ApplicationState struct {
	// Groups contains the playing groups and their players
	Groups []*Group `json:"groups"`

	// PlayerScores contains one aggregate per player that has entered a score
	PlayerScores []*PlayerScore `json:"playerScores"`

	// ScoreRecords is the legacy flat score list
	ScoreRecords []*ScoreRecord `json:"scoreRecords"`

	// CurrentHole is the hole currently being played (1-based)
	CurrentHole int `json:"currentHole"`

	// Count is a legacy counter
	Count int `json:"count"`

	// Name is a legacy name field
	Name string `json:"name"`

	// DisplayName is a legacy display name field
	DisplayName string `json:"displayName"`
}

// NewApplicationState returns the empty default state
func NewApplicationState() *ApplicationState {
	return &ApplicationState{
		Groups:       []*Group{},
		PlayerScores: []*PlayerScore{},
		ScoreRecords: []*ScoreRecord{},
		CurrentHole:  DefaultHole,
	}
}

// Normalize replaces nil collections with empty ones, drops null entries
// and recomputes every player's totals from the hole scores
func (s *ApplicationState) Normalize() *ApplicationState {
	groups := make([]*Group, 0, len(s.Groups))
	for _, g := range s.Groups {
		if g == nil {
			continue
		}
		players := make([]*Player, 0, len(g.Players))
		for _, p := range g.Players {
			if p != nil {
				players = append(players, p)
			}
		}
		g.Players = players
		groups = append(groups, g)
	}
	s.Groups = groups

	scores := make([]*PlayerScore, 0, len(s.PlayerScores))
	for _, ps := range s.PlayerScores {
		if ps == nil {
			continue
		}
		ps.Recalculate()
		scores = append(scores, ps)
	}
	s.PlayerScores = scores

	records := make([]*ScoreRecord, 0, len(s.ScoreRecords))
	for _, r := range s.ScoreRecords {
		if r != nil {
			records = append(records, r)
		}
	}
	s.ScoreRecords = records

	return s
}

// Clone returns a deep copy of the state
func (s *ApplicationState) Clone() *ApplicationState {
	if s == nil {
		return nil
	}
	c := &ApplicationState{
		Groups:       CloneGroups(s.Groups),
		PlayerScores: ClonePlayerScores(s.PlayerScores),
		ScoreRecords: make([]*ScoreRecord, 0, len(s.ScoreRecords)),
		CurrentHole:  s.CurrentHole,
		Count:        s.Count,
		Name:         s.Name,
		DisplayName:  s.DisplayName,
	}
	for _, r := range s.ScoreRecords {
		if r == nil {
			continue
		}
		rc := *r
		c.ScoreRecords = append(c.ScoreRecords, &rc)
	}
	return c
}

// IsLegacyEmpty reports whether no score records, count or display name are set.
// Groups, player scores, the current hole and the legacy name are not inspected.
// It decides whether a remote snapshot may replace local state at startup.
func (s *ApplicationState) IsLegacyEmpty() bool {
	return len(s.ScoreRecords) == 0 && s.Count == 0 && s.DisplayName == ""
}

// IsDefault reports whether the state equals the empty default state
func (s *ApplicationState) IsDefault() bool {
	return len(s.Groups) == 0 &&
		len(s.PlayerScores) == 0 &&
		s.IsLegacyEmpty() &&
		s.CurrentHole == DefaultHole &&
		s.Name == ""
}

// FindPlayerScore returns the score aggregate for a player, if any
func (s *ApplicationState) FindPlayerScore(playerID string) (*PlayerScore, bool) {
	for _, ps := range s.PlayerScores {
		if ps.PlayerID == playerID {
			return ps, true
		}
	}
	return nil, false
}
