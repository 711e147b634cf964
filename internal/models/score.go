package models

import "encoding/json"

// HoleScore records the strokes a player took on a single hole
type HoleScore struct {
	// HoleNumber is the 1-based position of the hole on the course
	HoleNumber int `json:"holeNumber"`

	// Strokes is the number of strokes taken
	Strokes int `json:"strokes"`

	// Par is the course par for the hole at the time of entry
	Par int `json:"par"`
}

// UnmarshalJSON also accepts the strokes under the older "score" name
func (h *HoleScore) UnmarshalJSON(data []byte) error {
	type plain HoleScore
	var doc struct {
		plain
		Score *int `json:"score"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*h = HoleScore(doc.plain)
	if h.Strokes == 0 && doc.Score != nil {
		h.Strokes = *doc.Score
	}
	return nil
}

// PlayerScore aggregates a player's hole scores and the totals derived from them.
// TotalScore, TotalPar and NetScore are recomputed by the ledger on every change
// and must never be edited independently of HoleScores.
type PlayerScore struct {
	// PlayerID is the ID of the player
	PlayerID string `json:"playerId"`

	// PlayerName is the player's name when the score was last updated
	PlayerName string `json:"playerName"`

	// GroupID is the ID of the player's group when the score was last updated
	GroupID string `json:"groupId"`

	// GroupName is the group's name when the score was last updated
	GroupName string `json:"groupName"`

	// HoleScores holds at most one entry per hole, ordered by hole number
	HoleScores []HoleScore `json:"holeScores"`

	// TotalScore is the gross score: the sum of strokes over played holes
	TotalScore int `json:"totalScore"`

	// TotalPar is the sum of par over played holes
	TotalPar int `json:"totalPar"`

	// NetScore is TotalScore minus TotalPar
	NetScore int `json:"netScore"`
}

// UnmarshalJSON also accepts the hole scores under the older "scores" name
func (s *PlayerScore) UnmarshalJSON(data []byte) error {
	type plain PlayerScore
	var doc struct {
		plain
		Scores []HoleScore `json:"scores"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*s = PlayerScore(doc.plain)
	if s.HoleScores == nil && doc.Scores != nil {
		s.HoleScores = doc.Scores
	}
	return nil
}

// Recalculate derives the totals from the hole scores
func (s *PlayerScore) Recalculate() {
	total, par := 0, 0
	for _, h := range s.HoleScores {
		total += h.Strokes
		par += h.Par
	}

	s.TotalScore = total
	s.TotalPar = par
	s.NetScore = total - par
}

// Hole returns the score entered for a hole, if any
func (s *PlayerScore) Hole(holeNumber int) (HoleScore, bool) {
	for _, h := range s.HoleScores {
		if h.HoleNumber == holeNumber {
			return h, true
		}
	}
	return HoleScore{}, false
}

// IsComplete reports whether every hole of the course has a score
func (s *PlayerScore) IsComplete(holes int) bool {
	return len(s.HoleScores) == holes
}

// Clone returns a deep copy of the player score
func (s *PlayerScore) Clone() *PlayerScore {
	if s == nil {
		return nil
	}
	c := *s
	c.HoleScores = append([]HoleScore{}, s.HoleScores...)
	return &c
}

// ClonePlayerScores returns a deep copy of a player score collection
func ClonePlayerScores(scores []*PlayerScore) []*PlayerScore {
	out := make([]*PlayerScore, 0, len(scores))
	for _, s := range scores {
		if s == nil {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}
