package replica

import (
	"time"

	"github.com/KirkDiggler/birdie/internal/course"
	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/uptrace/bun"
)

// Row is the replicated representation of the application state.
// Scalar columns are pointers so that absent values can be told apart from zero.
type Row struct {
	bun.BaseModel `bun:"table:app_state" json:"-"`

	ID           string                `bun:"id,pk" json:"id"`
	Groups       []*models.Group       `bun:"groups,type:jsonb" json:"groups"`
	PlayerScores []*models.PlayerScore `bun:"player_scores,type:jsonb" json:"player_scores"`
	ScoreRecords []*models.ScoreRecord `bun:"score_records,type:jsonb" json:"score_records"`
	CurrentHole  *int                  `bun:"current_hole" json:"current_hole"`
	Count        *int                  `bun:"count" json:"count"`
	Name         *string               `bun:"name" json:"name"`
	DisplayName  *string               `bun:"display_name" json:"display_name"`
	UpdatedAt    time.Time             `bun:"updated_at,notnull" json:"updated_at"`
}

// EncodeRow builds the row replicating the state
func EncodeRow(id string, state *models.ApplicationState, now time.Time) *Row {
	s := state.Clone().Normalize()
	return &Row{
		ID:           id,
		Groups:       s.Groups,
		PlayerScores: s.PlayerScores,
		ScoreRecords: s.ScoreRecords,
		CurrentHole:  &s.CurrentHole,
		Count:        &s.Count,
		Name:         &s.Name,
		DisplayName:  &s.DisplayName,
		UpdatedAt:    now,
	}
}

// DecodeRow maps a row back to the application state.
// Absent fields fall back to the default state, and a missing or out of
// range current hole falls back to the first hole. Null entries are dropped
// and player totals are recomputed.
func DecodeRow(row *Row) *models.ApplicationState {
	state := models.NewApplicationState()
	if row == nil {
		return state
	}

	if row.Groups != nil {
		state.Groups = row.Groups
	}
	if row.PlayerScores != nil {
		state.PlayerScores = row.PlayerScores
	}
	if row.ScoreRecords != nil {
		state.ScoreRecords = row.ScoreRecords
	}
	if row.CurrentHole != nil && *row.CurrentHole >= 1 && *row.CurrentHole <= course.Holes {
		state.CurrentHole = *row.CurrentHole
	}
	if row.Count != nil {
		state.Count = *row.Count
	}
	if row.Name != nil {
		state.Name = *row.Name
	}
	if row.DisplayName != nil {
		state.DisplayName = *row.DisplayName
	}

	return state.Normalize()
}
