package ledger

import (
	"github.com/KirkDiggler/birdie/internal/course"
	"github.com/KirkDiggler/birdie/internal/models"
)

// Config holds configuration for the ledger service
type Config struct {
	// Course supplies the par for each hole
	Course *course.Course
}

// RecordScoreInput contains parameters for recording a hole score
type RecordScoreInput struct {
	// Groups is the current roster, used to resolve the player and group names
	Groups []*models.Group

	// Scores is the current player score collection
	Scores []*models.PlayerScore

	// PlayerID is the player the score belongs to
	PlayerID string

	// HoleNumber is the 1-based hole number
	HoleNumber int

	// Strokes is the number of strokes taken
	Strokes int
}

// RecordScoreOutput contains the result of recording a hole score
type RecordScoreOutput struct {
	// Scores is the updated player score collection
	Scores []*models.PlayerScore

	// Score is the updated aggregate for the player. Nil when nothing was recorded.
	Score *models.PlayerScore

	// Recorded is false when the player could not be resolved
	Recorded bool

	// Replaced is true when an existing entry for the hole was overwritten
	Replaced bool
}

// GetScoreInput contains parameters for looking up a player's score
type GetScoreInput struct {
	// Scores is the player score collection to search
	Scores []*models.PlayerScore

	// PlayerID is the player to look up
	PlayerID string
}

// GetScoreOutput contains the result of a score lookup
type GetScoreOutput struct {
	// Score is a copy of the player's aggregate
	Score *models.PlayerScore

	// Found is false when the player has no scores yet
	Found bool
}
