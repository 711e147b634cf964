package ledger

// Service maintains the player -> PlayerScore mapping.
// It never mutates its inputs; callers replace their collection with the output.
type Service interface {
	// RecordScore upserts a single hole score for a player and recomputes the totals
	RecordScore(input *RecordScoreInput) (*RecordScoreOutput, error)

	// GetScore looks up the score aggregate for a player
	GetScore(input *GetScoreInput) (*GetScoreOutput, error)
}
