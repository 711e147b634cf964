package ranking

import "github.com/KirkDiggler/birdie/internal/models"

// Config holds configuration for the ranking service
type Config struct {
	// Holes is the number of holes a complete card has. Defaults to 18.
	Holes int
}

// RankInput contains parameters for ranking scores
type RankInput struct {
	// Scores is the player score collection to rank
	Scores []*models.PlayerScore

	// Mode selects the ranking key
	Mode models.RankMode

	// Order selects the direction of the key. Group names are always ascending.
	Order models.SortOrder
}

// RankOutput contains the ranked scores
type RankOutput struct {
	// Rankings is a permutation of the input with ranks 1..N
	Rankings []*models.RankedScore
}

// GroupStatsInput contains parameters for aggregating group scores
type GroupStatsInput struct {
	// Scores is the player score collection to aggregate
	Scores []*models.PlayerScore
}

// GroupStatsOutput contains per-group aggregates in first-appearance order
type GroupStatsOutput struct {
	Groups []*models.GroupStats
}

// ProgressInput contains parameters for counting completed cards
type ProgressInput struct {
	// Scores is the player score collection to inspect
	Scores []*models.PlayerScore
}

// ProgressOutput contains the completion count
type ProgressOutput struct {
	// Completed is the number of players with a score on every hole
	Completed int

	// Total is the number of players with at least one score
	Total int
}
