package ranking

// Service derives standings from player scores. It holds no state.
type Service interface {
	// Rank orders the scores by the requested mode and assigns positional ranks
	Rank(input *RankInput) (*RankOutput, error)

	// GroupStats aggregates scores per group name
	GroupStats(input *GroupStatsInput) (*GroupStatsOutput, error)

	// Progress counts the players that have scored every hole
	Progress(input *ProgressInput) (*ProgressOutput, error)
}
