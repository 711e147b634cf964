package models

// RankMode selects the key players are ranked by
type RankMode string

const (
	// RankModeGross ranks by total strokes
	RankModeGross RankMode = "gross"

	// RankModeNet ranks by strokes relative to par
	RankModeNet RankMode = "net"

	// RankModeGroup ranks by group name, then net score within a group
	RankModeGroup RankMode = "group"
)

// IsValid reports whether the mode is known
func (m RankMode) IsValid() bool {
	switch m {
	case RankModeGross, RankModeNet, RankModeGroup:
		return true
	}
	return false
}

// SortOrder is the direction of the ranking key
type SortOrder string

const (
	// SortOrderAsc puts the lowest key first
	SortOrderAsc SortOrder = "asc"

	// SortOrderDesc puts the highest key first
	SortOrderDesc SortOrder = "desc"
)

// IsValid reports whether the order is known
func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// RankedScore is a player score annotated with its position in a ranking
type RankedScore struct {
	PlayerScore

	// Rank is the 1-based position in the ranking. Ties get distinct ranks.
	Rank int `json:"rank"`
}

// GroupStats summarises the scores of one group
type GroupStats struct {
	// GroupName is the name the scores were recorded under
	GroupName string `json:"groupName"`

	// PlayerCount is the number of players with a score in the group
	PlayerCount int `json:"playerCount"`

	// TotalScore is the sum of gross scores
	TotalScore int `json:"totalScore"`

	// TotalNet is the sum of net scores
	TotalNet int `json:"totalNet"`

	// AverageScore is TotalScore / PlayerCount rounded to an integer
	AverageScore int `json:"averageScore"`

	// AverageNet is TotalNet / PlayerCount rounded to an integer
	AverageNet int `json:"averageNet"`
}
