package ranking

import (
	"math"
	"sort"

	"github.com/KirkDiggler/birdie/internal/models"
)

const defaultHoles = 18

// service implements the Service interface
type service struct {
	holes int
}

// New creates a new ranking service
func New(cfg *Config) *service {
	holes := defaultHoles
	if cfg != nil && cfg.Holes > 0 {
		holes = cfg.Holes
	}

	return &service{
		holes: holes,
	}
}

// Rank orders the scores by the requested mode and assigns positional ranks
func (s *service) Rank(input *RankInput) (*RankOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Mode.IsValid() {
		return nil, ErrInvalidMode
	}

	if !input.Order.IsValid() {
		return nil, ErrInvalidOrder
	}

	ranked := make([]*models.RankedScore, 0, len(input.Scores))
	for _, ps := range input.Scores {
		if ps == nil {
			continue
		}
		ranked = append(ranked, &models.RankedScore{PlayerScore: *ps.Clone()})
	}

	desc := input.Order == models.SortOrderDesc
	byKey := func(a, b int) bool {
		if desc {
			return a > b
		}
		return a < b
	}

	// Stable sorts keep equal keys in input order
	switch input.Mode {
	case models.RankModeGross:
		sort.SliceStable(ranked, func(i, j int) bool {
			return byKey(ranked[i].TotalScore, ranked[j].TotalScore)
		})
	case models.RankModeNet:
		sort.SliceStable(ranked, func(i, j int) bool {
			return byKey(ranked[i].NetScore, ranked[j].NetScore)
		})
	case models.RankModeGroup:
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].GroupName != ranked[j].GroupName {
				return ranked[i].GroupName < ranked[j].GroupName
			}
			return byKey(ranked[i].NetScore, ranked[j].NetScore)
		})
	}

	for i, r := range ranked {
		r.Rank = i + 1
	}

	return &RankOutput{
		Rankings: ranked,
	}, nil
}

// GroupStats aggregates scores per group name
func (s *service) GroupStats(input *GroupStatsInput) (*GroupStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	groups := make([]*models.GroupStats, 0)
	byName := make(map[string]*models.GroupStats)

	for _, ps := range input.Scores {
		if ps == nil {
			continue
		}
		stats, ok := byName[ps.GroupName]
		if !ok {
			stats = &models.GroupStats{GroupName: ps.GroupName}
			byName[ps.GroupName] = stats
			groups = append(groups, stats)
		}

		stats.PlayerCount++
		stats.TotalScore += ps.TotalScore
		stats.TotalNet += ps.NetScore
	}

	for _, stats := range groups {
		stats.AverageScore = roundedAverage(stats.TotalScore, stats.PlayerCount)
		stats.AverageNet = roundedAverage(stats.TotalNet, stats.PlayerCount)
	}

	return &GroupStatsOutput{
		Groups: groups,
	}, nil
}

// Progress counts the players that have scored every hole
func (s *service) Progress(input *ProgressInput) (*ProgressOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	completed := 0
	for _, ps := range input.Scores {
		if ps == nil {
			continue
		}
		if ps.IsComplete(s.holes) {
			completed++
		}
	}

	return &ProgressOutput{
		Completed: completed,
		Total:     len(input.Scores),
	}, nil
}

// roundedAverage rounds halves towards positive infinity
func roundedAverage(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Floor(float64(sum)/float64(count) + 0.5))
}
