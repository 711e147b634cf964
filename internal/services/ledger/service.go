package ledger

import (
	"sort"

	"github.com/KirkDiggler/birdie/internal/course"
	"github.com/KirkDiggler/birdie/internal/models"
)

// service implements the Service interface
type service struct {
	course *course.Course
}

// New creates a new ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Course == nil {
		return nil, ErrNilCourse
	}

	return &service{
		course: cfg.Course,
	}, nil
}

// RecordScore upserts a single hole score for a player and recomputes the totals
func (s *service) RecordScore(input *RecordScoreInput) (*RecordScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	par, ok := s.course.Par(input.HoleNumber)
	if !ok {
		return nil, ErrInvalidHole
	}

	if input.Strokes <= 0 {
		return nil, ErrInvalidStrokes
	}

	scores := models.ClonePlayerScores(input.Scores)

	// Unknown players are ignored rather than rejected
	player, group, found := models.FindPlayer(input.Groups, input.PlayerID)
	if !found {
		return &RecordScoreOutput{
			Scores: scores,
		}, nil
	}

	var score *models.PlayerScore
	for _, ps := range scores {
		if ps.PlayerID == player.ID {
			score = ps
			break
		}
	}

	if score == nil {
		score = &models.PlayerScore{
			PlayerID:   player.ID,
			HoleScores: []models.HoleScore{},
		}
		scores = append(scores, score)
	}

	// Names are a snapshot as of this entry
	score.PlayerName = player.Name
	score.GroupID = group.ID
	score.GroupName = group.Name

	replaced := upsertHole(score, models.HoleScore{
		HoleNumber: input.HoleNumber,
		Strokes:    input.Strokes,
		Par:        par,
	})
	score.Recalculate()

	return &RecordScoreOutput{
		Scores:   scores,
		Score:    score.Clone(),
		Recorded: true,
		Replaced: replaced,
	}, nil
}

// GetScore looks up the score aggregate for a player
func (s *service) GetScore(input *GetScoreInput) (*GetScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	for _, ps := range input.Scores {
		if ps.PlayerID == input.PlayerID {
			return &GetScoreOutput{
				Score: ps.Clone(),
				Found: true,
			}, nil
		}
	}

	return &GetScoreOutput{}, nil
}

// upsertHole replaces the entry for the hole or adds it, keeping hole order
func upsertHole(score *models.PlayerScore, hole models.HoleScore) bool {
	for i := range score.HoleScores {
		if score.HoleScores[i].HoleNumber == hole.HoleNumber {
			score.HoleScores[i] = hole
			return true
		}
	}

	score.HoleScores = append(score.HoleScores, hole)
	sort.Slice(score.HoleScores, func(i, j int) bool {
		return score.HoleScores[i].HoleNumber < score.HoleScores[j].HoleNumber
	})
	return false
}
