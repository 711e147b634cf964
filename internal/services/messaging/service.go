package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	r := config.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

var holeResultLabels = map[HoleResult]string{
	HoleResultHoleInOne:   "Hole-in-one",
	HoleResultAlbatross:   "Albatross",
	HoleResultEagle:       "Eagle",
	HoleResultBirdie:      "Birdie",
	HoleResultPar:         "Par",
	HoleResultBogey:       "Bogey",
	HoleResultDoubleBogey: "Double bogey",
	HoleResultTripleBogey: "Triple bogey",
}

// GetHoleResult names a hole score relative to par
func (s *service) GetHoleResult(ctx context.Context, input *GetHoleResultInput) (*GetHoleResultOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Strokes <= 0 || input.Par <= 0 {
		return nil, fmt.Errorf("strokes and par must be positive, got %d and %d", input.Strokes, input.Par)
	}

	diff := input.Strokes - input.Par
	result := holeResult(input.Strokes, diff)

	label, ok := holeResultLabels[result]
	if !ok {
		label = fmt.Sprintf("%+d", diff)
	}

	return &GetHoleResultOutput{
		Result:   result,
		Label:    label,
		Diff:     diff,
		Relation: relation(diff),
	}, nil
}

func holeResult(strokes, diff int) HoleResult {
	if strokes == 1 {
		return HoleResultHoleInOne
	}

	switch diff {
	case -3:
		return HoleResultAlbatross
	case -2:
		return HoleResultEagle
	case -1:
		return HoleResultBirdie
	case 0:
		return HoleResultPar
	case 1:
		return HoleResultBogey
	case 2:
		return HoleResultDoubleBogey
	case 3:
		return HoleResultTripleBogey
	}

	if diff < 0 {
		return HoleResultUnder
	}
	return HoleResultOver
}

func relation(diff int) Relation {
	switch {
	case diff < 0:
		return RelationUnder
	case diff > 0:
		return RelationOver
	default:
		return RelationEven
	}
}

// GetScoreEntryMessage returns a message for a recorded hole score
func (s *service) GetScoreEntryMessage(ctx context.Context, input *GetScoreEntryMessageInput) (*GetScoreEntryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	result, err := s.GetHoleResult(ctx, &GetHoleResultInput{
		Strokes: input.Strokes,
		Par:     input.Par,
	})
	if err != nil {
		return nil, err
	}

	var messages []string
	var tone MessageTone

	switch result.Relation {
	case RelationUnder:
		tone = ToneCelebration
		messages = []string{
			"%s goes %s on hole %d. Take a bow!",
			"%s with a %s on hole %d. The rest of the group is taking notes.",
			"That's a %[2]s for %[1]s on hole %[3]d. Somebody frame that scorecard.",
		}
	case RelationEven:
		tone = ToneNeutral
		messages = []string{
			"%s makes %s on hole %d. Steady golf.",
			"%s cards a %s on hole %d. Nothing wrong with that.",
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			"%s takes a %s on hole %d. Shake it off.",
			"%s with a %s on hole %d. Next hole is a fresh start.",
			"A %[2]s for %[1]s on hole %[3]d. The course bites back sometimes.",
		}
	}

	message := fmt.Sprintf(messages[s.rand.Intn(len(messages))], input.PlayerName, result.Label, input.HoleNumber)

	return &GetScoreEntryMessageOutput{
		Title:   fmt.Sprintf("Hole %d: %s", input.HoleNumber, result.Label),
		Message: message,
		Tone:    tone,
		Result:  result.Result,
		Label:   result.Label,
	}, nil
}

// GetRankBadge returns the podium badge for a rank
func (s *service) GetRankBadge(ctx context.Context, input *GetRankBadgeInput) (*GetRankBadgeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	badge := BadgeNone
	switch input.Rank {
	case 1:
		badge = BadgeGold
	case 2:
		badge = BadgeSilver
	case 3:
		badge = BadgeBronze
	}

	return &GetRankBadgeOutput{
		Badge: badge,
	}, nil
}

// GetProgressMessage returns a message describing how far the round has come
func (s *service) GetProgressMessage(ctx context.Context, input *GetProgressMessageInput) (*GetProgressMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch {
	case input.Total == 0:
		message = fmt.Sprintf("Playing hole %d. No scores yet.", input.CurrentHole)
	case input.Completed == input.Total:
		message = fmt.Sprintf("All %d players have finished. Time for the 19th hole!", input.Total)
	default:
		message = fmt.Sprintf("Playing hole %d. %d of %d players have finished.", input.CurrentHole, input.Completed, input.Total)
	}

	return &GetProgressMessageOutput{
		Message: message,
	}, nil
}
