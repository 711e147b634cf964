package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetHoleResult names a hole score relative to par
	GetHoleResult(ctx context.Context, input *GetHoleResultInput) (*GetHoleResultOutput, error)

	// GetScoreEntryMessage returns a message for a recorded hole score
	GetScoreEntryMessage(ctx context.Context, input *GetScoreEntryMessageInput) (*GetScoreEntryMessageOutput, error)

	// GetRankBadge returns the podium badge for a rank
	GetRankBadge(ctx context.Context, input *GetRankBadgeInput) (*GetRankBadgeOutput, error)

	// GetProgressMessage returns a message describing how far the round has come
	GetProgressMessage(ctx context.Context, input *GetProgressMessageInput) (*GetProgressMessageOutput, error)
}
