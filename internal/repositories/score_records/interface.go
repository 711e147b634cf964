package score_records

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/birdie/internal/repositories/score_records Repository

import (
	"context"
)

// Repository defines the interface for the legacy scores collection
type Repository interface {
	// AddScoreRecord adds a score record to the collection
	AddScoreRecord(ctx context.Context, input *AddScoreRecordInput) error

	// DeleteScoreRecord removes a score record from the collection
	DeleteScoreRecord(ctx context.Context, input *DeleteScoreRecordInput) error

	// ListScoreRecords retrieves the score records ordered by date
	ListScoreRecords(ctx context.Context, input *ListScoreRecordsInput) (*ListScoreRecordsOutput, error)
}
