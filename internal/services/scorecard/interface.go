package scorecard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/birdie/internal/services/scorecard Service

import (
	"context"
	"io"
)

// Service is the entry point for every scorecard action.
// It combines the roster, ledger and ranking with the synchronized state.
type Service interface {
	// CreateGroup adds an empty playing group
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error)

	// RemoveGroup deletes a group and its players. Their scores are kept.
	RemoveGroup(ctx context.Context, input *RemoveGroupInput) (*RemoveGroupOutput, error)

	// AddPlayer adds a player to a group
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer deletes a player. Their scores are kept.
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// EnterScore records one hole score
	EnterScore(ctx context.Context, input *EnterScoreInput) (*EnterScoreOutput, error)

	// EnterHoleScores records the scores of several players for one hole
	EnterHoleScores(ctx context.Context, input *EnterHoleScoresInput) (*EnterHoleScoresOutput, error)

	// GetPlayerScore looks up a player's score aggregate
	GetPlayerScore(ctx context.Context, input *GetPlayerScoreInput) (*GetPlayerScoreOutput, error)

	// SetCurrentHole moves play to another hole
	SetCurrentHole(ctx context.Context, input *SetCurrentHoleInput) (*SetCurrentHoleOutput, error)

	// GetStandings ranks the players and summarises the groups
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// GetState returns a copy of the whole state
	GetState(ctx context.Context) (*GetStateOutput, error)

	// GetStatus reports whether the remote replica is connected
	GetStatus(ctx context.Context) (*GetStatusOutput, error)

	// AddScoreRecord appends a free-form score record
	AddScoreRecord(ctx context.Context, input *AddScoreRecordInput) (*AddScoreRecordOutput, error)

	// ListScoreRecords lists the free-form score records ordered by date
	ListScoreRecords(ctx context.Context, input *ListScoreRecordsInput) (*ListScoreRecordsOutput, error)

	// DeleteScoreRecord removes a free-form score record
	DeleteScoreRecord(ctx context.Context, input *DeleteScoreRecordInput) error

	// ExportStandings writes the standings as an XLSX workbook
	ExportStandings(ctx context.Context, w io.Writer, input *GetStandingsInput) error
}
