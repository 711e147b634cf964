package scorecard

import (
	"log/slog"

	"github.com/KirkDiggler/birdie/internal/common/clock"
	"github.com/KirkDiggler/birdie/internal/common/uuid"
	"github.com/KirkDiggler/birdie/internal/course"
	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/KirkDiggler/birdie/internal/repositories/score_records"
	"github.com/KirkDiggler/birdie/internal/services/ledger"
	"github.com/KirkDiggler/birdie/internal/services/messaging"
	"github.com/KirkDiggler/birdie/internal/services/ranking"
	"github.com/KirkDiggler/birdie/internal/services/roster"
	"github.com/KirkDiggler/birdie/internal/services/statesync"
)

// Config holds configuration for the scorecard service
type Config struct {
	Sync      statesync.Service
	Ledger    ledger.Service
	Ranking   ranking.Service
	Roster    roster.Service
	Messaging messaging.Service
	Course    *course.Course

	// ScoreRecords mirrors the free-form score records when set
	ScoreRecords score_records.Repository

	// Clock defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator creates score record IDs, defaults to random UUIDs
	UUIDGenerator uuid.UUID

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// CreateGroupInput contains parameters for creating a group
type CreateGroupInput struct {
	Name string
}

// CreateGroupOutput contains the created group
type CreateGroupOutput struct {
	Group *models.Group
}

// RemoveGroupInput contains parameters for removing a group
type RemoveGroupInput struct {
	GroupID string
}

// RemoveGroupOutput contains the removed group
type RemoveGroupOutput struct {
	Group *models.Group
}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	GroupID string
	Name    string
}

// AddPlayerOutput contains the added player
type AddPlayerOutput struct {
	Player *models.Player

	// GroupFull is advisory, the player is added either way
	GroupFull bool
}

// RemovePlayerInput contains parameters for removing a player
type RemovePlayerInput struct {
	PlayerID string
}

// RemovePlayerOutput contains the removed player
type RemovePlayerOutput struct {
	Player *models.Player
}

// EnterScoreInput contains parameters for recording a hole score
type EnterScoreInput struct {
	PlayerID string

	// HoleNumber defaults to the current hole when zero
	HoleNumber int

	// Strokes of zero or less mean nothing was entered
	Strokes int
}

// EnterScoreOutput contains the result of recording a hole score
type EnterScoreOutput struct {
	// Recorded is false when nothing was entered or the player is unknown
	Recorded bool

	Score      *models.PlayerScore
	HoleNumber int
	Result     messaging.HoleResult
	Label      string
	Message    string
}

// ScoreEntry is one player's strokes on a hole
type ScoreEntry struct {
	PlayerID string
	Strokes  int
}

// EnterHoleScoresInput contains the scores of several players for one hole
type EnterHoleScoresInput struct {
	// HoleNumber defaults to the current hole when zero
	HoleNumber int
	Entries    []ScoreEntry
}

// EnterHoleScoresOutput contains the result of recording several scores
type EnterHoleScoresOutput struct {
	HoleNumber int

	// Recorded lists the players whose score was recorded, in entry order
	Recorded []string

	// Skipped lists the players that were ignored
	Skipped []string
}

// GetPlayerScoreInput contains parameters for looking up a player's score
type GetPlayerScoreInput struct {
	PlayerID string
}

// GetPlayerScoreOutput contains the player's score aggregate
type GetPlayerScoreOutput struct {
	Score *models.PlayerScore
	Found bool
}

// SetCurrentHoleInput contains the hole to move to
type SetCurrentHoleInput struct {
	HoleNumber int
}

// SetCurrentHoleOutput contains the current hole
type SetCurrentHoleOutput struct {
	CurrentHole int
	Par         int
}

// GetStandingsInput contains the ranking parameters
type GetStandingsInput struct {
	// Mode defaults to net
	Mode models.RankMode

	// Order defaults to ascending
	Order models.SortOrder
}

// GetStandingsOutput contains the standings
type GetStandingsOutput struct {
	Mode     models.RankMode
	Order    models.SortOrder
	Rankings []*models.RankedScore

	// Badges holds the podium badge of the top three, keyed by player ID
	Badges map[string]messaging.Badge

	Groups      []*models.GroupStats
	Completed   int
	Total       int
	CurrentHole int
	Progress    string
}

// GetStateOutput contains the whole state
type GetStateOutput struct {
	State *models.ApplicationState
}

// GetStatusOutput describes the connection to the remote replica
type GetStatusOutput struct {
	Connected   bool
	Subscribed  bool
	CurrentHole int
	CourseName  string
}

// AddScoreRecordInput contains parameters for adding a score record
type AddScoreRecordInput struct {
	PlayerName string
	Score      int
	Notes      string
}

// AddScoreRecordOutput contains the added score record
type AddScoreRecordOutput struct {
	Record *models.ScoreRecord
}

// ListScoreRecordsInput contains parameters for listing score records
type ListScoreRecordsInput struct {
	// PlayerName restricts the list to one player when set
	PlayerName string
}

// ListScoreRecordsOutput contains the listed score records
type ListScoreRecordsOutput struct {
	Records []*models.ScoreRecord
}

// DeleteScoreRecordInput contains parameters for deleting a score record
type DeleteScoreRecordInput struct {
	RecordID string
}
