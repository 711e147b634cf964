package score_records

import (
	"time"

	"github.com/KirkDiggler/birdie/internal/models"
)

// AddScoreRecordInput contains parameters for adding a score record
type AddScoreRecordInput struct {
	Record *models.ScoreRecord
}

// DeleteScoreRecordInput contains parameters for deleting a score record
type DeleteScoreRecordInput struct {
	RecordID string
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

// scoreDocument is the stored shape of a score record
type scoreDocument struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes,omitempty"`
}

func toDocument(record *models.ScoreRecord) *scoreDocument {
	return &scoreDocument{
		ID:         record.ID,
		PlayerName: record.PlayerName,
		Score:      record.Score,
		Date:       record.Date,
		Notes:      record.Notes,
	}
}

func (d *scoreDocument) toModel() *models.ScoreRecord {
	return &models.ScoreRecord{
		ID:         d.ID,
		PlayerName: d.PlayerName,
		Score:      d.Score,
		Date:       d.Date,
		Notes:      d.Notes,
	}
}
