package models

import "time"

// ScoreRecord is a free-form score entry kept from the first version of the app.
// It is unrelated to per-hole scoring and is only carried for compatibility.
type ScoreRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// PlayerName is the name the score was recorded under
	PlayerName string `json:"playerName"`

	// Score is the recorded score
	Score int `json:"score"`

	// Date is when the score was recorded
	Date time.Time `json:"date"`

	// Notes holds optional free text
	Notes string `json:"notes,omitempty"`
}
