package localcache

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/birdie/internal/course"
	"github.com/KirkDiggler/birdie/internal/models"
)

const (
	// scoreRecordsField is the current name of the flat score list
	scoreRecordsField = "scoreRecords"

	// legacyScoresField is the name the flat score list was stored under before
	legacyScoresField = "scores"
)

var (
	// ErrNotFound is returned when no state is cached
	ErrNotFound = errors.New("cached state not found")

	// ErrMalformed is returned when the cached document cannot be decoded
	ErrMalformed = errors.New("cached state is malformed")
)

// Encode serializes the state into a cache document
func Encode(state *models.ApplicationState) ([]byte, error) {
	if state == nil {
		return nil, errors.New("state cannot be nil")
	}

	data, err := json.Marshal(state.Clone().Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	return data, nil
}

// Decode parses a cache document, migrating the legacy layout first.
// Null entries are dropped and player totals are recomputed.
func Decode(data []byte) (*models.ApplicationState, error) {
	migrated, _, err := Migrate(data)
	if err != nil {
		return nil, err
	}

	var state models.ApplicationState
	if err := json.Unmarshal(migrated, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if state.CurrentHole < 1 || state.CurrentHole > course.Holes {
		state.CurrentHole = models.DefaultHole
	}

	return state.Normalize(), nil
}

// Migrate moves a legacy flat score list under its current field name.
// Documents that already carry the current field are returned unchanged.
func Migrate(data []byte) ([]byte, bool, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if doc == nil {
		return nil, false, fmt.Errorf("%w: document is null", ErrMalformed)
	}

	legacy, hasLegacy := doc[legacyScoresField]
	_, hasCurrent := doc[scoreRecordsField]
	if !hasLegacy || hasCurrent {
		return data, false, nil
	}

	doc[scoreRecordsField] = legacy
	delete(doc, legacyScoresField)

	migrated, err := json.Marshal(doc)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal migrated state: %w", err)
	}

	return migrated, true, nil
}
