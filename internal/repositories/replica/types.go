package replica

import (
	"errors"
	"time"

	"github.com/KirkDiggler/birdie/internal/models"
)

const (
	// DefaultStateID is the id of the single replicated row
	DefaultStateID = "1"

	// ChangesChannel is the name change notifications are published under
	ChangesChannel = "app_state_changes"
)

var (
	// ErrNotFound is returned when the replicated row does not exist
	ErrNotFound = errors.New("replicated state not found")

	// ErrNotConfigured is returned by every operation of the unconfigured replica
	ErrNotConfigured = errors.New("remote replica is not configured")
)

// FetchOutput contains the replicated state
type FetchOutput struct {
	State     *models.ApplicationState
	UpdatedAt time.Time
}

// UpsertInput contains the state to replicate
type UpsertInput struct {
	State *models.ApplicationState
}

// SubscribeInput defines the callbacks of a change feed
type SubscribeInput struct {
	// Handler receives every remote change as a full replacement state
	Handler func(state *models.ApplicationState)

	// OnClose is called when the feed ends without Unsubscribe being called
	OnClose func()
}
