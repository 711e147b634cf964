package statesync

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/birdie/internal/services/statesync Service

import (
	"context"

	"github.com/KirkDiggler/birdie/internal/models"
)

// Service owns the application state.
// It loads the state from the local cache, reconciles it with the remote
// replica once at startup, persists every change and folds in remote changes.
type Service interface {
	// Start runs the one-time startup reconciliation
	Start(ctx context.Context) (*StartOutput, error)

	// State returns a copy of the current state
	State() *models.ApplicationState

	// Update commits a change to the state
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Status reports the connection state
	Status() *StatusOutput

	// Close stops the change feed and waits for in-flight pushes
	Close(ctx context.Context) error
}
