package localcache

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/birdie/internal/repositories/localcache Repository

import (
	"context"

	"github.com/KirkDiggler/birdie/internal/models"
)

// Repository defines the interface for the local state cache.
// The whole application state is stored as one document under one fixed key.
type Repository interface {
	// Load retrieves the cached state.
	// It returns ErrNotFound when nothing is cached and ErrMalformed when the
	// cached document cannot be decoded.
	Load(ctx context.Context) (*models.ApplicationState, error)

	// Save replaces the cached state
	Save(ctx context.Context, state *models.ApplicationState) error
}
