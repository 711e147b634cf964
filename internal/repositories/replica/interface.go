package replica

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/birdie/internal/repositories/replica Repository,Subscription

import (
	"context"
)

// Repository defines the interface for the remote state replica.
// The replica holds a single row keyed by a fixed id.
type Repository interface {
	// Fetch retrieves the replicated state.
	// It returns ErrNotFound when the row does not exist yet.
	Fetch(ctx context.Context) (*FetchOutput, error)

	// Upsert replaces the replicated row with the given state
	Upsert(ctx context.Context, input *UpsertInput) error

	// Subscribe starts delivering change notifications to the handler.
	// Every notification carries the full replacement state.
	Subscribe(ctx context.Context, input *SubscribeInput) (Subscription, error)
}

// Subscription is a live change feed
type Subscription interface {
	// Unsubscribe stops the feed. It is safe to call more than once.
	Unsubscribe() error
}
