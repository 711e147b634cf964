package replica

import (
	"context"
)

// unconfiguredRepository is the replica used when no remote is configured
type unconfiguredRepository struct{}

// NewUnconfigured returns a replica whose operations all fail with ErrNotConfigured
func NewUnconfigured() *unconfiguredRepository {
	return &unconfiguredRepository{}
}

// Fetch implements Repository
func (r *unconfiguredRepository) Fetch(ctx context.Context) (*FetchOutput, error) {
	return nil, ErrNotConfigured
}

// Upsert implements Repository
func (r *unconfiguredRepository) Upsert(ctx context.Context, input *UpsertInput) error {
	return ErrNotConfigured
}

// Subscribe implements Repository
func (r *unconfiguredRepository) Subscribe(ctx context.Context, input *SubscribeInput) (Subscription, error) {
	return nil, ErrNotConfigured
}
