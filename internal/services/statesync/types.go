package statesync

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/KirkDiggler/birdie/internal/repositories/localcache"
	"github.com/KirkDiggler/birdie/internal/repositories/replica"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// DefaultPushTimeout bounds a single remote push
const DefaultPushTimeout = 10 * time.Second

// Config holds configuration for the synchronizer
type Config struct {
	// Cache is the local durable cache
	Cache localcache.Repository

	// Replica is the remote replica, use replica.NewUnconfigured() for local-only mode
	Replica replica.Repository

	// PushTimeout bounds a single remote push, DefaultPushTimeout when zero
	PushTimeout time.Duration

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Tracer defaults to a noop tracer
	Tracer trace.Tracer

	// Registerer receives the synchronizer metrics, a private registry when nil
	Registerer prometheus.Registerer
}

// StartOutput contains the result of the startup reconciliation
type StartOutput struct {
	State *models.ApplicationState

	// Connected is true when the remote returned a non-default state
	Connected bool

	// AdoptedRemote is true when the remote state replaced the local one
	AdoptedRemote bool
}

// UpdateInput contains the change to commit
type UpdateInput struct {
	// Apply mutates a copy of the current state.
	// Returning ErrNoChange leaves the state untouched, any other error aborts the update.
	Apply func(state *models.ApplicationState) error
}

// UpdateOutput contains the state after the update
type UpdateOutput struct {
	State   *models.ApplicationState
	Changed bool
}

// StatusOutput describes the connection state
type StatusOutput struct {
	Started    bool
	Connected  bool
	Subscribed bool
}
