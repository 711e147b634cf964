package statesync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/KirkDiggler/birdie/internal/repositories/localcache"
	"github.com/KirkDiggler/birdie/internal/repositories/replica"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// service implements the Service interface.
// mu guards every field below it; it is the only lock.
type service struct {
	cache       localcache.Repository
	replica     replica.Repository
	pushTimeout time.Duration
	logger      *slog.Logger
	tracer      trace.Tracer
	metrics     *metrics

	pushes sync.WaitGroup

	mu        sync.Mutex
	state     *models.ApplicationState
	started   bool
	closed    bool
	connected bool
	sub       replica.Subscription
}

// New creates a new synchronizer
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Cache == nil {
		return nil, ErrNilCache
	}

	if cfg.Replica == nil {
		return nil, ErrNilReplica
	}

	pushTimeout := cfg.PushTimeout
	if pushTimeout <= 0 {
		pushTimeout = DefaultPushTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("statesync")
	}

	m, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	return &service{
		cache:       cfg.Cache,
		replica:     cfg.Replica,
		pushTimeout: pushTimeout,
		logger:      logger,
		tracer:      tracer,
		metrics:     m,
		state:       models.NewApplicationState(),
	}, nil
}

// Start runs the one-time startup reconciliation.
// Remote failures are logged and leave the synchronizer in local-only mode.
func (s *service) Start(ctx context.Context) (*StartOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	if s.started {
		return nil, ErrAlreadyStarted
	}

	local := s.loadLocal(ctx)
	remote, connected := s.fetchRemote(ctx)

	state := local
	adopted := false
	if connected && local.IsLegacyEmpty() {
		state = remote
		adopted = true
		s.saveLocal(ctx, state)
		s.logger.Info("Adopted remote state")
	}

	s.state = state
	s.connected = connected
	s.started = true
	s.metrics.setConnected(connected)

	if connected {
		s.subscribe(ctx)
	}

	return &StartOutput{
		State:         s.state.Clone(),
		Connected:     connected,
		AdoptedRemote: adopted,
	}, nil
}

// State returns a copy of the current state
func (s *service) State() *models.ApplicationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Update applies the change to a copy of the state and commits it.
// The committed state is written to the local cache before Update returns and
// pushed to the remote in the background when connected.
func (s *service) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Apply == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	if !s.started {
		return nil, ErrNotStarted
	}

	next := s.state.Clone()
	if err := input.Apply(next); err != nil {
		if errors.Is(err, ErrNoChange) {
			return &UpdateOutput{
				State:   s.state.Clone(),
				Changed: false,
			}, nil
		}
		return nil, err
	}

	s.state = next.Normalize()
	s.saveLocal(ctx, s.state)

	if s.connected {
		s.push(s.state.Clone())
	}

	return &UpdateOutput{
		State:   s.state.Clone(),
		Changed: true,
	}, nil
}

// Status reports the connection state
func (s *service) Status() *StatusOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &StatusOutput{
		Started:    s.started,
		Connected:  s.connected,
		Subscribed: s.sub != nil,
	}
}

// Close revokes the change feed and waits for in-flight pushes until ctx is done
func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub != nil {
		if err := sub.Unsubscribe(); err != nil {
			s.logger.Warn("Failed to unsubscribe from remote changes", "error", err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.pushes.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// loadLocal reads the cached state, falling back to the default state
func (s *service) loadLocal(ctx context.Context) *models.ApplicationState {
	state, err := s.cache.Load(ctx)
	if err != nil {
		if errors.Is(err, localcache.ErrNotFound) {
			s.logger.Info("No cached state, starting empty")
		} else {
			s.logger.Warn("Failed to load cached state, starting empty", "error", err)
		}
		return models.NewApplicationState()
	}

	return state.Normalize()
}

// fetchRemote reads the replicated state.
// The remote counts as connected only when it holds a non-default state.
func (s *service) fetchRemote(ctx context.Context) (*models.ApplicationState, bool) {
	ctx, span := s.tracer.Start(ctx, "statesync.FetchRemote")
	defer span.End()

	out, err := s.replica.Fetch(ctx)
	if err != nil {
		switch {
		case errors.Is(err, replica.ErrNotConfigured):
			s.logger.Info("Remote replica not configured, running local-only")
		case errors.Is(err, replica.ErrNotFound):
			s.logger.Info("Remote replica is empty, running local-only")
		default:
			span.RecordError(err)
			span.SetStatus(codes.Error, "fetch failed")
			s.logger.Warn("Failed to fetch remote state, running local-only", "error", err)
		}
		return nil, false
	}

	if out.State == nil || out.State.IsDefault() {
		s.logger.Info("Remote replica holds the default state, running local-only")
		return nil, false
	}

	span.SetAttributes(attribute.Int("current_hole", out.State.CurrentHole))
	return out.State.Normalize(), true
}

// subscribe starts the change feed. Called with mu held.
func (s *service) subscribe(ctx context.Context) {
	sub, err := s.replica.Subscribe(ctx, &replica.SubscribeInput{
		Handler: s.applyRemote,
		OnClose: s.feedLost,
	})
	if err != nil {
		s.logger.Warn("Failed to subscribe to remote changes", "error", err)
		return
	}

	s.sub = sub
}

// applyRemote replaces the state with a remote change.
// The change is cached but never pushed back.
func (s *service) applyRemote(state *models.ApplicationState) {
	if state == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.state = state.Clone().Normalize()
	s.saveLocal(context.Background(), s.state)
	s.metrics.remoteChanges.Inc()
}

// feedLost is called when the change feed ends on its own
func (s *service) feedLost() {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.connected = false
	s.metrics.setConnected(false)
	s.mu.Unlock()

	s.logger.Warn("Lost connection to remote changes, running local-only")

	if sub != nil {
		if err := sub.Unsubscribe(); err != nil {
			s.logger.Warn("Failed to unsubscribe from remote changes", "error", err)
		}
	}
}

// saveLocal writes the state to the cache, logging failures
func (s *service) saveLocal(ctx context.Context, state *models.ApplicationState) {
	err := s.cache.Save(ctx, state)
	s.metrics.cacheWrites.WithLabelValues(result(err)).Inc()
	if err != nil {
		s.logger.Warn("Failed to write cached state", "error", err)
	}
}

// push upserts the state to the remote on its own goroutine.
// Pushes are not ordered relative to each other; the last one to land wins.
func (s *service) push(state *models.ApplicationState) {
	s.pushes.Add(1)
	go func() {
		defer s.pushes.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.pushTimeout)
		defer cancel()

		ctx, span := s.tracer.Start(ctx, "statesync.PushRemote",
			trace.WithAttributes(attribute.Int("current_hole", state.CurrentHole)))
		defer span.End()

		err := s.replica.Upsert(ctx, &replica.UpsertInput{State: state})
		s.metrics.remotePushes.WithLabelValues(result(err)).Inc()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "push failed")
			s.logger.Warn("Failed to push state to remote", "error", err)
		}
	}()
}
