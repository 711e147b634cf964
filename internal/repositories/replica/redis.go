package replica

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/birdie/internal/common/clock"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for the replicated row
	stateKeyPrefix = "app_state:"
)

// RedisConfig holds configuration for the Redis replica
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// StateID is the id of the replicated row, DefaultStateID when empty
	StateID string

	// Clock stamps updated_at, the system clock when nil
	Clock clock.Clock

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// redisRepository implements the Repository interface using Redis.
// The row is stored as JSON and every upsert is published on the change channel.
type redisRepository struct {
	client  *redis.Client
	stateID string
	clock   clock.Clock
	logger  *slog.Logger
}

// NewRedis creates a new Redis-backed replica
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	stateID := cfg.StateID
	if stateID == "" {
		stateID = DefaultStateID
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &redisRepository{
		client:  cfg.RedisClient,
		stateID: stateID,
		clock:   c,
		logger:  logger,
	}, nil
}

func (r *redisRepository) stateKey() string {
	return stateKeyPrefix + r.stateID
}

func (r *redisRepository) channel() string {
	return ChangesChannel + ":" + r.stateID
}

// Fetch implements Repository
func (r *redisRepository) Fetch(ctx context.Context) (*FetchOutput, error) {
	data, err := r.client.Get(ctx, r.stateKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get replicated state: %w", err)
	}

	var row Row
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal replicated state: %w", err)
	}

	return &FetchOutput{
		State:     DecodeRow(&row),
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// Upsert implements Repository
func (r *redisRepository) Upsert(ctx context.Context, input *UpsertInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	data, err := json.Marshal(EncodeRow(r.stateID, input.State, r.clock.Now()))
	if err != nil {
		return fmt.Errorf("failed to marshal replicated state: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.stateKey(), data, 0)
	pipe.Publish(ctx, r.channel(), data)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert replicated state: %w", err)
	}

	return nil
}

// Subscribe implements Repository
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (Subscription, error) {
	if input == nil || input.Handler == nil {
		return nil, errors.New("input and handler cannot be nil")
	}

	pubsub := r.client.Subscribe(ctx, r.channel())

	// Wait for the subscription to be confirmed before returning
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to state changes: %w", err)
	}

	sub := newSubscription(pubsub.Close)
	messages := pubsub.Channel()

	go func() {
		for msg := range messages {
			var row Row
			if err := json.Unmarshal([]byte(msg.Payload), &row); err != nil {
				r.logger.Warn("Dropping malformed state change",
					"channel", msg.Channel,
					"error", err)
				continue
			}
			input.Handler(DecodeRow(&row))
		}
		sub.ended(input.OnClose)
	}()

	return sub, nil
}
