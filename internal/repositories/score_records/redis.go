package score_records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/birdie/internal/common/clock"
	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scoreKeyPrefix        = "score:"
	scoresKey             = "scores"
	playerScoresKeyPrefix = "player_scores:"
)

// ErrScoreRecordNotFound is returned when a score record is not found
var ErrScoreRecordNotFound = errors.New("score record not found")

// Config holds configuration for the Redis score records repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps records without a date, the system clock when nil
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed score records repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  c,
	}, nil
}

// AddScoreRecord adds a score record to the collection
func (r *redisRepository) AddScoreRecord(ctx context.Context, input *AddScoreRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if input.Record.ID == "" {
		return errors.New("score record ID cannot be empty")
	}

	doc := toDocument(input.Record)
	if doc.Date.IsZero() {
		doc.Date = r.clock.Now()
	}

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}

	member := redis.Z{
		Score:  float64(doc.Date.Unix()),
		Member: doc.ID,
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, scoreKeyPrefix+doc.ID, docJSON, 0)
	pipe.ZAdd(ctx, scoresKey, member)
	pipe.ZAdd(ctx, playerScoresKeyPrefix+doc.PlayerName, member)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add score record: %w", err)
	}

	return nil
}

// DeleteScoreRecord removes a score record from the collection
func (r *redisRepository) DeleteScoreRecord(ctx context.Context, input *DeleteScoreRecordInput) error {
	if input == nil || input.RecordID == "" {
		return errors.New("input and record ID cannot be empty")
	}

	doc, err := r.getDocument(ctx, input.RecordID)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, scoreKeyPrefix+doc.ID)
	pipe.ZRem(ctx, scoresKey, doc.ID)
	pipe.ZRem(ctx, playerScoresKeyPrefix+doc.PlayerName, doc.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete score record: %w", err)
	}

	return nil
}

// ListScoreRecords retrieves the score records ordered by date
func (r *redisRepository) ListScoreRecords(ctx context.Context, input *ListScoreRecordsInput) (*ListScoreRecordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	indexKey := scoresKey
	if input.PlayerName != "" {
		indexKey = playerScoresKeyPrefix + input.PlayerName
	}

	recordIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score record IDs: %w", err)
	}

	if len(recordIDs) == 0 {
		return &ListScoreRecordsOutput{
			Records: []*models.ScoreRecord{},
		}, nil
	}

	keys := make([]string, len(recordIDs))
	for i, id := range recordIDs {
		keys[i] = scoreKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score records: %w", err)
	}

	records := make([]*models.ScoreRecord, 0, len(values))
	for i, value := range values {
		docJSON, ok := value.(string)
		if !ok {
			// Record was deleted between getting the IDs and fetching the record
			continue
		}

		var doc scoreDocument
		if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score record %s: %w", recordIDs[i], err)
		}

		records = append(records, doc.toModel())
	}

	return &ListScoreRecordsOutput{
		Records: records,
	}, nil
}

func (r *redisRepository) getDocument(ctx context.Context, recordID string) (*scoreDocument, error) {
	docJSON, err := r.client.Get(ctx, scoreKeyPrefix+recordID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrScoreRecordNotFound
		}
		return nil, fmt.Errorf("failed to get score record: %w", err)
	}

	var doc scoreDocument
	if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score record: %w", err)
	}

	return &doc, nil
}
