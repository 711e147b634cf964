package localcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/birdie/internal/models"

	_ "modernc.org/sqlite"
)

// StateKey is the key the application state is cached under
const StateKey = "birdie:state"

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Config holds configuration for the SQLite cache repository
type Config struct {
	// DB is an open SQLite database
	DB *sql.DB

	// Key overrides StateKey
	Key string
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db  *sql.DB
	key string
}

// OpenSQLite opens the SQLite database file backing the cache
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared and writes serialized
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	return db, nil
}

// NewSQLite creates a new SQLite-backed cache repository
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	if _, err := cfg.DB.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = StateKey
	}

	return &sqliteRepository{
		db:  cfg.DB,
		key: key,
	}, nil
}

// Load retrieves the cached state
func (r *sqliteRepository) Load(ctx context.Context) (*models.ApplicationState, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", r.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cached state: %w", err)
	}

	return Decode([]byte(value))
}

// Save replaces the cached state
func (r *sqliteRepository) Save(ctx context.Context, state *models.ApplicationState) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		r.key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write cached state: %w", err)
	}

	return nil
}
