package replica

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/birdie/internal/common/clock"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// PostgresConfig holds configuration for the Postgres replica
type PostgresConfig struct {
	// DB is a bun database using the Postgres dialect
	DB *bun.DB

	// StateID is the id of the replicated row, DefaultStateID when empty
	StateID string

	// Clock stamps updated_at, the system clock when nil
	Clock clock.Clock

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// postgresRepository implements the Repository interface using Postgres.
// Upserts notify ChangesChannel with the row id and subscribers refetch the row.
type postgresRepository struct {
	db      *bun.DB
	stateID string
	clock   clock.Clock
	logger  *slog.Logger
}

// OpenPostgres opens a bun database for the given DSN
func OpenPostgres(dsn string) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return bun.NewDB(sqldb, pgdialect.New()), nil
}

// NewPostgres creates a new Postgres-backed replica, creating its table if needed
func NewPostgres(ctx context.Context, cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	if _, err := cfg.DB.NewCreateTable().Model((*Row)(nil)).IfNotExists().Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create app_state table: %w", err)
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

	return &postgresRepository{
		db:      cfg.DB,
		stateID: stateID,
		clock:   c,
		logger:  logger,
	}, nil
}

// Fetch implements Repository
func (r *postgresRepository) Fetch(ctx context.Context) (*FetchOutput, error) {
	row := &Row{}
	err := r.db.NewSelect().Model(row).Where("id = ?", r.stateID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to select replicated state: %w", err)
	}

	return &FetchOutput{
		State:     DecodeRow(row),
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// Upsert implements Repository
func (r *postgresRepository) Upsert(ctx context.Context, input *UpsertInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	row := EncodeRow(r.stateID, input.State, r.clock.Now())

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(row).On("CONFLICT (id) DO UPDATE").Exec(ctx); err != nil {
			return fmt.Errorf("failed to upsert replicated state: %w", err)
		}

		// Delivered on commit
		if _, err := tx.NewRaw("SELECT pg_notify(?, ?)", ChangesChannel, r.stateID).Exec(ctx); err != nil {
			return fmt.Errorf("failed to notify state change: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// Subscribe implements Repository
func (r *postgresRepository) Subscribe(ctx context.Context, input *SubscribeInput) (Subscription, error) {
	if input == nil || input.Handler == nil {
		return nil, errors.New("input and handler cannot be nil")
	}

	ln := pgdriver.NewListener(r.db)
	if err := ln.Listen(ctx, ChangesChannel); err != nil {
		ln.Close()
		return nil, fmt.Errorf("failed to listen for state changes: %w", err)
	}

	sub := newSubscription(ln.Close)
	notifications := ln.Channel()

	go func() {
		for n := range notifications {
			if n.Payload != r.stateID {
				continue
			}

			out, err := r.Fetch(context.Background())
			if err != nil {
				r.logger.Warn("Failed to refetch changed state",
					"state_id", r.stateID,
					"error", err)
				continue
			}
			input.Handler(out.State)
		}
		sub.ended(input.OnClose)
	}()

	return sub, nil
}
