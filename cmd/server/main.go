package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/birdie/internal/common/clock"
	"github.com/KirkDiggler/birdie/internal/common/uuid"
	"github.com/KirkDiggler/birdie/internal/course"
	"github.com/KirkDiggler/birdie/internal/handlers/api"
	"github.com/KirkDiggler/birdie/internal/repositories/localcache"
	"github.com/KirkDiggler/birdie/internal/repositories/replica"
	"github.com/KirkDiggler/birdie/internal/repositories/score_records"
	"github.com/KirkDiggler/birdie/internal/services/ledger"
	"github.com/KirkDiggler/birdie/internal/services/messaging"
	"github.com/KirkDiggler/birdie/internal/services/ranking"
	"github.com/KirkDiggler/birdie/internal/services/roster"
	"github.com/KirkDiggler/birdie/internal/services/scorecard"
	"github.com/KirkDiggler/birdie/internal/services/statesync"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"
)

const (
	remoteNone     = "none"
	remoteRedis    = "redis"
	remotePostgres = "postgres"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "birdie",
		Usage: "golf scorekeeping server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "HTTP listen address", EnvVars: []string{"BIRDIE_ADDR"}},
			&cli.StringFlag{Name: "cache-path", Value: "birdie.db", Usage: "SQLite file for the local state cache", EnvVars: []string{"BIRDIE_CACHE_PATH"}},
			&cli.StringFlag{Name: "remote", Value: remoteNone, Usage: "remote replica: none, redis or postgres", EnvVars: []string{"BIRDIE_REMOTE"}},
			&cli.StringFlag{Name: "redis-addr", Value: "localhost:6379", Usage: "Redis address", EnvVars: []string{"REDIS_ADDR"}},
			&cli.StringFlag{Name: "redis-password", Usage: "Redis password", EnvVars: []string{"REDIS_PASSWORD"}},
			&cli.IntFlag{Name: "redis-db", Usage: "Redis database", EnvVars: []string{"REDIS_DB"}},
			&cli.StringFlag{Name: "postgres-dsn", Usage: "Postgres connection string", EnvVars: []string{"POSTGRES_DSN"}},
			&cli.StringFlag{Name: "state-id", Value: replica.DefaultStateID, Usage: "id of the replicated state row", EnvVars: []string{"BIRDIE_STATE_ID"}},
			&cli.StringFlag{Name: "course", Usage: "YAML course file, the built-in course when empty", EnvVars: []string{"BIRDIE_COURSE"}},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error", EnvVars: []string{"BIRDIE_LOG_LEVEL"}},
			&cli.DurationFlag{Name: "push-timeout", Value: statesync.DefaultPushTimeout, Usage: "timeout of a remote push", EnvVars: []string{"BIRDIE_PUSH_TIMEOUT"}},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(c.String("log-level")),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	crs, err := course.Load(c.String("course"))
	if err != nil {
		return fmt.Errorf("failed to load course: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	db, err := localcache.OpenSQLite(c.String("cache-path"))
	if err != nil {
		return err
	}
	defer db.Close()

	cache, err := localcache.NewSQLite(&localcache.Config{DB: db})
	if err != nil {
		return fmt.Errorf("failed to create local cache: %w", err)
	}

	remote, scoreRecords, cleanup, err := openRemote(ctx, c, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	sync, err := statesync.New(&statesync.Config{
		Cache:       cache,
		Replica:     remote,
		PushTimeout: c.Duration("push-timeout"),
		Logger:      logger.With("component", "statesync"),
		Tracer:      otel.Tracer("github.com/KirkDiggler/birdie/statesync"),
		Registerer:  registry,
	})
	if err != nil {
		return fmt.Errorf("failed to create synchronizer: %w", err)
	}

	closeTimeout := c.Duration("push-timeout") + 5*time.Second

	return runSynchronized(ctx, sync, closeTimeout, logger, func() error {
		svc, err := newScorecard(crs, sync, scoreRecords, logger)
		if err != nil {
			return err
		}

		server, err := api.New(&api.Config{
			Scorecard: svc,
			Gatherer:  registry,
			Logger:    logger.With("component", "api"),
		})
		if err != nil {
			return fmt.Errorf("failed to create API: %w", err)
		}

		httpServer := &http.Server{
			Addr:              c.String("addr"),
			Handler:           server.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		logger.Info("Listening", "addr", httpServer.Addr, "course", crs.Name())
		return serve(ctx, httpServer, closeTimeout, logger)
	})
}

// runSynchronized starts the synchronizer and runs fn. Once started, the
// synchronizer is closed however fn returns, waiting up to closeTimeout for
// pending remote pushes.
func runSynchronized(ctx context.Context, sync statesync.Service, closeTimeout time.Duration, logger *slog.Logger, fn func() error) error {
	startOut, err := sync.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start synchronizer: %w", err)
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()

		if err := sync.Close(closeCtx); err != nil {
			logger.Warn("Pending remote pushes did not finish", "error", err)
		}
	}()

	logger.Info("Synchronizer started",
		"connected", startOut.Connected,
		"adopted_remote", startOut.AdoptedRemote,
		"current_hole", startOut.State.CurrentHole)

	return fn()
}

// serve runs the HTTP server until ctx is done or the server fails
func serve(ctx context.Context, httpServer *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Failed to shut down HTTP server", "error", err)
	}

	return nil
}

// openRemote builds the remote replica selected by --remote.
// The Redis remote also mirrors the free-form score records.
func openRemote(ctx context.Context, c *cli.Context, logger *slog.Logger) (replica.Repository, score_records.Repository, func(), error) {
	noop := func() {}
	logger = logger.With("component", "replica")

	switch strings.ToLower(c.String("remote")) {
	case remoteNone, "":
		return replica.NewUnconfigured(), nil, noop, nil

	case remoteRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     c.String("redis-addr"),
			Password: c.String("redis-password"),
			DB:       c.Int("redis-db"),
		})

		repo, err := replica.NewRedis(&replica.RedisConfig{
			RedisClient: client,
			StateID:     c.String("state-id"),
			Logger:      logger,
		})
		if err != nil {
			// Local-only until restarted
			logger.Warn("Redis replica unavailable", "error", err)
			client.Close()
			return replica.NewUnconfigured(), nil, noop, nil
		}

		records, err := score_records.NewRedis(&score_records.Config{RedisClient: client})
		if err != nil {
			client.Close()
			return nil, nil, noop, fmt.Errorf("failed to create score records repository: %w", err)
		}

		return repo, records, func() { client.Close() }, nil

	case remotePostgres:
		dsn := c.String("postgres-dsn")
		if dsn == "" {
			return nil, nil, noop, errors.New("--postgres-dsn is required for the postgres remote")
		}

		db, err := replica.OpenPostgres(dsn)
		if err != nil {
			logger.Warn("Postgres replica unavailable", "error", err)
			return replica.NewUnconfigured(), nil, noop, nil
		}

		repo, err := replica.NewPostgres(ctx, &replica.PostgresConfig{
			DB:      db,
			StateID: c.String("state-id"),
			Logger:  logger,
		})
		if err != nil {
			logger.Warn("Postgres replica unavailable", "error", err)
			db.Close()
			return replica.NewUnconfigured(), nil, noop, nil
		}

		return repo, nil, func() { db.Close() }, nil

	default:
		return nil, nil, noop, fmt.Errorf("unknown remote %q", c.String("remote"))
	}
}

func newScorecard(crs *course.Course, sync statesync.Service, records score_records.Repository, logger *slog.Logger) (scorecard.Service, error) {
	ids := uuid.New()

	ledgerSvc, err := ledger.New(&ledger.Config{Course: crs})
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	rosterSvc, err := roster.New(&roster.Config{UUIDGenerator: ids})
	if err != nil {
		return nil, fmt.Errorf("failed to create roster: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	svc, err := scorecard.New(&scorecard.Config{
		Sync:          sync,
		Ledger:        ledgerSvc,
		Ranking:       ranking.New(&ranking.Config{Holes: crs.Holes()}),
		Roster:        rosterSvc,
		Messaging:     messagingSvc,
		Course:        crs,
		ScoreRecords:  records,
		Clock:         clock.New(),
		UUIDGenerator: ids,
		Logger:        logger.With("component", "scorecard"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scorecard service: %w", err)
	}

	return svc, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
