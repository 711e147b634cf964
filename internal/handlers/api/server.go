package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/birdie/internal/services/scorecard"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds the configuration for the HTTP API
type Config struct {
	// Scorecard serves every request
	Scorecard scorecard.Service

	// Gatherer is exposed on /metrics when set
	Gatherer prometheus.Gatherer

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Server is the JSON HTTP API
type Server struct {
	scorecard scorecard.Service
	gatherer  prometheus.Gatherer
	logger    *slog.Logger
}

// New creates a new HTTP API
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Scorecard == nil {
		return nil, errors.New("scorecard service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		scorecard: cfg.Scorecard,
		gatherer:  cfg.Gatherer,
		logger:    logger,
	}, nil
}

// Routes builds the router
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.getState)
		r.Get("/status", s.getStatus)

		r.Post("/groups", s.createGroup)
		r.Delete("/groups/{groupID}", s.removeGroup)
		r.Post("/groups/{groupID}/players", s.addPlayer)
		r.Delete("/players/{playerID}", s.removePlayer)

		r.Put("/scores", s.enterScores)
		r.Get("/players/{playerID}/score", s.getPlayerScore)
		r.Put("/hole", s.setCurrentHole)

		r.Get("/standings", s.getStandings)
		r.Get("/standings.xlsx", s.exportStandings)

		r.Get("/score-records", s.listScoreRecords)
		r.Post("/score-records", s.addScoreRecord)
		r.Delete("/score-records/{recordID}", s.deleteScoreRecord)
	})

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("Handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
