package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KirkDiggler/birdie/internal/services/ledger"
	"github.com/KirkDiggler/birdie/internal/services/ranking"
	"github.com/KirkDiggler/birdie/internal/services/roster"
	"github.com/KirkDiggler/birdie/internal/services/scorecard"
	"github.com/KirkDiggler/birdie/internal/services/statesync"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) badRequest(w http.ResponseWriter, message string) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, roster.ErrGroupNotFound),
		errors.Is(err, roster.ErrPlayerNotFound),
		errors.Is(err, scorecard.ErrScoreRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, roster.ErrEmptyName),
		errors.Is(err, scorecard.ErrInvalidHole),
		errors.Is(err, scorecard.ErrEmptyPlayerName),
		errors.Is(err, ledger.ErrInvalidHole),
		errors.Is(err, ledger.ErrInvalidStrokes),
		errors.Is(err, ranking.ErrInvalidMode),
		errors.Is(err, ranking.ErrInvalidOrder):
		return http.StatusBadRequest
	case errors.Is(err, statesync.ErrNotStarted),
		errors.Is(err, statesync.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
