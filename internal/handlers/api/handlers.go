package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/KirkDiggler/birdie/internal/services/messaging"
	"github.com/KirkDiggler/birdie/internal/services/scorecard"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type nameRequest struct {
	Name string `json:"name"`
}

type scoreEntryRequest struct {
	PlayerID string `json:"playerId"`
	Strokes  int    `json:"strokes"`
}

// scoresRequest records a single score, or a whole hole when Entries is set
type scoresRequest struct {
	HoleNumber int                 `json:"holeNumber"`
	PlayerID   string              `json:"playerId"`
	Strokes    int                 `json:"strokes"`
	Entries    []scoreEntryRequest `json:"entries"`
}

type holeRequest struct {
	HoleNumber int `json:"holeNumber"`
}

type scoreRecordRequest struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	Notes      string `json:"notes"`
}

type statusResponse struct {
	Connected   bool   `json:"connected"`
	Subscribed  bool   `json:"subscribed"`
	CurrentHole int    `json:"currentHole"`
	CourseName  string `json:"courseName"`
}

type playerResponse struct {
	Player    *models.Player `json:"player"`
	GroupFull bool           `json:"groupFull"`
}

type enterScoreResponse struct {
	Recorded   bool                `json:"recorded"`
	HoleNumber int                 `json:"holeNumber"`
	Score      *models.PlayerScore `json:"score,omitempty"`
	Result     string              `json:"result,omitempty"`
	Label      string              `json:"label,omitempty"`
	Message    string              `json:"message,omitempty"`
}

type enterHoleScoresResponse struct {
	HoleNumber int      `json:"holeNumber"`
	Recorded   []string `json:"recorded"`
	Skipped    []string `json:"skipped"`
}

type holeResponse struct {
	CurrentHole int `json:"currentHole"`
	Par         int `json:"par"`
}

type rankingResponse struct {
	*models.RankedScore
	Badge messaging.Badge `json:"badge,omitempty"`
}

type standingsResponse struct {
	Mode        models.RankMode      `json:"mode"`
	Order       models.SortOrder     `json:"order"`
	Rankings    []rankingResponse    `json:"rankings"`
	Groups      []*models.GroupStats `json:"groups"`
	Completed   int                  `json:"completed"`
	Total       int                  `json:"total"`
	CurrentHole int                  `json:"currentHole"`
	Progress    string               `json:"progress"`
}

func decode(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	out, err := s.scorecard.GetState(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, out.State)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	out, err := s.scorecard.GetStatus(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, statusResponse{
		Connected:   out.Connected,
		Subscribed:  out.Subscribed,
		CurrentHole: out.CurrentHole,
		CourseName:  out.CourseName,
	})
}

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	out, err := s.scorecard.CreateGroup(r.Context(), &scorecard.CreateGroupInput{Name: req.Name})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, out.Group)
}

func (s *Server) removeGroup(w http.ResponseWriter, r *http.Request) {
	out, err := s.scorecard.RemoveGroup(r.Context(), &scorecard.RemoveGroupInput{
		GroupID: chi.URLParam(r, "groupID"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, out.Group)
}

func (s *Server) addPlayer(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	out, err := s.scorecard.AddPlayer(r.Context(), &scorecard.AddPlayerInput{
		GroupID: chi.URLParam(r, "groupID"),
		Name:    req.Name,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, playerResponse{
		Player:    out.Player,
		GroupFull: out.GroupFull,
	})
}

func (s *Server) removePlayer(w http.ResponseWriter, r *http.Request) {
	out, err := s.scorecard.RemovePlayer(r.Context(), &scorecard.RemovePlayerInput{
		PlayerID: chi.URLParam(r, "playerID"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, out.Player)
}

func (s *Server) enterScores(w http.ResponseWriter, r *http.Request) {
	var req scoresRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	if len(req.Entries) > 0 {
		s.enterHoleScores(w, r, &req)
		return
	}

	if req.PlayerID == "" {
		s.badRequest(w, "playerId is required")
		return
	}

	out, err := s.scorecard.EnterScore(r.Context(), &scorecard.EnterScoreInput{
		PlayerID:   req.PlayerID,
		HoleNumber: req.HoleNumber,
		Strokes:    req.Strokes,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, enterScoreResponse{
		Recorded:   out.Recorded,
		HoleNumber: out.HoleNumber,
		Score:      out.Score,
		Result:     string(out.Result),
		Label:      out.Label,
		Message:    out.Message,
	})
}

func (s *Server) enterHoleScores(w http.ResponseWriter, r *http.Request, req *scoresRequest) {
	entries := make([]scorecard.ScoreEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, scorecard.ScoreEntry{
			PlayerID: e.PlayerID,
			Strokes:  e.Strokes,
		})
	}

	out, err := s.scorecard.EnterHoleScores(r.Context(), &scorecard.EnterHoleScoresInput{
		HoleNumber: req.HoleNumber,
		Entries:    entries,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	recorded := out.Recorded
	if recorded == nil {
		recorded = []string{}
	}
	skipped := out.Skipped
	if skipped == nil {
		skipped = []string{}
	}

	s.writeJSON(w, http.StatusOK, enterHoleScoresResponse{
		HoleNumber: out.HoleNumber,
		Recorded:   recorded,
		Skipped:    skipped,
	})
}

func (s *Server) getPlayerScore(w http.ResponseWriter, r *http.Request) {
	out, err := s.scorecard.GetPlayerScore(r.Context(), &scorecard.GetPlayerScoreInput{
		PlayerID: chi.URLParam(r, "playerID"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	if !out.Found {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no score for player"})
		return
	}

	s.writeJSON(w, http.StatusOK, out.Score)
}

func (s *Server) setCurrentHole(w http.ResponseWriter, r *http.Request) {
	var req holeRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	out, err := s.scorecard.SetCurrentHole(r.Context(), &scorecard.SetCurrentHoleInput{
		HoleNumber: req.HoleNumber,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, holeResponse{
		CurrentHole: out.CurrentHole,
		Par:         out.Par,
	})
}

// standingsInput reads the optional mode and order query parameters
func standingsInput(r *http.Request) *scorecard.GetStandingsInput {
	q := r.URL.Query()
	return &scorecard.GetStandingsInput{
		Mode:  models.RankMode(q.Get("mode")),
		Order: models.SortOrder(q.Get("order")),
	}
}

func (s *Server) getStandings(w http.ResponseWriter, r *http.Request) {
	out, err := s.scorecard.GetStandings(r.Context(), standingsInput(r))
	if err != nil {
		s.writeError(w, err)
		return
	}

	rankings := make([]rankingResponse, 0, len(out.Rankings))
	for _, r := range out.Rankings {
		rankings = append(rankings, rankingResponse{
			RankedScore: r,
			Badge:       out.Badges[r.PlayerID],
		})
	}
	groups := out.Groups
	if groups == nil {
		groups = []*models.GroupStats{}
	}

	s.writeJSON(w, http.StatusOK, standingsResponse{
		Mode:        out.Mode,
		Order:       out.Order,
		Rankings:    rankings,
		Groups:      groups,
		Completed:   out.Completed,
		Total:       out.Total,
		CurrentHole: out.CurrentHole,
		Progress:    out.Progress,
	})
}

func (s *Server) exportStandings(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.scorecard.ExportStandings(r.Context(), &buf, standingsInput(r)); err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="standings.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("Failed to write standings export", "error", err)
	}
}

func (s *Server) addScoreRecord(w http.ResponseWriter, r *http.Request) {
	var req scoreRecordRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	out, err := s.scorecard.AddScoreRecord(r.Context(), &scorecard.AddScoreRecordInput{
		PlayerName: req.PlayerName,
		Score:      req.Score,
		Notes:      req.Notes,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, out.Record)
}

func (s *Server) listScoreRecords(w http.ResponseWriter, r *http.Request) {
	out, err := s.scorecard.ListScoreRecords(r.Context(), &scorecard.ListScoreRecordsInput{
		PlayerName: r.URL.Query().Get("player"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	records := out.Records
	if records == nil {
		records = []*models.ScoreRecord{}
	}

	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) deleteScoreRecord(w http.ResponseWriter, r *http.Request) {
	err := s.scorecard.DeleteScoreRecord(r.Context(), &scorecard.DeleteScoreRecordInput{
		RecordID: chi.URLParam(r, "recordID"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
