package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/KirkDiggler/birdie/internal/services/messaging"
	"github.com/KirkDiggler/birdie/internal/services/ranking"
	"github.com/KirkDiggler/birdie/internal/services/roster"
	"github.com/KirkDiggler/birdie/internal/services/scorecard"
	"github.com/KirkDiggler/birdie/internal/services/scorecard/mocks"
	"github.com/KirkDiggler/birdie/internal/services/statesync"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockScorecard *mocks.MockService
	registry      *prometheus.Registry
	handler       http.Handler
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockScorecard = mocks.NewMockService(s.ctrl)
	s.registry = prometheus.NewRegistry()

	server, err := New(&Config{
		Scorecard: s.mockScorecard,
		Gatherer:  s.registry,
	})
	s.Require().NoError(err)
	s.handler = server.Routes()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decodeBody(rec *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *ServerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *ServerTestSuite) TestGetState() {
	state := models.NewApplicationState()
	state.CurrentHole = 4
	s.mockScorecard.EXPECT().GetState(gomock.Any()).Return(&scorecard.GetStateOutput{State: state}, nil)

	rec := s.do(http.MethodGet, "/api/state", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	var body map[string]interface{}
	s.decodeBody(rec, &body)
	s.Equal(float64(4), body["currentHole"])
}

func (s *ServerTestSuite) TestGetStatus() {
	s.mockScorecard.EXPECT().GetStatus(gomock.Any()).Return(&scorecard.GetStatusOutput{
		Connected:   true,
		Subscribed:  true,
		CurrentHole: 2,
		CourseName:  "Pebble Creek",
	}, nil)

	rec := s.do(http.MethodGet, "/api/status", "")

	s.Equal(http.StatusOK, rec.Code)
	var body statusResponse
	s.decodeBody(rec, &body)
	s.True(body.Connected)
	s.True(body.Subscribed)
	s.Equal(2, body.CurrentHole)
	s.Equal("Pebble Creek", body.CourseName)
}

func (s *ServerTestSuite) TestCreateGroup() {
	s.mockScorecard.EXPECT().
		CreateGroup(gomock.Any(), &scorecard.CreateGroupInput{Name: "Flight A"}).
		Return(&scorecard.CreateGroupOutput{
			Group: &models.Group{ID: "group-1", Name: "Flight A", Players: []*models.Player{}},
		}, nil)

	rec := s.do(http.MethodPost, "/api/groups", `{"name":"Flight A"}`)

	s.Equal(http.StatusCreated, rec.Code)
	var body models.Group
	s.decodeBody(rec, &body)
	s.Equal("group-1", body.ID)
	s.Equal("Flight A", body.Name)
}

func (s *ServerTestSuite) TestCreateGroupMalformedBody() {
	rec := s.do(http.MethodPost, "/api/groups", `{"name":`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestCreateGroupEmptyName() {
	s.mockScorecard.EXPECT().
		CreateGroup(gomock.Any(), &scorecard.CreateGroupInput{Name: ""}).
		Return(nil, roster.ErrEmptyName)

	rec := s.do(http.MethodPost, "/api/groups", `{"name":""}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	var body errorResponse
	s.decodeBody(rec, &body)
	s.Equal(roster.ErrEmptyName.Error(), body.Error)
}

func (s *ServerTestSuite) TestRemoveGroupNotFound() {
	s.mockScorecard.EXPECT().
		RemoveGroup(gomock.Any(), &scorecard.RemoveGroupInput{GroupID: "missing"}).
		Return(nil, roster.ErrGroupNotFound)

	rec := s.do(http.MethodDelete, "/api/groups/missing", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestAddPlayer() {
	s.mockScorecard.EXPECT().
		AddPlayer(gomock.Any(), &scorecard.AddPlayerInput{GroupID: "group-1", Name: "Eve"}).
		Return(&scorecard.AddPlayerOutput{
			Player:    &models.Player{ID: "player-5", Name: "Eve", GroupID: "group-1"},
			GroupFull: true,
		}, nil)

	rec := s.do(http.MethodPost, "/api/groups/group-1/players", `{"name":"Eve"}`)

	s.Equal(http.StatusCreated, rec.Code)
	var body playerResponse
	s.decodeBody(rec, &body)
	s.Equal("player-5", body.Player.ID)
	s.True(body.GroupFull)
}

func (s *ServerTestSuite) TestRemovePlayer() {
	s.mockScorecard.EXPECT().
		RemovePlayer(gomock.Any(), &scorecard.RemovePlayerInput{PlayerID: "player-1"}).
		Return(&scorecard.RemovePlayerOutput{
			Player: &models.Player{ID: "player-1", Name: "Ann", GroupID: "group-1"},
		}, nil)

	rec := s.do(http.MethodDelete, "/api/players/player-1", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestEnterScore() {
	s.mockScorecard.EXPECT().
		EnterScore(gomock.Any(), &scorecard.EnterScoreInput{PlayerID: "player-1", HoleNumber: 2, Strokes: 3}).
		Return(&scorecard.EnterScoreOutput{
			Recorded:   true,
			HoleNumber: 2,
			Score: &models.PlayerScore{
				PlayerID:   "player-1",
				HoleScores: []models.HoleScore{{HoleNumber: 2, Strokes: 3, Par: 4}},
				TotalScore: 3,
				TotalPar:   4,
				NetScore:   -1,
			},
			Result:  "birdie",
			Label:   "Birdie",
			Message: "Nice birdie!",
		}, nil)

	rec := s.do(http.MethodPut, "/api/scores", `{"playerId":"player-1","holeNumber":2,"strokes":3}`)

	s.Equal(http.StatusOK, rec.Code)
	var body enterScoreResponse
	s.decodeBody(rec, &body)
	s.True(body.Recorded)
	s.Equal("birdie", body.Result)
	s.Equal("Birdie", body.Label)
	s.Equal(-1, body.Score.NetScore)
}

func (s *ServerTestSuite) TestEnterScoreNotRecorded() {
	s.mockScorecard.EXPECT().
		EnterScore(gomock.Any(), &scorecard.EnterScoreInput{PlayerID: "player-1", Strokes: 0}).
		Return(&scorecard.EnterScoreOutput{Recorded: false, HoleNumber: 1}, nil)

	rec := s.do(http.MethodPut, "/api/scores", `{"playerId":"player-1","strokes":0}`)

	s.Equal(http.StatusOK, rec.Code)
	var body enterScoreResponse
	s.decodeBody(rec, &body)
	s.False(body.Recorded)
	s.Nil(body.Score)
}

func (s *ServerTestSuite) TestEnterScoreMissingPlayer() {
	rec := s.do(http.MethodPut, "/api/scores", `{"strokes":4}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestEnterScoreInvalidHole() {
	s.mockScorecard.EXPECT().
		EnterScore(gomock.Any(), gomock.Any()).
		Return(nil, scorecard.ErrInvalidHole)

	rec := s.do(http.MethodPut, "/api/scores", `{"playerId":"player-1","holeNumber":19,"strokes":4}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestEnterHoleScores() {
	s.mockScorecard.EXPECT().
		EnterHoleScores(gomock.Any(), &scorecard.EnterHoleScoresInput{
			HoleNumber: 1,
			Entries: []scorecard.ScoreEntry{
				{PlayerID: "player-1", Strokes: 5},
				{PlayerID: "player-2", Strokes: 0},
			},
		}).
		Return(&scorecard.EnterHoleScoresOutput{
			HoleNumber: 1,
			Recorded:   []string{"player-1"},
			Skipped:    []string{"player-2"},
		}, nil)

	rec := s.do(http.MethodPut, "/api/scores",
		`{"holeNumber":1,"entries":[{"playerId":"player-1","strokes":5},{"playerId":"player-2","strokes":0}]}`)

	s.Equal(http.StatusOK, rec.Code)
	var body enterHoleScoresResponse
	s.decodeBody(rec, &body)
	s.Equal([]string{"player-1"}, body.Recorded)
	s.Equal([]string{"player-2"}, body.Skipped)
}

func (s *ServerTestSuite) TestGetPlayerScore() {
	s.mockScorecard.EXPECT().
		GetPlayerScore(gomock.Any(), &scorecard.GetPlayerScoreInput{PlayerID: "player-1"}).
		Return(&scorecard.GetPlayerScoreOutput{
			Score: &models.PlayerScore{PlayerID: "player-1", TotalScore: 11},
			Found: true,
		}, nil)

	rec := s.do(http.MethodGet, "/api/players/player-1/score", "")

	s.Equal(http.StatusOK, rec.Code)
	var body models.PlayerScore
	s.decodeBody(rec, &body)
	s.Equal(11, body.TotalScore)
}

func (s *ServerTestSuite) TestGetPlayerScoreNotFound() {
	s.mockScorecard.EXPECT().
		GetPlayerScore(gomock.Any(), gomock.Any()).
		Return(&scorecard.GetPlayerScoreOutput{Found: false}, nil)

	rec := s.do(http.MethodGet, "/api/players/nobody/score", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestSetCurrentHole() {
	s.mockScorecard.EXPECT().
		SetCurrentHole(gomock.Any(), &scorecard.SetCurrentHoleInput{HoleNumber: 9}).
		Return(&scorecard.SetCurrentHoleOutput{CurrentHole: 9, Par: 5}, nil)

	rec := s.do(http.MethodPut, "/api/hole", `{"holeNumber":9}`)

	s.Equal(http.StatusOK, rec.Code)
	var body holeResponse
	s.decodeBody(rec, &body)
	s.Equal(9, body.CurrentHole)
	s.Equal(5, body.Par)
}

func (s *ServerTestSuite) TestGetStandingsPassesQuery() {
	s.mockScorecard.EXPECT().
		GetStandings(gomock.Any(), &scorecard.GetStandingsInput{
			Mode:  models.RankModeGross,
			Order: models.SortOrderDesc,
		}).
		Return(&scorecard.GetStandingsOutput{
			Mode:  models.RankModeGross,
			Order: models.SortOrderDesc,
			Rankings: []*models.RankedScore{
				{PlayerScore: models.PlayerScore{PlayerID: "player-1", TotalScore: 5}, Rank: 1},
			},
			Badges:      map[string]messaging.Badge{"player-1": messaging.BadgeGold},
			Completed:   0,
			Total:       1,
			CurrentHole: 1,
			Progress:    "Playing hole 1. 0 of 1 players have finished.",
		}, nil)

	rec := s.do(http.MethodGet, "/api/standings?mode=gross&order=desc", "")

	s.Equal(http.StatusOK, rec.Code)
	var body standingsResponse
	s.decodeBody(rec, &body)
	s.Equal(models.RankModeGross, body.Mode)
	s.Require().Len(body.Rankings, 1)
	s.Equal(1, body.Rankings[0].Rank)
	s.Equal("player-1", body.Rankings[0].PlayerID)
	s.Equal(messaging.BadgeGold, body.Rankings[0].Badge)
	s.NotNil(body.Groups)
}

func (s *ServerTestSuite) TestGetStandingsInvalidMode() {
	s.mockScorecard.EXPECT().
		GetStandings(gomock.Any(), gomock.Any()).
		Return(nil, ranking.ErrInvalidMode)

	rec := s.do(http.MethodGet, "/api/standings?mode=stableford", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestExportStandings() {
	s.mockScorecard.EXPECT().
		ExportStandings(gomock.Any(), gomock.Any(), &scorecard.GetStandingsInput{}).
		DoAndReturn(func(_ context.Context, w io.Writer, _ *scorecard.GetStandingsInput) error {
			_, err := w.Write([]byte("PK"))
			return err
		})

	rec := s.do(http.MethodGet, "/api/standings.xlsx", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(xlsxContentType, rec.Header().Get("Content-Type"))
	s.Contains(rec.Header().Get("Content-Disposition"), "standings.xlsx")
	s.Equal("PK", rec.Body.String())
}

func (s *ServerTestSuite) TestExportStandingsFailure() {
	s.mockScorecard.EXPECT().
		ExportStandings(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("boom"))

	rec := s.do(http.MethodGet, "/api/standings.xlsx", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
}

func (s *ServerTestSuite) TestAddScoreRecord() {
	s.mockScorecard.EXPECT().
		AddScoreRecord(gomock.Any(), &scorecard.AddScoreRecordInput{PlayerName: "Ann", Score: 82, Notes: "windy"}).
		Return(&scorecard.AddScoreRecordOutput{
			Record: &models.ScoreRecord{ID: "record-1", PlayerName: "Ann", Score: 82, Notes: "windy"},
		}, nil)

	rec := s.do(http.MethodPost, "/api/score-records", `{"playerName":"Ann","score":82,"notes":"windy"}`)

	s.Equal(http.StatusCreated, rec.Code)
	var body models.ScoreRecord
	s.decodeBody(rec, &body)
	s.Equal("record-1", body.ID)
}

func (s *ServerTestSuite) TestListScoreRecords() {
	s.mockScorecard.EXPECT().
		ListScoreRecords(gomock.Any(), &scorecard.ListScoreRecordsInput{PlayerName: "Ann"}).
		Return(&scorecard.ListScoreRecordsOutput{
			Records: []*models.ScoreRecord{{ID: "record-1", PlayerName: "Ann", Score: 82}},
		}, nil)

	rec := s.do(http.MethodGet, "/api/score-records?player=Ann", "")

	s.Equal(http.StatusOK, rec.Code)
	var body []models.ScoreRecord
	s.decodeBody(rec, &body)
	s.Require().Len(body, 1)
	s.Equal("record-1", body[0].ID)
}

func (s *ServerTestSuite) TestListScoreRecordsEmpty() {
	s.mockScorecard.EXPECT().
		ListScoreRecords(gomock.Any(), &scorecard.ListScoreRecordsInput{}).
		Return(&scorecard.ListScoreRecordsOutput{}, nil)

	rec := s.do(http.MethodGet, "/api/score-records", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *ServerTestSuite) TestDeleteScoreRecord() {
	s.mockScorecard.EXPECT().
		DeleteScoreRecord(gomock.Any(), &scorecard.DeleteScoreRecordInput{RecordID: "record-1"}).
		Return(nil)

	rec := s.do(http.MethodDelete, "/api/score-records/record-1", "")

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) TestDeleteScoreRecordNotFound() {
	s.mockScorecard.EXPECT().
		DeleteScoreRecord(gomock.Any(), gomock.Any()).
		Return(scorecard.ErrScoreRecordNotFound)

	rec := s.do(http.MethodDelete, "/api/score-records/missing", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestClosedSynchronizerIsUnavailable() {
	s.mockScorecard.EXPECT().
		SetCurrentHole(gomock.Any(), gomock.Any()).
		Return(nil, statesync.ErrClosed)

	rec := s.do(http.MethodPut, "/api/hole", `{"holeNumber":3}`)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "birdie_test_total",
		Help: "Test counter.",
	})
	s.Require().NoError(s.registry.Register(counter))
	counter.Inc()

	rec := s.do(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "birdie_test_total 1")
}
