package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationStateIsDefault(t *testing.T) {
	state := NewApplicationState()

	assert.True(t, state.IsDefault())
	assert.True(t, state.IsLegacyEmpty())
	assert.Equal(t, DefaultHole, state.CurrentHole)
	assert.NotNil(t, state.Groups)
	assert.NotNil(t, state.PlayerScores)
	assert.NotNil(t, state.ScoreRecords)
}

func TestIsLegacyEmptyIgnoresGroupsAndHole(t *testing.T) {
	state := NewApplicationState()
	state.Groups = []*Group{{ID: "group-1", Name: "A", Players: []*Player{}}}
	state.PlayerScores = []*PlayerScore{{PlayerID: "player-1"}}
	state.CurrentHole = 9

	assert.True(t, state.IsLegacyEmpty())
	assert.False(t, state.IsDefault())
}

func TestIsLegacyEmptyLegacyFields(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*ApplicationState)
	}{
		{name: "count", apply: func(s *ApplicationState) { s.Count = 1 }},
		{name: "display name", apply: func(s *ApplicationState) { s.DisplayName = "Taro" }},
		{name: "score records", apply: func(s *ApplicationState) {
			s.ScoreRecords = []*ScoreRecord{{ID: "record-1", PlayerName: "Ann", Score: 80}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewApplicationState()
			tt.apply(state)

			assert.False(t, state.IsLegacyEmpty())
			assert.False(t, state.IsDefault())
		})
	}
}

func TestIsLegacyEmptyIgnoresName(t *testing.T) {
	state := NewApplicationState()
	state.Name = "old"

	assert.True(t, state.IsLegacyEmpty())
	assert.False(t, state.IsDefault())
}

func TestNormalizeFillsNilCollections(t *testing.T) {
	state := (&ApplicationState{CurrentHole: 2}).Normalize()

	assert.Equal(t, []*Group{}, state.Groups)
	assert.Equal(t, []*PlayerScore{}, state.PlayerScores)
	assert.Equal(t, []*ScoreRecord{}, state.ScoreRecords)
	assert.Equal(t, 2, state.CurrentHole)
}

func TestNormalizeDropsNullEntries(t *testing.T) {
	state := &ApplicationState{
		Groups: []*Group{
			nil,
			{ID: "group-1", Players: []*Player{nil, {ID: "player-1", GroupID: "group-1"}}},
		},
		PlayerScores: []*PlayerScore{nil, {PlayerID: "player-1"}},
		ScoreRecords: []*ScoreRecord{nil},
		CurrentHole:  1,
	}

	state.Normalize()

	require.Len(t, state.Groups, 1)
	require.Len(t, state.Groups[0].Players, 1)
	assert.Equal(t, "player-1", state.Groups[0].Players[0].ID)
	require.Len(t, state.PlayerScores, 1)
	assert.Empty(t, state.ScoreRecords)
	assert.NotPanics(t, func() { state.Clone() })
}

func TestNormalizeRecomputesTotals(t *testing.T) {
	state := NewApplicationState()
	state.PlayerScores = []*PlayerScore{{
		PlayerID:   "player-1",
		HoleScores: []HoleScore{{HoleNumber: 1, Strokes: 5, Par: 4}, {HoleNumber: 2, Strokes: 2, Par: 3}},
		TotalScore: 40,
		TotalPar:   1,
		NetScore:   39,
	}}

	state.Normalize()

	assert.Equal(t, 7, state.PlayerScores[0].TotalScore)
	assert.Equal(t, 7, state.PlayerScores[0].TotalPar)
	assert.Equal(t, 0, state.PlayerScores[0].NetScore)
}

func TestPlayerScoreAcceptsOlderFieldNames(t *testing.T) {
	var score PlayerScore
	require.NoError(t, json.Unmarshal([]byte(`{"playerId":"p1","scores":[{"holeNumber":3,"score":4,"par":5}]}`), &score))

	assert.Equal(t, "p1", score.PlayerID)
	assert.Equal(t, []HoleScore{{HoleNumber: 3, Strokes: 4, Par: 5}}, score.HoleScores)

	var current PlayerScore
	require.NoError(t, json.Unmarshal([]byte(`{"playerId":"p1","holeScores":[{"holeNumber":3,"strokes":6,"par":5}]}`), &current))
	assert.Equal(t, []HoleScore{{HoleNumber: 3, Strokes: 6, Par: 5}}, current.HoleScores)
}

func TestCloneSkipsNullEntries(t *testing.T) {
	state := &ApplicationState{
		Groups:       []*Group{nil},
		PlayerScores: []*PlayerScore{nil},
		ScoreRecords: []*ScoreRecord{nil},
	}

	clone := state.Clone()

	assert.Empty(t, clone.Groups)
	assert.Empty(t, clone.PlayerScores)
	assert.Empty(t, clone.ScoreRecords)
}

func TestCloneIsDeep(t *testing.T) {
	state := NewApplicationState()
	state.Groups = []*Group{{
		ID:      "group-1",
		Name:    "A",
		Players: []*Player{{ID: "player-1", Name: "Ann", GroupID: "group-1"}},
	}}
	state.PlayerScores = []*PlayerScore{{
		PlayerID:   "player-1",
		HoleScores: []HoleScore{{HoleNumber: 1, Strokes: 4, Par: 4}},
		TotalScore: 4,
		TotalPar:   4,
	}}
	state.ScoreRecords = []*ScoreRecord{{ID: "record-1", Score: 80, Date: time.Unix(0, 0)}}

	clone := state.Clone()
	require.Equal(t, state, clone)

	clone.Groups[0].Players[0].Name = "Changed"
	clone.PlayerScores[0].HoleScores[0].Strokes = 9
	clone.ScoreRecords[0].Score = 1
	clone.CurrentHole = 5

	assert.Equal(t, "Ann", state.Groups[0].Players[0].Name)
	assert.Equal(t, 4, state.PlayerScores[0].HoleScores[0].Strokes)
	assert.Equal(t, 80, state.ScoreRecords[0].Score)
	assert.Equal(t, DefaultHole, state.CurrentHole)
}

func TestCloneNil(t *testing.T) {
	var state *ApplicationState
	assert.Nil(t, state.Clone())
}

func TestFindPlayerScore(t *testing.T) {
	state := NewApplicationState()
	state.PlayerScores = []*PlayerScore{{PlayerID: "player-1", TotalScore: 7}}

	score, ok := state.FindPlayerScore("player-1")
	require.True(t, ok)
	assert.Equal(t, 7, score.TotalScore)

	_, ok = state.FindPlayerScore("player-2")
	assert.False(t, ok)
}

func TestFindPlayer(t *testing.T) {
	groups := []*Group{
		{ID: "group-1", Players: []*Player{{ID: "player-1", GroupID: "group-1"}}},
		{ID: "group-2", Players: []*Player{{ID: "player-2", GroupID: "group-2"}}},
	}

	player, group, ok := FindPlayer(groups, "player-2")
	require.True(t, ok)
	assert.Equal(t, "player-2", player.ID)
	assert.Equal(t, "group-2", group.ID)

	_, _, ok = FindPlayer(groups, "missing")
	assert.False(t, ok)
}

func TestGroupIsFull(t *testing.T) {
	group := &Group{}
	for i := 0; i < GroupCapacity-1; i++ {
		group.Players = append(group.Players, &Player{})
	}
	assert.False(t, group.IsFull())

	group.Players = append(group.Players, &Player{})
	assert.True(t, group.IsFull())
}

func TestPlayerScoreIsComplete(t *testing.T) {
	score := &PlayerScore{}
	for hole := 1; hole <= 18; hole++ {
		assert.False(t, score.IsComplete(18))
		score.HoleScores = append(score.HoleScores, HoleScore{HoleNumber: hole, Strokes: 4, Par: 4})
	}
	assert.True(t, score.IsComplete(18))
}
