package scorecard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/birdie/internal/common/clock"
	"github.com/KirkDiggler/birdie/internal/common/uuid"
	"github.com/KirkDiggler/birdie/internal/course"
	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/KirkDiggler/birdie/internal/repositories/score_records"
	"github.com/KirkDiggler/birdie/internal/services/export"
	"github.com/KirkDiggler/birdie/internal/services/ledger"
	"github.com/KirkDiggler/birdie/internal/services/messaging"
	"github.com/KirkDiggler/birdie/internal/services/ranking"
	"github.com/KirkDiggler/birdie/internal/services/roster"
	"github.com/KirkDiggler/birdie/internal/services/statesync"
)

// service implements the Service interface
type service struct {
	sync         statesync.Service
	ledger       ledger.Service
	ranking      ranking.Service
	roster       roster.Service
	messaging    messaging.Service
	course       *course.Course
	scoreRecords score_records.Repository
	clock        clock.Clock
	uuid         uuid.UUID
	logger       *slog.Logger
}

// New creates a new scorecard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sync == nil {
		return nil, ErrNilSync
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	if cfg.Ranking == nil {
		return nil, ErrNilRanking
	}

	if cfg.Roster == nil {
		return nil, ErrNilRoster
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Course == nil {
		return nil, ErrNilCourse
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	u := cfg.UUIDGenerator
	if u == nil {
		u = uuid.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		sync:         cfg.Sync,
		ledger:       cfg.Ledger,
		ranking:      cfg.Ranking,
		roster:       cfg.Roster,
		messaging:    cfg.Messaging,
		course:       cfg.Course,
		scoreRecords: cfg.ScoreRecords,
		clock:        c,
		uuid:         u,
		logger:       logger,
	}, nil
}

// CreateGroup adds an empty playing group
func (s *service) CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var group *models.Group
	_, err := s.sync.Update(ctx, &statesync.UpdateInput{
		Apply: func(state *models.ApplicationState) error {
			out, err := s.roster.CreateGroup(&roster.CreateGroupInput{
				Groups: state.Groups,
				Name:   input.Name,
			})
			if err != nil {
				return err
			}
			state.Groups = out.Groups
			group = out.Group
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &CreateGroupOutput{
		Group: group.Clone(),
	}, nil
}

// RemoveGroup deletes a group and its players
func (s *service) RemoveGroup(ctx context.Context, input *RemoveGroupInput) (*RemoveGroupOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var removed *models.Group
	_, err := s.sync.Update(ctx, &statesync.UpdateInput{
		Apply: func(state *models.ApplicationState) error {
			out, err := s.roster.RemoveGroup(&roster.RemoveGroupInput{
				Groups:  state.Groups,
				GroupID: input.GroupID,
			})
			if err != nil {
				return err
			}
			state.Groups = out.Groups
			removed = out.Removed
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &RemoveGroupOutput{
		Group: removed.Clone(),
	}, nil
}

// AddPlayer adds a player to a group
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var added *roster.AddPlayerOutput
	_, err := s.sync.Update(ctx, &statesync.UpdateInput{
		Apply: func(state *models.ApplicationState) error {
			out, err := s.roster.AddPlayer(&roster.AddPlayerInput{
				Groups:  state.Groups,
				GroupID: input.GroupID,
				Name:    input.Name,
			})
			if err != nil {
				return err
			}
			state.Groups = out.Groups
			added = out
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &AddPlayerOutput{
		Player:    added.Player.Clone(),
		GroupFull: added.GroupFull,
	}, nil
}

// RemovePlayer deletes a player
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var removed *models.Player
	_, err := s.sync.Update(ctx, &statesync.UpdateInput{
		Apply: func(state *models.ApplicationState) error {
			out, err := s.roster.RemovePlayer(&roster.RemovePlayerInput{
				Groups:   state.Groups,
				PlayerID: input.PlayerID,
			})
			if err != nil {
				return err
			}
			state.Groups = out.Groups
			removed = out.Removed
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &RemovePlayerOutput{
		Player: removed.Clone(),
	}, nil
}

// resolveHole defaults a zero hole number to the current hole
func (s *service) resolveHole(holeNumber, currentHole int) (int, error) {
	if holeNumber == 0 {
		holeNumber = currentHole
	}

	if !s.course.ValidHole(holeNumber) {
		return 0, ErrInvalidHole
	}

	return holeNumber, nil
}

// recordScore applies one entry to the state.
// It reports false when the entry was ignored.
func (s *service) recordScore(state *models.ApplicationState, playerID string, holeNumber, strokes int) (*models.PlayerScore, bool, error) {
	if strokes <= 0 {
		return nil, false, nil
	}

	out, err := s.ledger.RecordScore(&ledger.RecordScoreInput{
		Groups:     state.Groups,
		Scores:     state.PlayerScores,
		PlayerID:   playerID,
		HoleNumber: holeNumber,
		Strokes:    strokes,
	})
	if err != nil {
		return nil, false, err
	}

	if !out.Recorded {
		return nil, false, nil
	}

	state.PlayerScores = out.Scores
	return out.Score, true, nil
}

// EnterScore records one hole score.
// Non-positive strokes and unknown players are ignored without error.
func (s *service) EnterScore(ctx context.Context, input *EnterScoreInput) (*EnterScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var score *models.PlayerScore
	var holeNumber int
	_, err := s.sync.Update(ctx, &statesync.UpdateInput{
		Apply: func(state *models.ApplicationState) error {
			hole, err := s.resolveHole(input.HoleNumber, state.CurrentHole)
			if err != nil {
				return err
			}
			holeNumber = hole

			recorded, ok, err := s.recordScore(state, input.PlayerID, hole, input.Strokes)
			if err != nil {
				return err
			}
			if !ok {
				return statesync.ErrNoChange
			}
			score = recorded
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	if score == nil {
		s.logger.Debug("Ignored score entry",
			"player_id", input.PlayerID,
			"hole", holeNumber,
			"strokes", input.Strokes)
		return &EnterScoreOutput{
			Recorded:   false,
			HoleNumber: holeNumber,
		}, nil
	}

	output := &EnterScoreOutput{
		Recorded:   true,
		Score:      score.Clone(),
		HoleNumber: holeNumber,
	}

	par, _ := s.course.Par(holeNumber)
	msg, err := s.messaging.GetScoreEntryMessage(ctx, &messaging.GetScoreEntryMessageInput{
		PlayerName: score.PlayerName,
		HoleNumber: holeNumber,
		Strokes:    input.Strokes,
		Par:        par,
	})
	if err != nil {
		s.logger.Warn("Failed to build score entry message", "error", err)
		return output, nil
	}

	output.Result = msg.Result
	output.Label = msg.Label
	output.Message = msg.Message

	return output, nil
}

// EnterHoleScores records the scores of several players for one hole in a single update
func (s *service) EnterHoleScores(ctx context.Context, input *EnterHoleScoresInput) (*EnterHoleScoresOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var output *EnterHoleScoresOutput
	_, err := s.sync.Update(ctx, &statesync.UpdateInput{
		Apply: func(state *models.ApplicationState) error {
			hole, err := s.resolveHole(input.HoleNumber, state.CurrentHole)
			if err != nil {
				return err
			}

			output = &EnterHoleScoresOutput{
				HoleNumber: hole,
				Recorded:   []string{},
				Skipped:    []string{},
			}

			for _, entry := range input.Entries {
				_, ok, err := s.recordScore(state, entry.PlayerID, hole, entry.Strokes)
				if err != nil {
					return err
				}
				if ok {
					output.Recorded = append(output.Recorded, entry.PlayerID)
				} else {
					output.Skipped = append(output.Skipped, entry.PlayerID)
				}
			}

			if len(output.Recorded) == 0 {
				return statesync.ErrNoChange
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetPlayerScore looks up a player's score aggregate
func (s *service) GetPlayerScore(ctx context.Context, input *GetPlayerScoreInput) (*GetPlayerScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.ledger.GetScore(&ledger.GetScoreInput{
		Scores:   s.sync.State().PlayerScores,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &GetPlayerScoreOutput{
		Score: out.Score,
		Found: out.Found,
	}, nil
}

// SetCurrentHole moves play to another hole
func (s *service) SetCurrentHole(ctx context.Context, input *SetCurrentHoleInput) (*SetCurrentHoleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !s.course.ValidHole(input.HoleNumber) {
		return nil, ErrInvalidHole
	}

	_, err := s.sync.Update(ctx, &statesync.UpdateInput{
		Apply: func(state *models.ApplicationState) error {
			if state.CurrentHole == input.HoleNumber {
				return statesync.ErrNoChange
			}
			state.CurrentHole = input.HoleNumber
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	par, _ := s.course.Par(input.HoleNumber)
	return &SetCurrentHoleOutput{
		CurrentHole: input.HoleNumber,
		Par:         par,
	}, nil
}

// GetStandings ranks the players and summarises the groups
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	mode := input.Mode
	if mode == "" {
		mode = models.RankModeNet
	}

	order := input.Order
	if order == "" {
		order = models.SortOrderAsc
	}

	state := s.sync.State()

	ranked, err := s.ranking.Rank(&ranking.RankInput{
		Scores: state.PlayerScores,
		Mode:   mode,
		Order:  order,
	})
	if err != nil {
		return nil, err
	}

	stats, err := s.ranking.GroupStats(&ranking.GroupStatsInput{
		Scores: state.PlayerScores,
	})
	if err != nil {
		return nil, err
	}

	progress, err := s.ranking.Progress(&ranking.ProgressInput{
		Scores: state.PlayerScores,
	})
	if err != nil {
		return nil, err
	}

	output := &GetStandingsOutput{
		Mode:        mode,
		Order:       order,
		Rankings:    ranked.Rankings,
		Badges:      make(map[string]messaging.Badge),
		Groups:      stats.Groups,
		Completed:   progress.Completed,
		Total:       progress.Total,
		CurrentHole: state.CurrentHole,
	}

	for _, r := range ranked.Rankings {
		badge, err := s.messaging.GetRankBadge(ctx, &messaging.GetRankBadgeInput{Rank: r.Rank})
		if err != nil {
			return nil, fmt.Errorf("failed to get rank badge: %w", err)
		}
		if badge.Badge != messaging.BadgeNone {
			output.Badges[r.PlayerID] = badge.Badge
		}
	}

	msg, err := s.messaging.GetProgressMessage(ctx, &messaging.GetProgressMessageInput{
		CurrentHole: state.CurrentHole,
		Completed:   progress.Completed,
		Total:       progress.Total,
	})
	if err != nil {
		s.logger.Warn("Failed to build progress message", "error", err)
	} else {
		output.Progress = msg.Message
	}

	return output, nil
}

// GetState returns a copy of the whole state
func (s *service) GetState(ctx context.Context) (*GetStateOutput, error) {
	return &GetStateOutput{
		State: s.sync.State(),
	}, nil
}

// GetStatus reports whether the remote replica is connected
func (s *service) GetStatus(ctx context.Context) (*GetStatusOutput, error) {
	status := s.sync.Status()
	return &GetStatusOutput{
		Connected:   status.Connected,
		Subscribed:  status.Subscribed,
		CurrentHole: s.sync.State().CurrentHole,
		CourseName:  s.course.Name(),
	}, nil
}

// AddScoreRecord appends a free-form score record and mirrors it to the
// scores collection when one is configured
func (s *service) AddScoreRecord(ctx context.Context, input *AddScoreRecordInput) (*AddScoreRecordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.PlayerName)
	if name == "" {
		return nil, ErrEmptyPlayerName
	}

	record := &models.ScoreRecord{
		ID:         s.uuid.NewUUID(),
		PlayerName: name,
		Score:      input.Score,
		Date:       s.clock.Now(),
		Notes:      input.Notes,
	}

	_, err := s.sync.Update(ctx, &statesync.UpdateInput{
		Apply: func(state *models.ApplicationState) error {
			rc := *record
			state.ScoreRecords = append(state.ScoreRecords, &rc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	if s.scoreRecords != nil {
		err := s.scoreRecords.AddScoreRecord(ctx, &score_records.AddScoreRecordInput{
			Record: record,
		})
		if err != nil {
			s.logger.Warn("Failed to mirror score record",
				"record_id", record.ID,
				"error", err)
		}
	}

	return &AddScoreRecordOutput{
		Record: record,
	}, nil
}

// ListScoreRecords lists the score records ordered by date.
// The scores collection is read when configured, the synchronized state otherwise.
func (s *service) ListScoreRecords(ctx context.Context, input *ListScoreRecordsInput) (*ListScoreRecordsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.PlayerName)

	if s.scoreRecords != nil {
		out, err := s.scoreRecords.ListScoreRecords(ctx, &score_records.ListScoreRecordsInput{
			PlayerName: name,
		})
		if err == nil {
			return &ListScoreRecordsOutput{
				Records: out.Records,
			}, nil
		}
		s.logger.Warn("Failed to list mirrored score records, using local state", "error", err)
	}

	records := make([]*models.ScoreRecord, 0)
	for _, r := range s.sync.State().ScoreRecords {
		if name == "" || r.PlayerName == name {
			records = append(records, r)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return &ListScoreRecordsOutput{
		Records: records,
	}, nil
}

// DeleteScoreRecord removes a free-form score record
func (s *service) DeleteScoreRecord(ctx context.Context, input *DeleteScoreRecordInput) error {
	if input == nil {
		return ErrNilInput
	}

	_, err := s.sync.Update(ctx, &statesync.UpdateInput{
		Apply: func(state *models.ApplicationState) error {
			for i, r := range state.ScoreRecords {
				if r.ID == input.RecordID {
					state.ScoreRecords = append(state.ScoreRecords[:i], state.ScoreRecords[i+1:]...)
					return nil
				}
			}
			return ErrScoreRecordNotFound
		},
	})
	if err != nil {
		return err
	}

	if s.scoreRecords != nil {
		err := s.scoreRecords.DeleteScoreRecord(ctx, &score_records.DeleteScoreRecordInput{
			RecordID: input.RecordID,
		})
		if err != nil && !errors.Is(err, score_records.ErrScoreRecordNotFound) {
			s.logger.Warn("Failed to delete mirrored score record",
				"record_id", input.RecordID,
				"error", err)
		}
	}

	return nil
}

// ExportStandings writes the standings as an XLSX workbook
func (s *service) ExportStandings(ctx context.Context, w io.Writer, input *GetStandingsInput) error {
	standings, err := s.GetStandings(ctx, input)
	if err != nil {
		return err
	}

	return export.WriteStandingsXLSX(w, &export.WriteStandingsInput{
		Rankings: standings.Rankings,
		Groups:   standings.Groups,
		Course:   s.course,
	})
}
