package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/KirkDiggler/birdie/internal/models"
	"github.com/KirkDiggler/birdie/internal/services/statesync"
	"github.com/KirkDiggler/birdie/internal/services/statesync/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RunSynchronizedTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockSync *mocks.MockService
	logger   *slog.Logger
	ctx      context.Context
}

func (s *RunSynchronizedTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSync = mocks.NewMockService(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.ctx = context.Background()
}

func TestRunSynchronizedTestSuite(t *testing.T) {
	suite.Run(t, new(RunSynchronizedTestSuite))
}

func (s *RunSynchronizedTestSuite) expectStart() {
	s.mockSync.EXPECT().Start(gomock.Any()).Return(&statesync.StartOutput{
		State: models.NewApplicationState(),
	}, nil)
}

func (s *RunSynchronizedTestSuite) TestClosesAfterRun() {
	s.expectStart()
	s.mockSync.EXPECT().Close(gomock.Any()).Return(nil)

	ran := false
	err := runSynchronized(s.ctx, s.mockSync, time.Second, s.logger, func() error {
		ran = true
		return nil
	})

	s.NoError(err)
	s.True(ran)
}

func (s *RunSynchronizedTestSuite) TestClosesWhenWiringFails() {
	s.expectStart()
	s.mockSync.EXPECT().Close(gomock.Any()).Return(nil)

	wiringErr := errors.New("failed to create API")
	err := runSynchronized(s.ctx, s.mockSync, time.Second, s.logger, func() error {
		return wiringErr
	})

	s.ErrorIs(err, wiringErr)
}

func (s *RunSynchronizedTestSuite) TestCloseIsBoundedByTimeout() {
	s.expectStart()
	s.mockSync.EXPECT().Close(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		s.True(ok)
		s.WithinDuration(time.Now().Add(time.Second), deadline, time.Second)
		return ctx.Err()
	})

	err := runSynchronized(s.ctx, s.mockSync, time.Second, s.logger, func() error {
		return nil
	})

	s.NoError(err)
}

func (s *RunSynchronizedTestSuite) TestStartFailureSkipsRun() {
	s.mockSync.EXPECT().Start(gomock.Any()).Return(nil, statesync.ErrAlreadyStarted)

	err := runSynchronized(s.ctx, s.mockSync, time.Second, s.logger, func() error {
		s.Fail("run must not be called")
		return nil
	})

	s.ErrorIs(err, statesync.ErrAlreadyStarted)
}

func (s *RunSynchronizedTestSuite) TestParseLevel() {
	s.Equal(slog.LevelDebug, parseLevel("DEBUG"))
	s.Equal(slog.LevelWarn, parseLevel("warn"))
	s.Equal(slog.LevelError, parseLevel("error"))
	s.Equal(slog.LevelInfo, parseLevel("bogus"))
}
