package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/game"
	"github.com/osse101/WhineTime/internal/session"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, req session.CreateRequest) (*session.Summary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Summary), args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, id string) (*game.Snapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Snapshot), args.Error(1)
}

func (m *MockSessionService) Advance(ctx context.Context, id string, dt time.Duration) (*game.Snapshot, error) {
	args := m.Called(ctx, id, dt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Snapshot), args.Error(1)
}

func (m *MockSessionService) Act(ctx context.Context, id string, action session.Action) (*session.ActionResult, error) {
	args := m.Called(ctx, id, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.ActionResult), args.Error(1)
}

func (m *MockSessionService) End(ctx context.Context, id string) (*domain.Outcome, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outcome), args.Error(1)
}

func (m *MockSessionService) Outcome(ctx context.Context, id string) (*domain.Outcome, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outcome), args.Error(1)
}

func (m *MockSessionService) AdvanceAll(ctx context.Context, dt time.Duration) int {
	return m.Called(ctx, dt).Int(0)
}

func (m *MockSessionService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockSessionService) ActiveCount() int {
	return m.Called().Int(0)
}

func (m *MockSessionService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
