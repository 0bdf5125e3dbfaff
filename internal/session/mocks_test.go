package session

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/event"
)

// MockOutcomes implements repository.Outcomes
type MockOutcomes struct {
	mock.Mock
}

func (m *MockOutcomes) SaveOutcome(ctx context.Context, outcome domain.Outcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func (m *MockOutcomes) GetOutcome(ctx context.Context, sessionID string) (*domain.Outcome, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outcome), args.Error(1)
}

func (m *MockOutcomes) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// recordingBus keeps every published event
type recordingBus struct {
	*event.MemoryBus
	mu     sync.Mutex
	events []event.Event
}

func newRecordingBus() *recordingBus {
	b := &recordingBus{MemoryBus: event.NewMemoryBus()}
	b.Subscribe(event.Wildcard, func(_ context.Context, evt event.Event) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.events = append(b.events, evt)
		return nil
	})
	return b
}

func (b *recordingBus) ofType(t event.Type) []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []event.Event
	for _, e := range b.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
