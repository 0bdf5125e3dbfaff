package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WhineTime/internal/event"
)

func TestService_LogsSessionEvents(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	bus := event.NewMemoryBus()
	NewService(repo).Subscribe(bus)

	repo.On("LogEvent", mock.Anything, mock.MatchedBy(func(e Entry) bool {
		return e.SessionID == "s1" &&
			e.EventType == string(event.DaySettled) &&
			e.GameHours == 24 &&
			string(e.Payload) == `{"day":1}`
	})).Return(nil).Once()

	// ACT
	err := bus.Publish(context.Background(), event.NewSessionEvent("s1", event.DaySettled, 24, map[string]int{"day": 1}))

	// ASSERT
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_SkipsEventsWithoutSession(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)

	err := svc.handleEvent(context.Background(), event.Event{Type: event.LevelUp, Payload: 1})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything)
}

func TestService_StoreFailureReachesPublisher(t *testing.T) {
	repo := new(MockRepository)
	bus := event.NewMemoryBus()
	NewService(repo).Subscribe(bus)
	repo.On("LogEvent", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := bus.Publish(context.Background(), event.NewSessionEvent("s1", event.LevelUp, 1, nil))

	assert.Error(t, err)
}

func TestService_TimelineClampsLimit(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"default", 0, DefaultTimelineLimit},
		{"kept", 5, 5},
		{"capped", MaxTimelineLimit + 1, MaxTimelineLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("GetSessionEvents", mock.Anything, "s1", Filter{Limit: tt.want}).Return([]Entry{}, nil)

			_, err := NewService(repo).Timeline(context.Background(), "s1", Filter{Limit: tt.in})

			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestCleanupJob_Process(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CleanupOldEvents", mock.Anything, 10).Return(int64(100), nil).Once()

	err := NewCleanupJob(NewService(repo), 10).Process(context.Background())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCleanupJob_Error(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CleanupOldEvents", mock.Anything, 10).Return(int64(0), errors.New("boom"))

	assert.Error(t, NewCleanupJob(NewService(repo), 10).Process(context.Background()))
}
