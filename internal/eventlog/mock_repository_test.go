package eventlog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, entry Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockRepository) GetSessionEvents(ctx context.Context, sessionID string, filter Filter) ([]Entry, error) {
	args := m.Called(ctx, sessionID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
