package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/WhineTime/internal/event"
	"github.com/osse101/WhineTime/internal/logger"
)

// Service records every session event so a game can be replayed as a
// timeline after the fact
type Service interface {
	// Subscribe registers the logger for every event on the bus
	Subscribe(bus event.Bus)

	// Timeline returns the events of one session
	Timeline(ctx context.Context, sessionID string, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes events older than retentionDays
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.Wildcard, s.handleEvent)
	logger.Info(LogMsgSubscribed)
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	sessionID := evt.SessionID()
	if sessionID == "" {
		log.Debug(LogMsgSkippedNoSession, "type", evt.Type)
		return nil
	}

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextMarshalPayload, err)
	}
	hours, _ := evt.GetMetadataValue(event.MetadataGameHours).(float64)

	entry := Entry{
		SessionID: sessionID,
		EventType: string(evt.Type),
		GameHours: hours,
		Payload:   payload,
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type, "session_id", sessionID)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "session_id", sessionID)
	return nil
}

func (s *service) Timeline(ctx context.Context, sessionID string, filter Filter) ([]Entry, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultTimelineLimit
	case filter.Limit > MaxTimelineLimit:
		filter.Limit = MaxTimelineLimit
	}
	return s.repo.GetSessionEvents(ctx, sessionID, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
