package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WhineTime/internal/database/generated"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/eventlog"
)

type eventLogRepository struct {
	q *generated.Queries
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(pool *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{q: generated.New(pool)}
}

// LogEvent stores an event in session_events
func (r *eventLogRepository) LogEvent(ctx context.Context, entry eventlog.Entry) error {
	id, err := parseSessionUUID(entry.SessionID)
	if err != nil {
		return err
	}

	payload := []byte(entry.Payload)
	if len(payload) == 0 || string(payload) == "null" {
		payload = []byte("{}")
	}

	err = r.q.LogSessionEvent(ctx, generated.LogSessionEventParams{
		SessionID: pgtype.UUID{Bytes: id, Valid: true},
		EventType: entry.EventType,
		GameHours: entry.GameHours,
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("%w: log event: %w", domain.ErrDatabaseError, err)
	}
	return nil
}

// GetSessionEvents returns a session's events in the order they were logged
func (r *eventLogRepository) GetSessionEvents(ctx context.Context, sessionID string, filter eventlog.Filter) ([]eventlog.Entry, error) {
	id, err := parseSessionUUID(sessionID)
	if err != nil {
		return nil, err
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = eventlog.DefaultTimelineLimit
	}

	rows, err := r.q.GetSessionEvents(ctx, generated.GetSessionEventsParams{
		SessionID: pgtype.UUID{Bytes: id, Valid: true},
		EventType: filter.EventType,
		RowLimit:  int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: session events: %w", domain.ErrDatabaseError, err)
	}

	entries := make([]eventlog.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, eventlog.Entry{
			ID:        row.ID,
			SessionID: uuid.UUID(row.SessionID.Bytes).String(),
			EventType: row.EventType,
			GameHours: row.GameHours,
			Payload:   json.RawMessage(row.Payload),
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return entries, nil
}

// CleanupOldEvents removes events older than the specified number of days
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	n, err := r.q.CleanupSessionEvents(ctx, int32(retentionDays))
	if err != nil {
		return 0, fmt.Errorf("%w: cleanup events: %w", domain.ErrDatabaseError, err)
	}
	return n, nil
}
