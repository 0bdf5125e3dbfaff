package eventlog

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one logged session event
type Entry struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"session_id"`
	EventType string          `json:"event_type"`
	GameHours float64         `json:"game_hours"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Filter narrows a timeline query. Zero values match everything.
type Filter struct {
	EventType string
	Limit     int
}

// Repository stores session events
type Repository interface {
	// LogEvent appends an entry; ID and CreatedAt are assigned by the store
	LogEvent(ctx context.Context, entry Entry) error

	// GetSessionEvents returns a session's events oldest first
	GetSessionEvents(ctx context.Context, sessionID string, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes events older than the retention window and
	// reports how many were deleted
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
