package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/osse101/WhineTime/internal/eventlog"
)

// EventLogRepository keeps session events in insertion order
type EventLogRepository struct {
	mu     sync.RWMutex
	nextID int64
	events []eventlog.Entry
	now    func() time.Time
}

var _ eventlog.Repository = (*EventLogRepository)(nil)

// NewEventLogRepository creates an empty event store
func NewEventLogRepository() *EventLogRepository {
	return &EventLogRepository{now: time.Now}
}

// LogEvent appends the entry, assigning its ID and CreatedAt
func (r *EventLogRepository) LogEvent(_ context.Context, entry eventlog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = r.now()
	entry.Payload = slices.Clone(entry.Payload)
	r.events = append(r.events, entry)
	return nil
}

// GetSessionEvents returns up to filter.Limit matching events, oldest first
func (r *EventLogRepository) GetSessionEvents(_ context.Context, sessionID string, filter eventlog.Filter) ([]eventlog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = eventlog.DefaultTimelineLimit
	}

	out := make([]eventlog.Entry, 0)
	for _, e := range r.events {
		if e.SessionID != sessionID {
			continue
		}
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// CleanupOldEvents drops events created before now minus retentionDays
func (r *EventLogRepository) CleanupOldEvents(_ context.Context, retentionDays int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	before := len(r.events)
	r.events = slices.DeleteFunc(r.events, func(e eventlog.Entry) bool {
		return e.CreatedAt.Before(cutoff)
	})
	return int64(before - len(r.events)), nil
}
