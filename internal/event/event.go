package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/WhineTime/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// SessionID returns the session the event belongs to, if any
func (e Event) SessionID() string {
	id, _ := e.GetMetadataValue(MetadataSessionID).(string)
	return id
}

// Session event types
const (
	SessionCreated      Type = domain.EventTypeSessionCreated
	SessionFinished     Type = domain.EventTypeSessionFinished
	DaySettled          Type = domain.EventTypeDaySettled
	LevelUp             Type = domain.EventTypeLevelUp
	AchievementUnlocked Type = domain.EventTypeAchievementUnlocked
	TaskFinished        Type = domain.EventTypeTaskFinished
	LeaveRevoked        Type = domain.EventTypeLeaveRevoked
	RandomEvent         Type = domain.EventTypeRandomEvent

	// Wildcard subscribers receive every event regardless of type
	Wildcard Type = "*"
)

// Types lists every session event type
func Types() []Type {
	return []Type{
		SessionCreated,
		SessionFinished,
		DaySettled,
		LevelUp,
		AchievementUnlocked,
		TaskFinished,
		LeaveRevoked,
		RandomEvent,
	}
}

// SessionCreatedPayloadV1 is the typed payload for session created events
type SessionCreatedPayloadV1 struct {
	PlayerName string `json:"player_name"`
	Profile    string `json:"profile"`
}

// SessionFinishedPayloadV1 is the typed payload for session finished events
type SessionFinishedPayloadV1 struct {
	Outcome domain.Outcome `json:"outcome"`
}

// NewSessionEvent wraps a simulation payload for a session
func NewSessionEvent(sessionID string, eventType Type, gameHours float64, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataSessionID: sessionID,
			MetadataGameHours: gameHours,
		},
	}
}

// NewSessionCreatedEvent creates a session created event
func NewSessionCreatedEvent(sessionID, playerName, profile string) Event {
	return NewSessionEvent(sessionID, SessionCreated, 0, SessionCreatedPayloadV1{
		PlayerName: playerName,
		Profile:    profile,
	})
}

// NewSessionFinishedEvent creates a session finished event from the recorded outcome
func NewSessionFinishedEvent(o domain.Outcome) Event {
	return NewSessionEvent(o.SessionID, SessionFinished, o.GameHours, SessionFinishedPayloadV1{Outcome: o})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type, then the wildcard
// handlers, synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[event.Type])+len(b.handlers[Wildcard]))
	handlers = append(handlers, b.handlers[event.Type]...)
	if event.Type != Wildcard {
		handlers = append(handlers, b.handlers[Wildcard]...)
	}
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
