package sse

import (
	"context"

	"github.com/osse101/WhineTime/internal/event"
	"github.com/osse101/WhineTime/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe forwards every bus event to the hub
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.Wildcard, s.forward)
	logger.Info(LogMsgSubscriberReady)
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	hours, _ := evt.GetMetadataValue(event.MetadataGameHours).(float64)
	out := Event{
		Type:      string(evt.Type),
		SessionID: evt.SessionID(),
		GameHours: hours,
		Payload:   evt.Payload,
	}
	s.hub.Broadcast(out)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", out.Type, "session_id", out.SessionID)
	return nil
}
