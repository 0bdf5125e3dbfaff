package metrics

import (
	"context"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/event"
	"github.com/osse101/WhineTime/internal/game"
	"github.com/osse101/WhineTime/internal/logger"
	"github.com/osse101/WhineTime/internal/progression"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event on the bus
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.Wildcard, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SessionCreated:
		SessionsCreated.Inc()

	case event.SessionFinished:
		p, err := event.DecodePayload[event.SessionFinishedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type, "error", err)
			return nil
		}
		SessionsFinished.WithLabelValues(string(p.Outcome.Result)).Inc()
		DaysSurvived.Observe(float64(p.Outcome.DaysSurvived))

	case event.DaySettled:
		DaysSettled.Inc()

	case event.RandomEvent:
		if kind, ok := evt.Payload.(game.RandomEvent); ok && kind != game.EventNone {
			RandomEvents.WithLabelValues(string(kind)).Inc()
		}

	case event.LevelUp:
		if up, ok := evt.Payload.(progression.LevelUp); ok {
			LevelUps.Add(float64(max(up.NewLevel-up.OldLevel, 1)))
		}

	case event.TaskFinished:
		if tf, ok := evt.Payload.(game.TaskFinished); ok {
			outcome := TaskOutcomeFailed
			if tf.Task.Status == domain.TaskCompleted {
				outcome = TaskOutcomeCompleted
			}
			TasksFinished.WithLabelValues(outcome).Inc()
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
