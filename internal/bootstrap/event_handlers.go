package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/WhineTime/internal/event"
	"github.com/osse101/WhineTime/internal/eventlog"
	"github.com/osse101/WhineTime/internal/metrics"
	"github.com/osse101/WhineTime/internal/session"
	"github.com/osse101/WhineTime/internal/sse"
)

// EventHandlerDependencies holds what the bus subscribers need
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	SessionService  session.Service
	Hub             *sse.Hub
	Registerer      prometheus.Registerer
}

// RegisterEventHandlers subscribes the metrics collector, the event log and
// the SSE forwarder to the bus, and registers the active sessions gauge.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)

	reg := deps.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := metrics.RegisterActiveSessions(reg, deps.SessionService.ActiveCount); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	deps.EventLogService.Subscribe(deps.EventBus)
	slog.Info(LogMsgEventLoggerInitialized)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgEventStreamInitialized)
	}
	return nil
}
