package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/WhineTime/internal/event"
	"github.com/osse101/WhineTime/internal/server"
	"github.com/osse101/WhineTime/internal/session"
	"github.com/osse101/WhineTime/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Jobs               *BackgroundJobs
	SessionService     session.Service
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (no new requests)
// 2. Background jobs (no more ticks)
// 3. Session service (live games recorded as abandoned)
// 4. SSE hub
// 5. Event publisher (flush pending events)
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Jobs != nil {
		c.Jobs.Stop()
	}

	if c.SessionService != nil {
		if err := c.SessionService.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSessionShutdownFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
