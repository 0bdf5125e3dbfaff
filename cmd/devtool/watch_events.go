package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/osse101/WhineTime/internal/discord"
	"github.com/osse101/WhineTime/internal/domain"
)

// WatchEventsCommand tails the API's event stream
type WatchEventsCommand struct{}

func (c *WatchEventsCommand) Name() string {
	return "watch-events"
}

func (c *WatchEventsCommand) Description() string {
	return "Print live game events from the API stream (optional comma list of types)"
}

var allEventTypes = []string{
	domain.EventTypeSessionCreated,
	domain.EventTypeSessionFinished,
	domain.EventTypeDaySettled,
	domain.EventTypeLevelUp,
	domain.EventTypeAchievementUnlocked,
	domain.EventTypeTaskFinished,
	domain.EventTypeLeaveRevoked,
	domain.EventTypeRandomEvent,
}

func (c *WatchEventsCommand) Run(args []string) error {
	baseURL, apiKey := apiTarget()
	types := allEventTypes
	if len(args) > 0 {
		types = strings.Split(args[0], ",")
	}

	PrintHeader("Watching events (Ctrl-C to stop)")
	client := discord.NewSSEClient(baseURL, apiKey, types)
	for _, t := range types {
		client.OnEvent(t, func(e discord.SSEEvent) error {
			PrintInfo("%-34s session=%s hours=%.1f %s", e.Type, e.SessionID, e.GameHours, e.Payload)
			return nil
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client.Start(ctx)
	<-ctx.Done()
	client.Stop()
	return nil
}
