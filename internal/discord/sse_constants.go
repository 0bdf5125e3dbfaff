package discord

import "time"

// SSE client configuration
const (
	sseInitialBackoff    = 1 * time.Second
	sseMaxBackoff        = 30 * time.Second
	sseBackoffMultiplier = 2.0
	sseBufferSize        = 64 * 1024
	pathEvents           = "/api/v1/events"
)

// SSE event types the bot announces
const (
	SSEEventTypeSessionFinished     = "session.finished"
	SSEEventTypeLevelUp             = "progression.level_up"
	SSEEventTypeAchievementUnlocked = "progression.achievement_unlocked"
)

// Stream control events carry no game data
const (
	sseEventConnected = "connected"
	sseEventKeepalive = "keepalive"
)

// SSE log messages
const (
	sseLogMsgClientConnected   = "SSE client connected"
	sseLogMsgClientStopped     = "SSE client stopped"
	sseLogMsgConnectionFailed  = "SSE connection failed"
	sseLogMsgParseError        = "Failed to parse SSE event"
	sseLogMsgHandlerError      = "SSE event handler error"
	sseLogMsgNotificationSent  = "Discord notification sent"
	sseLogMsgNotificationError = "Failed to send Discord notification"
)

// NotificationEventTypes lists the events SSENotifier handles
func NotificationEventTypes() []string {
	return []string{SSEEventTypeSessionFinished, SSEEventTypeLevelUp, SSEEventTypeAchievementUnlocked}
}
