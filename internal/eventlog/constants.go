package eventlog

import "time"

// Defaults
const (
	DefaultTimelineLimit = 100
	MaxTimelineLimit     = 1000
	DefaultRetentionDays = 30
	CleanupInterval      = 24 * time.Hour
)

// Log messages - service events
const (
	LogMsgSubscribed       = "Event log subscribed to bus"
	LogMsgSkippedNoSession = "Event has no session, not logged"
	LogMsgFailedToLogEvent = "Failed to log event"
	LogMsgEventLogged      = "Event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Error contexts
const (
	ErrContextMarshalPayload = "failed to marshal event payload"
)
