package config

import "time"

// Defaults for optional environment variables
const (
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultTickInterval     = time.Second
	DefaultTimeScale        = 60.0
	DefaultSessionCacheSize = 1000
	DefaultSessionTTL       = 24 * time.Hour
	DefaultWorkerCount      = 2
	DefaultWorkerQueueSize  = 100

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
	DefaultEventRetentionDays  = 30
)

// Balance profiles
const (
	ProfileEasy   = "easy"
	ProfileNormal = "normal"
	ProfileHard   = "hard"
)

// Configuration file paths
const (
	ConfigPathBalance = "configs/balance.yaml"
)
