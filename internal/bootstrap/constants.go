package bootstrap

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Logger files
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "whinetime_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many older log files survive a restart
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingWhineTime   = "Starting WhineTime"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// Balance loading
const (
	LogMsgBalancesLoaded    = "Balance tables loaded"
	ErrMsgFailedLoadBalance = "failed to load balance for profile"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgEventStreamInitialized     = "Event stream initialized"
	ErrMsgFailedRegisterMetrics      = "failed to register active sessions gauge"
)

// Log messages for background jobs
const (
	LogMsgBackgroundJobsStarted = "Background jobs started"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgSessionShutdownFailed      = "Session service shutdown failed"
)
