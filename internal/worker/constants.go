package worker

// Log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgTickAdvanced    = "Tick advanced sessions"
	LogMsgTickSkipped     = "Tick skipped, no game time elapsed"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
