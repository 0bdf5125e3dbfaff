package eventlog

import (
	"context"
	"time"

	"github.com/osse101/WhineTime/internal/logger"
)

// CleanupJob is a worker job that prunes old events
type CleanupJob struct {
	service       Service
	retentionDays int
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	return &CleanupJob{service: service, retentionDays: retentionDays}
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCleanupJobStarting, "retention_days", j.retentionDays)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		log.Error(LogMsgCleanupJobFailed, "error", err, "duration", time.Since(start))
		return err
	}

	log.Info(LogMsgCleanupJobCompleted, "deleted", count, "duration", time.Since(start))
	return nil
}
