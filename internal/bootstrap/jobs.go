package bootstrap

import (
	"log/slog"

	"github.com/osse101/WhineTime/internal/clock"
	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/eventlog"
	"github.com/osse101/WhineTime/internal/scheduler"
	"github.com/osse101/WhineTime/internal/session"
	"github.com/osse101/WhineTime/internal/worker"
)

// BackgroundJobs owns the worker pool and the scheduler feeding it
type BackgroundJobs struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackgroundJobs starts the pool, then schedules the session tick every
// TickInterval and the event log cleanup once a day.
func StartBackgroundJobs(cfg *config.Config, sessions session.Service, events eventlog.Service) *BackgroundJobs {
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = config.DefaultTickInterval
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(tick, worker.NewTickJob(sessions, clock.NewRealClock(), cfg.TimeScale))
	sched.Schedule(eventlog.CleanupInterval, eventlog.NewCleanupJob(events, cfg.EventRetentionDays))

	slog.Info(LogMsgBackgroundJobsStarted,
		"workers", cfg.WorkerCount,
		"tick_interval", tick,
		"time_scale", cfg.TimeScale)

	return &BackgroundJobs{Pool: pool, Scheduler: sched}
}

// Stop halts scheduling before draining the pool
func (b *BackgroundJobs) Stop() {
	b.Scheduler.Stop()
	b.Pool.Stop()
}
