package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/WhineTime/internal/clock"
	"github.com/osse101/WhineTime/internal/logger"
)

// Advancer moves every live session forward by dt of game time
type Advancer interface {
	AdvanceAll(ctx context.Context, dt time.Duration) int
}

// TickJob converts the wall time since its last run into game time and
// advances every session by it. timeScale is game seconds per wall second.
type TickJob struct {
	sessions  Advancer
	clock     clock.Clock
	timeScale float64

	mu   sync.Mutex
	last time.Time
}

// NewTickJob starts measuring from the clock's current time
func NewTickJob(sessions Advancer, c clock.Clock, timeScale float64) *TickJob {
	return &TickJob{
		sessions:  sessions,
		clock:     c,
		timeScale: timeScale,
		last:      c.Now(),
	}
}

// Process implements Job. Overlapping runs are serialised so no wall time
// is counted twice.
func (j *TickJob) Process(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.clock.Now()
	elapsed := now.Sub(j.last)
	j.last = now

	dt := time.Duration(float64(elapsed) * j.timeScale)
	if dt <= 0 {
		logger.FromContext(ctx).Debug(LogMsgTickSkipped)
		return nil
	}

	advanced := j.sessions.AdvanceAll(ctx, dt)
	logger.FromContext(ctx).Debug(LogMsgTickAdvanced, "sessions", advanced, "game_time", dt)
	return nil
}
