package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/WhineTime/internal/worker"
)

type countingJob struct {
	runs atomic.Int32
	done chan struct{}
}

func (j *countingJob) Process(ctx context.Context) error {
	j.runs.Add(1)
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &countingJob{done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	for seen := 0; seen < 2; {
		select {
		case <-job.done:
			seen++
		case <-timeout:
			t.Fatal("timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, job.runs.Load(), int32(2))
}

func TestScheduler_StopHaltsRuns(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &countingJob{done: make(chan struct{}, 100)}
	sched.Schedule(5*time.Millisecond, job)

	assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, time.Second, time.Millisecond)
	sched.Stop()
	sched.Stop()

	time.Sleep(20 * time.Millisecond)
	after := job.runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, job.runs.Load())
}
