package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WhineTime/internal/clock"
)

type fakeAdvancer struct {
	mu    sync.Mutex
	calls []time.Duration
}

func (f *fakeAdvancer) AdvanceAll(_ context.Context, dt time.Duration) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, dt)
	return 3
}

func TestTickJob_ScalesWallTime(t *testing.T) {
	// ARRANGE
	wall := clock.NewSimulatedClock(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	adv := &fakeAdvancer{}
	job := NewTickJob(adv, wall, 60)

	// ACT
	wall.Advance(2 * time.Second)
	require.NoError(t, job.Process(context.Background()))
	wall.Advance(500 * time.Millisecond)
	require.NoError(t, job.Process(context.Background()))

	// ASSERT
	assert.Equal(t, []time.Duration{2 * time.Minute, 30 * time.Second}, adv.calls)
}

func TestTickJob_NoElapsedTime(t *testing.T) {
	wall := clock.NewSimulatedClock(time.Now())
	adv := &fakeAdvancer{}
	job := NewTickJob(adv, wall, 60)

	require.NoError(t, job.Process(context.Background()))

	assert.Empty(t, adv.calls)
}

func TestTickJob_RunsOnPool(t *testing.T) {
	wall := clock.NewSimulatedClock(time.Now())
	adv := &fakeAdvancer{}
	job := NewTickJob(adv, wall, 1)
	pool := NewPool(2, 4)
	pool.Start()
	defer pool.Stop()

	wall.Advance(time.Second)
	pool.Enqueue(job)

	assert.Eventually(t, func() bool {
		adv.mu.Lock()
		defer adv.mu.Unlock()
		return len(adv.calls) == 1 && adv.calls[0] == time.Second
	}, time.Second, 5*time.Millisecond)
}
