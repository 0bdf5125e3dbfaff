package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// GoroutineChecker detects goroutines left running by a test
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines outlived it.
// Workers get a short grace period to observe their stop signal.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(time.Second)
	leaked := 0
	for {
		runtime.Gosched()
		runtime.GC()
		leaked = runtime.NumGoroutine() - g.before
		if leaked <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	if leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, leaked=%d (tolerance=%d)",
			g.before, leaked, tolerance)
	}
}
