package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Forget drops the mutex for key. Callers must not hold it.
func (lm *LockManager) Forget(key string) {
	lm.locks.Delete(key)
}

// Len counts the keys that currently have a mutex
func (lm *LockManager) Len() int {
	n := 0
	lm.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// WithLock runs fn while holding the mutex for key
func (lm *LockManager) WithLock(key string, fn func()) {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	fn()
}
