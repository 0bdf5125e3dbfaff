package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/game"
)

// session is one live game. game, closed and outcome are guarded by the
// session's lock from the LockManager.
type session struct {
	id        string
	profile   string
	createdAt time.Time
	game      *game.Game

	closed  bool
	outcome *domain.Outcome
}

// sessionCache keeps live games in an LRU whose entries expire after ttl
// without activity. onEvict runs with the LRU's internal lock held, so it
// must not call back into the cache.
type sessionCache struct {
	lru *expirable.LRU[string, *session]
}

func newSessionCache(size int, ttl time.Duration, onEvict func(id string, s *session)) *sessionCache {
	return &sessionCache{
		lru: expirable.NewLRU[string, *session](size, onEvict, ttl),
	}
}

func (c *sessionCache) Get(id string) (*session, bool) {
	return c.lru.Get(id)
}

// Touch stores s, restarting its expiry
func (c *sessionCache) Touch(s *session) {
	c.lru.Add(s.id, s)
}

func (c *sessionCache) Remove(id string) {
	c.lru.Remove(id)
}

// IDs lists live sessions, oldest first
func (c *sessionCache) IDs() []string {
	return c.lru.Keys()
}

func (c *sessionCache) Len() int {
	return c.lru.Len()
}
