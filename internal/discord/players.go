package discord

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// PlayerSessions maps a Discord user to the game they are playing. Entries
// expire with the server's session TTL so stale mappings age out on their own.
type PlayerSessions struct {
	games *expirable.LRU[string, string]
}

// NewPlayerSessions creates the mapping
func NewPlayerSessions(size int, ttl time.Duration) *PlayerSessions {
	if size <= 0 {
		size = DefaultPlayerCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultPlayerTTL
	}
	return &PlayerSessions{games: expirable.NewLRU[string, string](size, nil, ttl)}
}

// Get returns the session of a user
func (p *PlayerSessions) Get(userID string) (string, bool) {
	return p.games.Get(userID)
}

// Set records the session a user is playing, replacing any previous one
func (p *PlayerSessions) Set(userID, sessionID string) {
	p.games.Add(userID, sessionID)
}

// Remove forgets a user's session
func (p *PlayerSessions) Remove(userID string) {
	p.games.Remove(userID)
}
