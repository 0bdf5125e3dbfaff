package sse

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	GameHours float64     `json:"game_hours,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Filter narrows what a client receives. Empty fields match everything.
type Filter struct {
	Types     map[string]bool
	SessionID string
}

// Matches reports whether the event passes the filter
func (f Filter) Matches(e Event) bool {
	if len(f.Types) > 0 && !f.Types[e.Type] {
		return false
	}
	if f.SessionID != "" && f.SessionID != e.SessionID {
		return false
	}
	return true
}

// NewFilter builds a filter from a type list and an optional session
func NewFilter(types []string, sessionID string) Filter {
	f := Filter{SessionID: sessionID}
	if len(types) > 0 {
		f.Types = make(map[string]bool, len(types))
		for _, t := range types {
			f.Types[t] = true
		}
	}
	return f
}
