package game

import (
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/ledger"
	"github.com/osse101/WhineTime/internal/outcome"
	"github.com/osse101/WhineTime/internal/progression"
)

// Notice is something that happened inside the simulation that a host may
// want to publish. Type is one of the domain.EventType* names.
type Notice struct {
	Type    string  `json:"type"`
	Hours   float64 `json:"hours"`
	Payload any     `json:"payload"`
}

// DaySummary is the payload of a day.settled notice
type DaySummary struct {
	ledger.Settlement
	Income float64     `json:"income"`
	Event  RandomEvent `json:"event,omitempty"`
}

// TaskFinished is the payload of a task.finished notice
type TaskFinished struct {
	CaregiverID string                 `json:"caregiver_id"`
	Task        domain.Task            `json:"task"`
	Reward      progression.TaskReward `json:"reward"`
}

// LeaveRevoked is the payload of a leave.revoked notice
type LeaveRevoked struct {
	Reason outcome.Reason `json:"reason"`
}

// Finished is the payload of a session.finished notice
type Finished struct {
	Status Status         `json:"status"`
	Reason outcome.Reason `json:"reason"`
}

func (g *Game) notify(eventType string, payload any) {
	g.notices = append(g.notices, Notice{Type: eventType, Hours: g.clock.Hours(), Payload: payload})
}

// DrainNotices returns the notices raised since the last call
func (g *Game) DrainNotices() []Notice {
	out := g.notices
	g.notices = nil
	return out
}
