package game

import (
	"github.com/osse101/WhineTime/internal/actor"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/ledger"
	"github.com/osse101/WhineTime/internal/loan"
	"github.com/osse101/WhineTime/internal/outcome"
	"github.com/osse101/WhineTime/internal/progression"
)

// Snapshot is a display copy of the whole household. Nothing in it aliases
// the game's state.
type Snapshot struct {
	Status         Status                      `json:"status"`
	Reason         outcome.Reason              `json:"reason,omitempty"`
	Hours          float64                     `json:"hours"`
	Day            int                         `json:"day"`
	TimeOfDay      string                      `json:"time_of_day"`
	OnLeave        bool                        `json:"on_leave"`
	RequiredBabies int                         `json:"required_babies"`
	PlayerID       string                      `json:"player_id"`
	Actors         []actor.Summary             `json:"actors"`
	Resources      map[domain.Resource]float64 `json:"resources"`
	Prices         map[domain.Resource]float64 `json:"prices"`
	Loan           loan.State                  `json:"loan"`
	Financial      ledger.FinancialStatus      `json:"financial"`
	Critical       []domain.Resource           `json:"critical"`
	Progress       progression.Progress        `json:"progress"`
}

// Snapshot copies every display value
func (g *Game) Snapshot() Snapshot {
	all := g.actors.All()
	actors := make([]actor.Summary, 0, len(all))
	for _, a := range all {
		actors = append(actors, a.StatusSummary())
	}
	return Snapshot{
		Status:         g.status,
		Reason:         g.Reason(),
		Hours:          g.clock.Hours(),
		Day:            g.clock.Day(),
		TimeOfDay:      g.clock.TimeOfDay(),
		OnLeave:        g.outcome.OnLeave(),
		RequiredBabies: g.outcome.RequiredBabies(g.clock.Hours()),
		PlayerID:       g.playerID,
		Actors:         actors,
		Resources:      g.ledger.Snapshot(),
		Prices:         g.ledger.Prices(),
		Loan:           g.loans.Snapshot(),
		Financial:      g.ledger.FinancialStatus(),
		Critical:       g.ledger.CriticalResources(),
		Progress:       g.progress.Snapshot(),
	}
}

// StatusSummary describes one actor
func (g *Game) StatusSummary(actorID string) (actor.Summary, bool) {
	a, ok := g.actors.Get(actorID)
	if !ok {
		return actor.Summary{}, false
	}
	return a.StatusSummary(), true
}

// Outcome is the record of this game as it stands. A game still playing is
// recorded as abandoned. The caller fills in the session ID and time.
func (g *Game) Outcome() domain.Outcome {
	result := domain.OutcomeAbandoned
	switch g.status {
	case StatusWon:
		result = domain.OutcomeWon
	case StatusLost:
		result = domain.OutcomeLost
	}
	p := g.progress.Snapshot()
	return domain.Outcome{
		PlayerName:     g.playerName,
		Result:         result,
		DaysSurvived:   g.clock.Day() - 1,
		GameHours:      g.clock.Hours(),
		Level:          p.Level,
		XP:             p.XP,
		Money:          g.ledger.Balance(),
		TotalDebt:      g.loans.TotalDebt(),
		Babies:         g.actors.Count(domain.ActorBaby),
		TasksCompleted: p.TasksCompleted,
		Achievements:   p.Achievements,
	}
}
