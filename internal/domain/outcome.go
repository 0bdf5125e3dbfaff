package domain

import "time"

// OutcomeResult is how a session ended
type OutcomeResult string

// Outcome results
const (
	OutcomeWon       OutcomeResult = "won"
	OutcomeLost      OutcomeResult = "lost"
	OutcomeAbandoned OutcomeResult = "abandoned"
)

// Outcome is the persisted record of a finished session
type Outcome struct {
	SessionID      string        `json:"session_id"`
	PlayerName     string        `json:"player_name"`
	Result         OutcomeResult `json:"result"`
	DaysSurvived   int           `json:"days_survived"`
	GameHours      float64       `json:"game_hours"`
	Level          int           `json:"level"`
	XP             int64         `json:"xp"`
	Money          float64       `json:"money"`
	TotalDebt      float64       `json:"total_debt"`
	Babies         int           `json:"babies"`
	TasksCompleted int           `json:"tasks_completed"`
	Achievements   []string      `json:"achievements"`
	FinishedAt     time.Time     `json:"finished_at"`
}

// LeaderboardEntry is an outcome with its rank
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	Outcome
}
