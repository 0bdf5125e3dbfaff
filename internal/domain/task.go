package domain

import "time"

// TaskType is a unit of caregiver work
type TaskType string

// Task types
const (
	TaskFeed        TaskType = "feed"
	TaskSleep       TaskType = "sleep"
	TaskComfort     TaskType = "comfort"
	TaskMakeFormula TaskType = "make_formula"
	TaskRefillWater TaskType = "refill_water"
)

// AllTaskTypes returns every task type
func AllTaskTypes() []TaskType {
	return []TaskType{TaskFeed, TaskSleep, TaskComfort, TaskMakeFormula, TaskRefillWater}
}

// IsValid reports whether t is a known task type
func (t TaskType) IsValid() bool {
	for _, known := range AllTaskTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// TargetKind returns the actor kind a task of this type must target
func (t TaskType) TargetKind() ActorKind {
	switch t {
	case TaskMakeFormula, TaskRefillWater:
		return ActorFeedingStation
	default:
		return ActorBaby
	}
}

// TaskStatus tracks a task through its lifecycle
type TaskStatus string

// Task statuses
const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskFailed     TaskStatus = "failed"
)

// Task is owned by exactly one caregiver. Remaining counts down in game
// time scaled by the caregiver's efficiency.
type Task struct {
	ID        string        `json:"id"`
	Type      TaskType      `json:"type"`
	TargetID  string        `json:"target_id"`
	Priority  int           `json:"priority"`
	Duration  time.Duration `json:"duration"`
	Remaining time.Duration `json:"remaining"`
	Status    TaskStatus    `json:"status"`
}
