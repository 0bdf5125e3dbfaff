package domain

// Event type constants published on the event bus and counted by metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "session.finished")
const (
	// EventTypeSessionCreated is published when a new game session starts
	EventTypeSessionCreated = "session.created"

	// EventTypeSessionFinished is published once when a session is won, lost or abandoned
	EventTypeSessionFinished = "session.finished"

	// EventTypeDaySettled is published for every day boundary crossed by a session
	EventTypeDaySettled = "day.settled"

	// EventTypeLevelUp is published when a session gains one or more levels
	EventTypeLevelUp = "progression.level_up"

	// EventTypeAchievementUnlocked is published when an achievement pays out
	EventTypeAchievementUnlocked = "progression.achievement_unlocked"

	// EventTypeTaskFinished is published when a caregiver completes or fails a task
	EventTypeTaskFinished = "task.finished"

	// EventTypeLeaveRevoked is published when a session loses on-leave status
	EventTypeLeaveRevoked = "leave.revoked"

	// EventTypeRandomEvent is published when a daily random event fires
	EventTypeRandomEvent = "random_event"
)
