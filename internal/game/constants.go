package game

import "time"

// Step is the largest slice of game time simulated at once. Longer advances
// are split so task progress, failure rolls and day boundaries stay in order.
const Step = time.Minute

// Status is where a game stands
type Status string

// Game statuses
const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// RandomEvent is a daily household surprise
type RandomEvent string

// Random events, in roll order
const (
	EventNone            RandomEvent = ""
	EventDonation        RandomEvent = "donation"
	EventAppreciation    RandomEvent = "appreciation"
	EventFormulaDelivery RandomEvent = "formula_delivery"
	EventVolunteerHelper RandomEvent = "volunteer_helper"
)

var randomEvents = []RandomEvent{EventDonation, EventAppreciation, EventFormulaDelivery, EventVolunteerHelper}

// Log messages
const (
	LogMsgDaySettled       = "Day settled"
	LogMsgRandomEvent      = "Random event fired"
	LogMsgLevelUp          = "Level up"
	LogMsgAchievement      = "Achievement unlocked"
	LogMsgLeaveRevoked     = "On-leave status revoked"
	LogMsgGameFinished     = "Game finished"
	LogMsgTaskFinished     = "Task finished"
	LogMsgTaskEffectFailed = "Task effect could not be applied"
)

// Work messages
const (
	MsgWorkDone     = "You worked a shift"
	MsgWorkTooTired = "You are too tired to work"
	MsgWorkFinished = "The game is over"
)
