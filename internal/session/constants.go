package session

import "time"

// Defaults used when Options leaves a field zero
const (
	DefaultCacheSize       = 1000
	DefaultTTL             = 24 * time.Hour
	DefaultLeaderboardSize = 10
	MaxAdvance             = 24 * time.Hour
)

// Action names accepted by Act
const (
	ActionAddBaby            = "add_baby"
	ActionAddCaregiver       = "add_caregiver"
	ActionFeed               = "feed"
	ActionChangeDiaper       = "change_diaper"
	ActionComfort            = "comfort"
	ActionEat                = "eat"
	ActionSleep              = "sleep"
	ActionWork               = "work"
	ActionStartBreastfeeding = "start_breastfeeding"
	ActionStopBreastfeeding  = "stop_breastfeeding"
	ActionAssignTask         = "assign_task"
	ActionBuyItem            = "buy_item"
	ActionWashBottles        = "wash_bottles"
	ActionSterilizeBottles   = "sterilize_bottles"
	ActionPumpBreastMilk     = "pump_breast_milk"
	ActionTakeLoan           = "take_loan"
	ActionRepayLoan          = "repay_loan"
	ActionMakeFormula        = "make_formula"
	ActionCleanStation       = "clean_station"
	ActionRefillStation      = "refill_station"
	ActionCollectFormula     = "collect_formula"
	ActionBuyUpgrade         = "buy_upgrade"
)

// Log messages
const (
	LogMsgSessionCreated    = "Session created"
	LogMsgSessionEnded      = "Session ended"
	LogMsgSessionEvicted    = "Session evicted, recording abandoned outcome"
	LogMsgOutcomeRecorded   = "Session outcome recorded"
	LogMsgOutcomeSaveFailed = "Failed to save session outcome"
	LogMsgPublishFailed     = "Failed to publish session event"
	LogMsgActionRejected    = "Action rejected"
	LogMsgAdvanceAllFailed  = "Failed to advance session"
	LogMsgShuttingDown      = "Shutting down session service"
	LogMsgShutdownDone      = "Session service shutdown complete"
	LogMsgShutdownForced    = "Session service shutdown forced by context"
)

// Error contexts
const (
	ErrContextInvalidAdvance = "advance must be positive and at most 24h"
	ErrContextUnknownProfile = "unknown balance profile"
	ErrContextActorKind      = "wrong actor kind"
	ErrContextMissingField   = "missing field"
)
