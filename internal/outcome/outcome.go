// Package outcome decides when a game is lost or won and tracks the one-way
// on-leave flag that makes winning possible.
package outcome

import "math"

// Config holds the terminal thresholds
type Config struct {
	WinAfterHours        float64 `yaml:"win_after_hours"`
	MoneyFloor           float64 `yaml:"money_floor"`
	HoursPerRequiredBaby float64 `yaml:"hours_per_required_baby"`
	StarvingHunger       float64 `yaml:"starving_hunger"`
	ExhaustedTiredness   float64 `yaml:"exhausted_tiredness"`
	NeglectedCleanliness float64 `yaml:"neglected_cleanliness"`
}

// DefaultConfig returns the standard thresholds
func DefaultConfig() Config {
	return Config{
		WinAfterHours:        120,
		MoneyFloor:           -500,
		HoursPerRequiredBaby: 24,
		StarvingHunger:       100,
		ExhaustedTiredness:   100,
		NeglectedCleanliness: 0,
	}
}

// BabyVitals are the needs the loss check looks at
type BabyVitals struct {
	Hunger      float64
	Cleanliness float64
}

// State is what the evaluator needs to know about the game
type State struct {
	Hours           float64
	Money           float64
	BabyCount       int
	PlayerHunger    float64
	PlayerTiredness float64
	Babies          []BabyVitals
}

// Reason names why the game ended
type Reason string

// Reasons a game ended or leave was revoked
const (
	ReasonNone              Reason = ""
	ReasonPlayerCollapsed   Reason = "player_collapsed"
	ReasonBabyNeglected     Reason = "baby_neglected"
	ReasonSurvivedLeave     Reason = "survived_leave"
	ReasonLeaveRevokedBaby  Reason = "leave_revoked_babies"
	ReasonLeaveRevokedMoney Reason = "leave_revoked_money"
)

// Evaluator holds the session's on-leave flag. Once revoked it stays
// revoked.
type Evaluator struct {
	cfg           Config
	onLeave       bool
	revokedReason Reason
}

// NewEvaluator starts a session on leave
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg, onLeave: true}
}

// RequiredBabies is the schedule the household must keep up with
func (e *Evaluator) RequiredBabies(hours float64) int {
	if e.cfg.HoursPerRequiredBaby <= 0 {
		return 1
	}
	return int(math.Floor(hours/e.cfg.HoursPerRequiredBaby)) + 1
}

// UpdateLeaveStatus revokes leave when the baby schedule or the money floor
// is missed. It returns true only on the call that revokes.
func (e *Evaluator) UpdateLeaveStatus(s State) bool {
	if !e.onLeave {
		return false
	}
	switch {
	case s.BabyCount < e.RequiredBabies(s.Hours):
		e.revokedReason = ReasonLeaveRevokedBaby
	case s.Money < e.cfg.MoneyFloor:
		e.revokedReason = ReasonLeaveRevokedMoney
	default:
		return false
	}
	e.onLeave = false
	return true
}

// OnLeave reports the flag
func (e *Evaluator) OnLeave() bool {
	return e.onLeave
}

// RevokedReason says why leave was revoked, if it was
func (e *Evaluator) RevokedReason() Reason {
	return e.revokedReason
}

// CheckGameOver reports a loss: the player both starving and exhausted, or
// any baby both starving and fully soiled
func (e *Evaluator) CheckGameOver(s State) (bool, Reason) {
	if s.PlayerHunger >= e.cfg.StarvingHunger && s.PlayerTiredness >= e.cfg.ExhaustedTiredness {
		return true, ReasonPlayerCollapsed
	}
	for _, b := range s.Babies {
		if b.Hunger >= e.cfg.StarvingHunger && b.Cleanliness <= e.cfg.NeglectedCleanliness {
			return true, ReasonBabyNeglected
		}
	}
	return false, ReasonNone
}

// CheckWinCondition is true once elapsed time passes the threshold while
// still on leave
func (e *Evaluator) CheckWinCondition(s State) bool {
	return e.onLeave && s.Hours > e.cfg.WinAfterHours
}
