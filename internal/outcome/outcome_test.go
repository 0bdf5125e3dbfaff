package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func healthyState() State {
	return State{
		Hours:           10,
		Money:           500,
		BabyCount:       1,
		PlayerHunger:    50,
		PlayerTiredness: 30,
		Babies:          []BabyVitals{{Hunger: 60, Cleanliness: 80}},
	}
}

func TestCheckGameOver(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*State)
		wantOver   bool
		wantReason Reason
	}{
		{"healthy", func(*State) {}, false, ReasonNone},
		{"player starving only", func(s *State) { s.PlayerHunger = 100 }, false, ReasonNone},
		{"player starving and exhausted", func(s *State) {
			s.PlayerHunger = 100
			s.PlayerTiredness = 100
		}, true, ReasonPlayerCollapsed},
		{"baby starving but clean", func(s *State) { s.Babies[0].Hunger = 100 }, false, ReasonNone},
		{"baby starving and soiled", func(s *State) {
			s.Babies = append(s.Babies, BabyVitals{Hunger: 100, Cleanliness: 0})
		}, true, ReasonBabyNeglected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			e := NewEvaluator(DefaultConfig())
			s := healthyState()
			tt.mutate(&s)

			// ACT
			over, reason := e.CheckGameOver(s)

			// ASSERT
			assert.Equal(t, tt.wantOver, over)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestUpdateLeaveStatus_OneWay(t *testing.T) {
	e := NewEvaluator(DefaultConfig())
	s := healthyState()

	assert.False(t, e.UpdateLeaveStatus(s))
	assert.True(t, e.OnLeave())

	s.Money = -501
	assert.True(t, e.UpdateLeaveStatus(s), "money below the floor revokes leave")
	assert.False(t, e.OnLeave())
	assert.Equal(t, ReasonLeaveRevokedMoney, e.RevokedReason())

	s.Money = 10000
	assert.False(t, e.UpdateLeaveStatus(s), "revocation is reported once")
	assert.False(t, e.OnLeave(), "leave is never restored")
}

func TestUpdateLeaveStatus_BabySchedule(t *testing.T) {
	tests := []struct {
		name        string
		hours       float64
		babies      int
		wantOnLeave bool
	}{
		{"day one with one baby", 23, 1, true},
		{"day two with one baby", 24, 1, false},
		{"day two with two babies", 30, 2, true},
		{"day three with two babies", 50, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvaluator(DefaultConfig())
			s := healthyState()
			s.Hours = tt.hours
			s.BabyCount = tt.babies

			e.UpdateLeaveStatus(s)

			assert.Equal(t, tt.wantOnLeave, e.OnLeave())
			if !tt.wantOnLeave {
				assert.Equal(t, ReasonLeaveRevokedBaby, e.RevokedReason())
			}
		})
	}
}

func TestCheckWinCondition(t *testing.T) {
	e := NewEvaluator(DefaultConfig())
	s := healthyState()

	s.Hours = 120
	assert.False(t, e.CheckWinCondition(s), "threshold must be exceeded")

	s.Hours = 120.5
	assert.True(t, e.CheckWinCondition(s))

	s.BabyCount = 0
	e.UpdateLeaveStatus(s)
	assert.False(t, e.CheckWinCondition(s), "no win once leave is revoked")
}

func TestRequiredBabies(t *testing.T) {
	e := NewEvaluator(DefaultConfig())
	assert.Equal(t, 1, e.RequiredBabies(0))
	assert.Equal(t, 1, e.RequiredBabies(23.9))
	assert.Equal(t, 2, e.RequiredBabies(24))
	assert.Equal(t, 6, e.RequiredBabies(121))
}
