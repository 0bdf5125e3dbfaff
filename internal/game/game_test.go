package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/outcome"
)

func TestNew_SeedsHousehold(t *testing.T) {
	g := newTestGame(t, config.DefaultBalance())

	snap := g.Snapshot()

	assert.Equal(t, StatusPlaying, snap.Status)
	assert.Equal(t, 1, snap.Day)
	assert.Equal(t, "00:00", snap.TimeOfDay)
	assert.True(t, snap.OnLeave)
	assert.Equal(t, "id-1", snap.PlayerID)
	require.Len(t, snap.Actors, 3)
	assert.Equal(t, domain.ActorCaregiver, snap.Actors[0].Kind)
	assert.Equal(t, "Parent", snap.Actors[0].Name)
	assert.Equal(t, domain.ActorBaby, snap.Actors[1].Kind)
	assert.Equal(t, domain.ActorFeedingStation, snap.Actors[2].Kind)
	assert.Equal(t, "id-3", g.StationID())
	assert.Equal(t, 500.0, snap.Resources[domain.ResourceMoney])
	assert.Equal(t, 1, snap.Progress.Level)
}

func TestNew_Options(t *testing.T) {
	g := New(config.DefaultBalance(),
		WithRandom(fixedRoll(0.5)),
		WithPlayerName("Sam"),
		WithPlayerGender(domain.GenderMale),
	)

	p, ok := g.StatusSummary(g.PlayerID())

	require.True(t, ok)
	assert.Equal(t, "Sam", p.Name)
	assert.Equal(t, domain.GenderMale, p.Caregiver.Gender)
	assert.Equal(t, "Sam", g.PlayerName())
}

func TestAdvance_NeedsChangeOverTime(t *testing.T) {
	// ARRANGE
	g := newTestGame(t, config.DefaultBalance())
	p := player(t, g)

	// ACT
	g.Advance(context.Background(), time.Hour)

	// ASSERT
	assert.InDelta(t, 1.0, g.Hours(), 1e-9)
	assert.InDelta(t, 56.0, p.Need(domain.NeedHunger), 1e-6)
	assert.InDelta(t, 34.0, p.Need(domain.NeedTiredness), 1e-6)
}

func TestAdvance_NonPositiveIsNoop(t *testing.T) {
	g := newTestGame(t, config.DefaultBalance())

	g.Advance(context.Background(), 0)
	g.Advance(context.Background(), -time.Hour)

	assert.Zero(t, g.Hours())
}

func TestAdvance_DaySettlement(t *testing.T) {
	// ARRANGE
	g := newTestGame(t, calmBalance())
	require.True(t, g.TakeLoan(1000))

	// ACT
	g.Advance(context.Background(), 25*time.Hour)

	// ASSERT
	expected := 1500 - 1000*0.05/365 + 50
	assert.InDelta(t, expected, g.ledger.Balance(), 1e-6)
	assert.Equal(t, 2, g.Snapshot().Day)

	notices := g.DrainNotices()
	days := noticesOf(notices, domain.EventTypeDaySettled)
	require.Len(t, days, 1)
	summary, ok := days[0].Payload.(DaySummary)
	require.True(t, ok)
	assert.Equal(t, 1, summary.Day)
	assert.Equal(t, 50.0, summary.Income)
	assert.InDelta(t, 1000*0.05/365, summary.Interest, 1e-9)
	assert.Equal(t, EventNone, summary.Event)

	assert.Empty(t, g.DrainNotices(), "notices are drained once")
}

func TestAdvance_WholeDaysSettleOnMidnight(t *testing.T) {
	tests := []struct {
		name     string
		advance  time.Duration
		wantDays int
	}{
		{"one day", 24 * time.Hour, 1},
		{"two days", 48 * time.Hour, 2},
		{"five days", 120 * time.Hour, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			g := newTestGame(t, calmBalance())
			require.True(t, g.TakeLoan(1000))

			// ACT
			g.Advance(context.Background(), tt.advance)

			// ASSERT
			snap := g.Snapshot()
			assert.Equal(t, tt.advance.Hours(), snap.Hours)
			assert.Equal(t, tt.wantDays+1, snap.Day)
			assert.Equal(t, "00:00", snap.TimeOfDay)

			days := noticesOf(g.DrainNotices(), domain.EventTypeDaySettled)
			require.Len(t, days, tt.wantDays)
			interest := 1000 * 0.05 / 365
			assert.InDelta(t, interest, days[0].Payload.(DaySummary).Interest, 1e-9)
			assert.InDelta(t, 1500+float64(tt.wantDays)*(50-interest), g.ledger.Balance(), 1e-6)
		})
	}
}

func TestAdvance_LeaveRevokedWhenBabiesFallBehind(t *testing.T) {
	g := newTestGame(t, calmBalance())

	g.Advance(context.Background(), 25*time.Hour)

	snap := g.Snapshot()
	assert.False(t, snap.OnLeave)
	assert.Equal(t, 2, snap.RequiredBabies)
	assert.Equal(t, outcome.ReasonLeaveRevokedBaby, snap.Reason)
	assert.Equal(t, StatusPlaying, snap.Status)
	assert.Len(t, noticesOf(g.DrainNotices(), domain.EventTypeLeaveRevoked), 1)
}

func TestAdvance_WinsAfterLeaveSurvived(t *testing.T) {
	// ARRANGE
	g := newTestGame(t, calmBalance())
	for i := 0; i < 5; i++ {
		_, ok := g.AddBaby("Twin")
		require.True(t, ok)
	}

	// ACT
	g.Advance(context.Background(), 121*time.Hour)

	// ASSERT
	assert.Equal(t, StatusWon, g.Status())
	assert.True(t, g.CheckWinCondition())
	over, _ := g.CheckGameOver()
	assert.False(t, over)
	assert.Equal(t, outcome.ReasonSurvivedLeave, g.Reason())

	o := g.Outcome()
	assert.Equal(t, domain.OutcomeWon, o.Result)
	assert.Equal(t, 6, o.Babies)
	assert.Equal(t, 5, o.DaysSurvived)
	assert.Len(t, noticesOf(g.DrainNotices(), domain.EventTypeSessionFinished), 1)
}

func TestAdvance_LossLatchesAndStopsTime(t *testing.T) {
	// ARRANGE
	g := newTestGame(t, config.DefaultBalance())

	// ACT
	g.Advance(context.Background(), 48*time.Hour)

	// ASSERT
	require.Equal(t, StatusLost, g.Status())
	over, reason := g.CheckGameOver()
	assert.True(t, over)
	assert.Contains(t, []outcome.Reason{outcome.ReasonPlayerCollapsed, outcome.ReasonBabyNeglected}, reason)
	assert.Less(t, g.Hours(), 48.0)

	stoppedAt := g.Hours()
	g.Advance(context.Background(), time.Hour)
	assert.Equal(t, stoppedAt, g.Hours())
	assert.Equal(t, domain.OutcomeLost, g.Outcome().Result)
}

func TestCheckGameOver_DoesNotLatch(t *testing.T) {
	g := newTestGame(t, config.DefaultBalance())
	b := firstBaby(t, g)
	b.SetNeed(domain.NeedHunger, 100)
	b.SetNeed(domain.NeedCleanliness, 0)

	over, reason := g.CheckGameOver()

	assert.True(t, over)
	assert.Equal(t, outcome.ReasonBabyNeglected, reason)
	assert.Equal(t, StatusPlaying, g.Status(), "a query must not change state")
}

func TestAdvance_RandomEventDonation(t *testing.T) {
	// ARRANGE
	// 0.1 is under the event chance and rolls the first event
	g := New(calmBalance(), WithRandom(fixedRoll(0.1)), WithIDGenerator(sequentialIDs()))

	// ACT
	g.Advance(context.Background(), 25*time.Hour)

	// ASSERT
	assert.InDelta(t, 500+50+200, g.ledger.Balance(), 1e-6)
	events := noticesOf(g.DrainNotices(), domain.EventTypeRandomEvent)
	require.Len(t, events, 1)
	assert.Equal(t, EventDonation, events[0].Payload)
	assert.InDelta(t, 250.0, g.Snapshot().Progress.TotalEarned, 1e-9)
}

func TestAdvance_SettlesEveryCrossedDay(t *testing.T) {
	g := newTestGame(t, calmBalance())
	for i := 0; i < 3; i++ {
		g.AddBaby("Extra")
	}

	g.Advance(context.Background(), 73*time.Hour)

	days := noticesOf(g.DrainNotices(), domain.EventTypeDaySettled)
	require.Len(t, days, 3)
	for i, n := range days {
		assert.Equal(t, i+1, n.Payload.(DaySummary).Day)
	}
	assert.InDelta(t, 650.0, g.ledger.Balance(), 1e-6)
}

func TestSnapshot_DefensiveCopy(t *testing.T) {
	g := newTestGame(t, config.DefaultBalance())

	first := g.Snapshot()
	first.Resources[domain.ResourceMoney] = 1e9
	first.Actors[1].Needs[domain.NeedHunger] = 0
	second := g.Snapshot()

	assert.Equal(t, 500.0, second.Resources[domain.ResourceMoney])
	assert.Equal(t, 60.0, second.Actors[1].Needs[domain.NeedHunger])
	assert.Equal(t, second, g.Snapshot(), "reading twice returns equal values")
}

func TestStatusSummary_UnknownActor(t *testing.T) {
	g := newTestGame(t, config.DefaultBalance())

	_, ok := g.StatusSummary("missing")

	assert.False(t, ok)
}
