package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/WhineTime/internal/actor"
	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/domain"
)

func fixedRoll(v float64) func() float64 {
	return func() float64 { return v }
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// calmBalance freezes every need so tests can reason about money and time
func calmBalance() config.Balance {
	b := config.DefaultBalance()
	for n := range b.Actors.Baby.AwakeRates {
		b.Actors.Baby.AwakeRates[n] = 0
	}
	for n := range b.Actors.Baby.SleepingRates {
		b.Actors.Baby.SleepingRates[n] = 0
	}
	b.Actors.Baby.DiscomfortRate = 0
	b.Actors.Baby.ColicComfortPerLevel = 0
	b.Actors.Caregiver.HungerRate = 0
	b.Actors.Caregiver.TirednessRate = 0
	b.Actors.Caregiver.StressRate = 0
	b.Actors.Caregiver.StressRecoveryRate = 0
	b.Actors.Caregiver.CryingStressRate = 0
	return b
}

func newTestGame(t *testing.T, b config.Balance) *Game {
	t.Helper()
	return New(b, WithRandom(fixedRoll(0.5)), WithIDGenerator(sequentialIDs()))
}

// firstBaby returns the seeded baby with its special needs cleared
func firstBaby(t *testing.T, g *Game) *actor.Baby {
	t.Helper()
	babies := g.actors.Babies()
	require.NotEmpty(t, babies)
	b := babies[0]
	b.SetSpecialNeeds(domain.SpecialNeeds{})
	return b
}

func player(t *testing.T, g *Game) *actor.Caregiver {
	t.Helper()
	c, ok := g.actors.Caregiver(g.PlayerID())
	require.True(t, ok)
	return c
}

func noticesOf(notices []Notice, eventType string) []Notice {
	var out []Notice
	for _, n := range notices {
		if n.Type == eventType {
			out = append(out, n)
		}
	}
	return out
}
