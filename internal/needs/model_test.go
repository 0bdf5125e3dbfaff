package needs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/WhineTime/internal/domain"
)

func babyNeeds() *Model {
	return New(map[domain.Need]float64{
		domain.NeedHunger:      60,
		domain.NeedCleanliness: 80,
		domain.NeedComfort:     70,
		domain.NeedSleepiness:  40,
	})
}

func TestNew_ClampsInitialValues(t *testing.T) {
	m := New(map[domain.Need]float64{
		domain.NeedHunger: 150,
		domain.NeedStress: -20,
	})

	assert.Equal(t, 100.0, m.Get(domain.NeedHunger))
	assert.Equal(t, 0.0, m.Get(domain.NeedStress))
	assert.False(t, m.Has(domain.NeedComfort))
}

func TestAdvance_StaysWithinBounds(t *testing.T) {
	rates := Rates{
		domain.NeedHunger:      12,
		domain.NeedCleanliness: -5,
		domain.NeedSleepiness:  10,
	}
	durations := []time.Duration{
		0,
		time.Second,
		30 * time.Minute,
		3 * time.Hour,
		48 * time.Hour,
		1000 * time.Hour,
	}

	for _, dt := range durations {
		t.Run(dt.String(), func(t *testing.T) {
			m := babyNeeds()
			m.Advance(dt, rates)
			for n, v := range m.Snapshot() {
				assert.GreaterOrEqual(t, v, domain.NeedMin, "need %s below range", n)
				assert.LessOrEqual(t, v, domain.NeedMax, "need %s above range", n)
			}
		})
	}
}

func TestAdvance_LinearRates(t *testing.T) {
	// ARRANGE
	m := babyNeeds()

	// ACT
	m.Advance(90*time.Minute, Rates{domain.NeedHunger: 12, domain.NeedComfort: -8})

	// ASSERT
	assert.InDelta(t, 78.0, m.Get(domain.NeedHunger), 1e-9)
	assert.InDelta(t, 58.0, m.Get(domain.NeedComfort), 1e-9)
	assert.Equal(t, 40.0, m.Get(domain.NeedSleepiness), "needs without a rate do not move")
}

func TestAdvance_NegativeDurationIsNoop(t *testing.T) {
	m := babyNeeds()
	m.Advance(-time.Hour, Rates{domain.NeedHunger: 12})
	assert.Equal(t, 60.0, m.Get(domain.NeedHunger))
}

func TestApplyDiaperChange(t *testing.T) {
	tests := []struct {
		name        string
		cleanliness float64
		wantOK      bool
		want        float64
	}{
		{"already clean is a no-op", 90, false, 90},
		{"exactly at threshold changes", 80, true, 100},
		{"dirty diaper changes", 10, true, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := babyNeeds()
			m.Set(domain.NeedCleanliness, tt.cleanliness)

			ok := m.ApplyDiaperChange(80)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, m.Get(domain.NeedCleanliness))
		})
	}
}

func TestApplyFeedAndComfort(t *testing.T) {
	m := babyNeeds()

	assert.True(t, m.ApplyFeed(40))
	assert.Equal(t, 20.0, m.Get(domain.NeedHunger))
	assert.True(t, m.ApplyFeed(40))
	assert.Equal(t, 0.0, m.Get(domain.NeedHunger), "feeding clamps at zero")
	assert.False(t, m.ApplyFeed(0))

	assert.True(t, m.ApplyComfort(50))
	assert.Equal(t, 100.0, m.Get(domain.NeedComfort))
}

func TestApplySleep(t *testing.T) {
	caregiver := New(map[domain.Need]float64{domain.NeedTiredness: 90})
	assert.True(t, caregiver.ApplySleep(2, 20))
	assert.Equal(t, 50.0, caregiver.Get(domain.NeedTiredness))
	assert.False(t, caregiver.ApplySleep(0, 20))

	baby := babyNeeds()
	assert.True(t, baby.ApplySleep(1, 20))
	assert.Equal(t, 20.0, baby.Get(domain.NeedSleepiness), "babies recover sleepiness")

	stressOnly := New(map[domain.Need]float64{domain.NeedStress: 10})
	assert.False(t, stressOnly.ApplySleep(1, 20))
}

func TestSnapshot_IsDefensiveCopy(t *testing.T) {
	m := babyNeeds()

	first := m.Snapshot()
	first[domain.NeedHunger] = 0
	second := m.Snapshot()

	assert.Equal(t, 60.0, second[domain.NeedHunger], "mutating a snapshot must not leak into the model")
	assert.Equal(t, m.Snapshot(), second, "reading twice yields equal values")
}
