// Package needs holds the clamped [0,100] attributes every actor carries and
// the linear rate-of-change rules that move them over game time.
package needs

import (
	"time"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/utils"
)

// Rates maps a need to its change per game hour. Needs absent from the map
// do not move.
type Rates map[domain.Need]float64

// Model is the set of needs owned by one actor. Only needs present at
// construction are tracked; every stored value is within [NeedMin, NeedMax].
type Model struct {
	values map[domain.Need]float64
}

// New creates a model tracking exactly the needs in initial
func New(initial map[domain.Need]float64) *Model {
	m := &Model{values: make(map[domain.Need]float64, len(initial))}
	for n, v := range initial {
		m.values[n] = Clamp(v)
	}
	return m
}

// Clamp bounds a need value to [NeedMin, NeedMax]
func Clamp(v float64) float64 {
	return utils.Clamp(v, domain.NeedMin, domain.NeedMax)
}

// Has reports whether the need is tracked
func (m *Model) Has(n domain.Need) bool {
	_, ok := m.values[n]
	return ok
}

// Get returns the current value, or 0 for an untracked need
func (m *Model) Get(n domain.Need) float64 {
	return m.values[n]
}

// Set stores a clamped value. Untracked needs are ignored.
func (m *Model) Set(n domain.Need, v float64) {
	if !m.Has(n) {
		return
	}
	m.values[n] = Clamp(v)
}

// Add shifts a need by delta and returns the clamped result
func (m *Model) Add(n domain.Need, delta float64) float64 {
	if !m.Has(n) {
		return 0
	}
	m.values[n] = Clamp(m.values[n] + delta)
	return m.values[n]
}

// Advance applies every rate for dt of game time. Non-positive dt is a no-op.
func (m *Model) Advance(dt time.Duration, rates Rates) {
	if dt <= 0 {
		return
	}
	hours := dt.Hours()
	for n, rate := range rates {
		if rate == 0 {
			continue
		}
		m.Add(n, rate*hours)
	}
}

// ApplyFeed lowers hunger by amount. It reports false when hunger is not
// tracked or amount is not positive.
func (m *Model) ApplyFeed(amount float64) bool {
	if !m.Has(domain.NeedHunger) || amount <= 0 {
		return false
	}
	m.Add(domain.NeedHunger, -amount)
	return true
}

// ApplyComfort raises comfort by amount
func (m *Model) ApplyComfort(amount float64) bool {
	if !m.Has(domain.NeedComfort) || amount <= 0 {
		return false
	}
	m.Add(domain.NeedComfort, amount)
	return true
}

// ApplyDiaperChange resets cleanliness to the maximum. It is a no-op
// returning false while cleanliness is already above threshold.
func (m *Model) ApplyDiaperChange(threshold float64) bool {
	if !m.Has(domain.NeedCleanliness) {
		return false
	}
	if m.Get(domain.NeedCleanliness) > threshold {
		return false
	}
	m.Set(domain.NeedCleanliness, domain.NeedMax)
	return true
}

// ApplySleep recovers recoveryPerHour for each hour slept. Caregivers recover
// tiredness, babies recover sleepiness.
func (m *Model) ApplySleep(hours, recoveryPerHour float64) bool {
	if hours <= 0 {
		return false
	}
	target := domain.NeedTiredness
	if !m.Has(target) {
		target = domain.NeedSleepiness
	}
	if !m.Has(target) {
		return false
	}
	m.Add(target, -hours*recoveryPerHour)
	return true
}

// Snapshot returns a copy of every tracked value
func (m *Model) Snapshot() map[domain.Need]float64 {
	out := make(map[domain.Need]float64, len(m.values))
	for n, v := range m.values {
		out[n] = v
	}
	return out
}
