package actor

import (
	"time"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/needs"
	"github.com/osse101/WhineTime/internal/utils"
)

// Baby is either awake or sleeping. Timestamps are in elapsed game hours.
type Baby struct {
	base
	cfg          BabyConfig
	needs        *needs.Model
	personality  domain.Personality
	specialNeeds domain.SpecialNeeds
	sleeping     bool
	ageHours     float64
	lastFed      float64
	lastChanged  float64
	rnd          func() float64
}

// NewBaby rolls personality and special needs from rnd
func NewBaby(id, name string, cfg BabyConfig, rnd func() float64) *Baby {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	personalities := domain.AllPersonalities()
	b := &Baby{
		base:        base{id: id, name: name},
		cfg:         cfg,
		needs:       needs.New(cfg.Initial),
		personality: personalities[utils.RollIntRange(rnd(), 0, len(personalities)-1)],
		rnd:         rnd,
	}
	b.specialNeeds = domain.SpecialNeeds{
		SensitiveFormula: rnd() < cfg.SensitiveFormulaChance,
		GasIssues:        rnd() < cfg.GasIssuesChance,
		ColicLevel:       utils.RollIntRange(rnd(), 0, cfg.MaxColicLevel),
	}
	return b
}

// Kind implements Actor
func (b *Baby) Kind() domain.ActorKind { return domain.ActorBaby }

// Advance applies awake or sleeping rates, then checks the sleep transitions
func (b *Baby) Advance(dt time.Duration, _ Env) {
	if dt <= 0 {
		return
	}
	b.ageHours += dt.Hours()

	if b.sleeping {
		b.needs.Advance(dt, b.scaled(b.cfg.SleepingRates))
		if b.needs.Get(domain.NeedHunger) > b.cfg.WakeHunger ||
			b.needs.Get(domain.NeedCleanliness) < b.cfg.WakeCleanliness {
			b.sleeping = false
		}
		return
	}

	rates := b.scaled(b.cfg.AwakeRates)
	comfort := float64(b.specialNeeds.ColicLevel) * b.cfg.ColicComfortPerLevel
	if b.needs.Get(domain.NeedHunger) > b.cfg.DiscomfortHungerAbove ||
		b.needs.Get(domain.NeedCleanliness) < b.cfg.DiscomfortCleanlinessBelow {
		comfort += b.cfg.DiscomfortRate
	}
	rates[domain.NeedComfort] += comfort
	b.needs.Advance(dt, rates)

	if b.needs.Get(domain.NeedSleepiness) > b.cfg.FallAsleepSleepiness &&
		b.needs.Get(domain.NeedComfort) > b.cfg.FallAsleepComfort {
		b.sleeping = true
	}
}

// scaled copies rates and applies the personality to hunger and sleepiness
// accrual. Recovery (negative) rates are not scaled.
func (b *Baby) scaled(rates needs.Rates) needs.Rates {
	traits, ok := b.cfg.Personalities[b.personality]
	if !ok {
		traits = PersonalityTraits{Hunger: 1, Sleepiness: 1}
	}
	out := make(needs.Rates, len(rates)+1)
	for n, r := range rates {
		switch {
		case n == domain.NeedHunger && r > 0:
			r *= traits.Hunger
		case n == domain.NeedSleepiness && r > 0:
			r *= traits.Sleepiness
		}
		out[n] = r
	}
	return out
}

// OnInteract implements Actor
func (b *Baby) OnInteract() []domain.TaskType {
	return []domain.TaskType{domain.TaskFeed, domain.TaskComfort, domain.TaskSleep}
}

// CanFeed reports whether the baby is hungry enough to eat
func (b *Baby) CanFeed() bool {
	return b.needs.Get(domain.NeedHunger) >= b.cfg.FeedMinHunger
}

// IsMismatched reports whether ft upsets this baby's stomach
func (b *Baby) IsMismatched(ft domain.FormulaType) bool {
	return b.specialNeeds.SensitiveFormula && ft == domain.FormulaRegular
}

// Feed lowers hunger by effectiveness. A sensitive baby fed regular formula
// gets a reduced amount and loses comfort. The baby may fall asleep
// afterwards. Rejected when the baby is not hungry enough.
func (b *Baby) Feed(ft domain.FormulaType, effectiveness, now float64) bool {
	if !b.CanFeed() {
		return false
	}
	if b.IsMismatched(ft) {
		effectiveness *= b.cfg.MismatchFactor
		b.needs.Add(domain.NeedComfort, -b.cfg.MismatchComfortPenalty)
	}
	if b.specialNeeds.GasIssues {
		b.needs.Add(domain.NeedComfort, -b.cfg.GasComfortPenalty)
	}
	b.needs.ApplyFeed(effectiveness)
	b.lastFed = now

	if b.rnd() < b.cfg.SleepOnFeedChance {
		b.sleeping = true
		b.needs.Add(domain.NeedSleepiness, -b.cfg.SleepOnFeedRelief)
	}
	return true
}

// ChangeDiaper resets cleanliness and soothes the baby. A no-op returning
// false while cleanliness is above the diaper threshold.
func (b *Baby) ChangeDiaper(now float64) bool {
	if !b.needs.ApplyDiaperChange(b.cfg.DiaperThreshold) {
		return false
	}
	b.needs.ApplyComfort(b.cfg.DiaperComfortBonus)
	b.lastChanged = now
	return true
}

// NeedsChange reports whether a diaper change would be accepted
func (b *Baby) NeedsChange() bool {
	return b.needs.Get(domain.NeedCleanliness) <= b.cfg.DiaperThreshold
}

// Comfort always raises comfort. A very sleepy baby also gets a little
// sleepier so it settles sooner.
func (b *Baby) Comfort(amount float64) bool {
	b.needs.ApplyComfort(amount)
	if b.needs.Get(domain.NeedSleepiness) > b.cfg.ComfortSleepyAbove {
		b.needs.Add(domain.NeedSleepiness, b.cfg.ComfortSleepinessNudge)
	}
	return true
}

// HelpSleep settles the baby to sleep
func (b *Baby) HelpSleep() bool {
	b.needs.Add(domain.NeedSleepiness, -b.cfg.HelpSleepRelief)
	b.needs.Add(domain.NeedHunger, b.cfg.HelpSleepHungerCost)
	b.sleeping = true
	return true
}

// IsSleeping reports the state machine position
func (b *Baby) IsSleeping() bool { return b.sleeping }

// IsCrying is true while awake and hungry, dirty or uncomfortable
func (b *Baby) IsCrying() bool {
	if b.sleeping {
		return false
	}
	return b.needs.Get(domain.NeedHunger) > b.cfg.CryHunger ||
		b.needs.Get(domain.NeedCleanliness) < b.cfg.CryCleanliness ||
		b.needs.Get(domain.NeedComfort) < b.cfg.CryComfort
}

// Need returns one need value
func (b *Baby) Need(n domain.Need) float64 { return b.needs.Get(n) }

// SetNeed overrides a need, clamped
func (b *Baby) SetNeed(n domain.Need, v float64) { b.needs.Set(n, v) }

// Needs returns a copy of every need
func (b *Baby) Needs() map[domain.Need]float64 { return b.needs.Snapshot() }

// Personality is fixed at creation
func (b *Baby) Personality() domain.Personality { return b.personality }

// SpecialNeeds are fixed at creation
func (b *Baby) SpecialNeeds() domain.SpecialNeeds { return b.specialNeeds }

// SetSpecialNeeds overrides the rolled special needs
func (b *Baby) SetSpecialNeeds(sn domain.SpecialNeeds) { b.specialNeeds = sn }

// LastFed returns the game hour of the last feed
func (b *Baby) LastFed() float64 { return b.lastFed }

// LastChanged returns the game hour of the last diaper change
func (b *Baby) LastChanged() float64 { return b.lastChanged }

// StatusSummary implements Actor
func (b *Baby) StatusSummary() Summary {
	status := StatusAwake
	switch {
	case b.sleeping:
		status = StatusSleeping
	case b.IsCrying():
		status = StatusCrying
	case b.needs.Get(domain.NeedComfort) > 80 && b.needs.Get(domain.NeedHunger) < 30:
		status = StatusHappy
	}
	return Summary{
		ID:       b.id,
		Name:     b.name,
		Kind:     domain.ActorBaby,
		Position: b.position,
		Status:   status,
		Needs:    b.needs.Snapshot(),
		Baby: &BabyDetail{
			Personality:  b.personality,
			SpecialNeeds: b.specialNeeds,
			Sleeping:     b.sleeping,
			Crying:       b.IsCrying(),
			AgeHours:     b.ageHours,
			LastFed:      b.lastFed,
			LastChanged:  b.lastChanged,
		},
	}
}
