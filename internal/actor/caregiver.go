package actor

import (
	"math"
	"sort"
	"time"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/needs"
	"github.com/osse101/WhineTime/internal/utils"
)

type queuedTask struct {
	task domain.Task
	seq  uint64
}

// Caregiver works through a priority-ordered task queue. One task at most is
// current. Capacity gates AddTask only: tasks already queued stay when
// tiredness later lowers it.
type Caregiver struct {
	base
	cfg           CaregiverConfig
	needs         *needs.Model
	gender        domain.Gender
	skills        domain.Skills
	brainDamage   float64
	breastfeeding bool
	sleepHistory  []float64
	queue         []queuedTask
	current       *domain.Task
	finished      []domain.Task
	nextSeq       uint64
	rnd           func() float64
}

// NewCaregiver rolls skills from rnd
func NewCaregiver(id, name string, gender domain.Gender, cfg CaregiverConfig, rnd func() float64) *Caregiver {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	history := make([]float64, cfg.SleepHistorySize)
	for i := range history {
		history[i] = cfg.SleepHistoryInitial
	}
	return &Caregiver{
		base:   base{id: id, name: name},
		cfg:    cfg,
		needs:  needs.New(cfg.Initial),
		gender: gender,
		skills: domain.Skills{
			Caregiving:   utils.RollFloatRange(rnd(), cfg.Caregiving.Min, cfg.Caregiving.Max),
			Efficiency:   utils.RollFloatRange(rnd(), cfg.Efficiency.Min, cfg.Efficiency.Max),
			Multitasking: utils.RollFloatRange(rnd(), cfg.Multitasking.Min, cfg.Multitasking.Max),
		},
		sleepHistory: history,
		rnd:          rnd,
	}
}

// Kind implements Actor
func (c *Caregiver) Kind() domain.ActorKind { return domain.ActorCaregiver }

// OnInteract implements Actor. Caregivers are not task targets.
func (c *Caregiver) OnInteract() []domain.TaskType { return nil }

// Advance updates needs, then works on the current task
func (c *Caregiver) Advance(dt time.Duration, env Env) {
	if dt <= 0 {
		return
	}
	c.advanceNeeds(dt, env)
	c.processTasks(dt)
}

func (c *Caregiver) advanceNeeds(dt time.Duration, env Env) {
	mult := env.stressMultiplier()
	rates := needs.Rates{domain.NeedHunger: c.cfg.HungerRate}
	if !c.IsResting() {
		rates[domain.NeedTiredness] = c.cfg.TirednessRate
	}

	stress := -c.cfg.StressRecoveryRate
	if c.needs.Get(domain.NeedHunger) > c.cfg.StressHungerAbove ||
		c.needs.Get(domain.NeedTiredness) > c.cfg.StressTirednessAbove {
		stress = c.cfg.StressRate * mult
	}
	stress += float64(env.CryingBabies) * c.cfg.CryingStressRate * mult
	rates[domain.NeedStress] = stress

	c.needs.Advance(dt, rates)
}

func (c *Caregiver) processTasks(dt time.Duration) {
	if c.current == nil && len(c.queue) > 0 {
		next := c.queue[0].task
		c.queue = c.queue[1:]
		next.Status = domain.TaskInProgress
		c.current = &next
	}

	if c.current != nil {
		if c.needs.Get(domain.NeedTiredness) > c.cfg.ExhaustionTiredness && c.rnd() < c.cfg.ExhaustionFailChance {
			c.finish(domain.TaskFailed)
		} else {
			progress := time.Duration(float64(dt) * c.Efficiency() * c.skills.Caregiving / 100)
			if progress <= 0 {
				progress = 1
			}
			c.current.Remaining -= progress
			if c.current.Remaining <= 0 {
				c.current.Remaining = 0
				c.finish(domain.TaskCompleted)
			}
		}
	}

	if len(c.queue) > 0 && c.needs.Get(domain.NeedStress) > c.cfg.OverwhelmStress && c.rnd() < c.cfg.OverwhelmDropChance {
		c.dropNewest()
	}
}

func (c *Caregiver) finish(status domain.TaskStatus) {
	t := *c.current
	t.Status = status
	c.finished = append(c.finished, t)
	c.current = nil
}

func (c *Caregiver) dropNewest() {
	newest := 0
	for i, q := range c.queue {
		if q.seq > c.queue[newest].seq {
			newest = i
		}
	}
	t := c.queue[newest].task
	t.Status = domain.TaskFailed
	c.finished = append(c.finished, t)
	c.queue = append(c.queue[:newest], c.queue[newest+1:]...)
}

// Capacity is how many tasks may wait in the queue right now
func (c *Caregiver) Capacity() int {
	slots := int(math.Floor(c.skills.Multitasking/c.cfg.MultitaskingPerSlot)) -
		int(math.Floor(c.needs.Get(domain.NeedTiredness)/c.cfg.TirednessPerLostSlot))
	if slots < 1 {
		slots = 1
	}
	if c.cfg.MaxQueue > 0 && slots > c.cfg.MaxQueue {
		slots = c.cfg.MaxQueue
	}
	return slots
}

// Efficiency scales task progress, never below the configured floor
func (c *Caregiver) Efficiency() float64 {
	e := (1 - c.needs.Get(domain.NeedTiredness)/100) *
		(1 - c.needs.Get(domain.NeedHunger)/100) *
		(1 - c.brainDamage/100) *
		(c.skills.Efficiency / 100)
	return math.Max(c.cfg.MinEfficiency, e)
}

// AddTask queues t, keeping the queue sorted by descending priority with
// insertion order breaking ties. Fails while the queue holds Capacity tasks
// or more.
func (c *Caregiver) AddTask(t domain.Task) bool {
	if len(c.queue) >= c.Capacity() {
		return false
	}
	t.Status = domain.TaskPending
	if t.Remaining <= 0 {
		t.Remaining = t.Duration
	}
	c.nextSeq++
	c.queue = append(c.queue, queuedTask{task: t, seq: c.nextSeq})
	sort.SliceStable(c.queue, func(i, j int) bool {
		return c.queue[i].task.Priority > c.queue[j].task.Priority
	})
	return true
}

// CurrentTask returns a copy of the task in progress
func (c *Caregiver) CurrentTask() (domain.Task, bool) {
	if c.current == nil {
		return domain.Task{}, false
	}
	return *c.current, true
}

// Queue returns a copy of the waiting tasks in execution order
func (c *Caregiver) Queue() []domain.Task {
	out := make([]domain.Task, len(c.queue))
	for i, q := range c.queue {
		out[i] = q.task
	}
	return out
}

// DrainFinished returns completed and failed tasks since the last call
func (c *Caregiver) DrainFinished() []domain.Task {
	out := c.finished
	c.finished = nil
	return out
}

// Eat reduces hunger. Rejected when not hungry enough.
func (c *Caregiver) Eat() bool {
	if c.needs.Get(domain.NeedHunger) < c.cfg.EatMinHunger {
		return false
	}
	c.needs.Add(domain.NeedHunger, -c.cfg.EatRelief)
	return true
}

// CanEat reports whether Eat would be accepted
func (c *Caregiver) CanEat() bool {
	return c.needs.Get(domain.NeedHunger) >= c.cfg.EatMinHunger
}

// Sleep recovers tiredness and records the hours in the rolling history.
// A history total under the deprivation limit adds permanent brain damage.
func (c *Caregiver) Sleep(hours float64) bool {
	if !c.needs.ApplySleep(hours, c.cfg.SleepRecoveryPerHour) {
		return false
	}
	if len(c.sleepHistory) > 0 {
		c.sleepHistory = append(c.sleepHistory[1:], hours)
	}
	total := 0.0
	for _, h := range c.sleepHistory {
		total += h
	}
	if total < c.cfg.SleepDeprivationHours {
		c.brainDamage = math.Min(100, c.brainDamage+c.cfg.BrainDamagePerDeficit)
	}
	return true
}

// SleepHistory returns a copy of the rolling sleep samples, oldest first
func (c *Caregiver) SleepHistory() []float64 {
	out := make([]float64, len(c.sleepHistory))
	copy(out, c.sleepHistory)
	return out
}

// CanBreastfeed requires a female caregiver who is free
func (c *Caregiver) CanBreastfeed() bool {
	return c.gender == domain.GenderFemale && !c.breastfeeding && c.current == nil
}

// StartBreastfeeding sets the flag when CanBreastfeed allows it
func (c *Caregiver) StartBreastfeeding() bool {
	if !c.CanBreastfeed() {
		return false
	}
	c.breastfeeding = true
	return true
}

// StopBreastfeeding clears the flag. Returns false if it was not set.
func (c *Caregiver) StopBreastfeeding() bool {
	if !c.breastfeeding {
		return false
	}
	c.breastfeeding = false
	return true
}

// IsBreastfeeding reports the flag
func (c *Caregiver) IsBreastfeeding() bool { return c.breastfeeding }

// IsResting is true while breastfeeding or working a sleep task
func (c *Caregiver) IsResting() bool {
	return c.breastfeeding || (c.current != nil && c.current.Type == domain.TaskSleep)
}

// RelieveStress lowers stress by amount
func (c *Caregiver) RelieveStress(amount float64) {
	c.needs.Add(domain.NeedStress, -amount)
}

// AddNeed shifts one need, clamped
func (c *Caregiver) AddNeed(n domain.Need, delta float64) { c.needs.Add(n, delta) }

// SetNeed overrides a need, clamped
func (c *Caregiver) SetNeed(n domain.Need, v float64) { c.needs.Set(n, v) }

// Need returns one need value
func (c *Caregiver) Need(n domain.Need) float64 { return c.needs.Get(n) }

// Needs returns a copy of every need
func (c *Caregiver) Needs() map[domain.Need]float64 { return c.needs.Snapshot() }

// Gender is fixed at creation
func (c *Caregiver) Gender() domain.Gender { return c.gender }

// Skills are fixed at creation
func (c *Caregiver) Skills() domain.Skills { return c.skills }

// SetSkills overrides the rolled skills
func (c *Caregiver) SetSkills(s domain.Skills) { c.skills = s }

// BrainDamage never decreases
func (c *Caregiver) BrainDamage() float64 { return c.brainDamage }

// StatusSummary implements Actor
func (c *Caregiver) StatusSummary() Summary {
	status := StatusIdle
	switch {
	case c.breastfeeding:
		status = StatusBreastfeeding
	case c.needs.Get(domain.NeedTiredness) > c.cfg.StruggleAbove || c.needs.Get(domain.NeedHunger) > c.cfg.StruggleAbove:
		status = StatusStruggling
	case c.needs.Get(domain.NeedStress) > c.cfg.StressedAbove:
		status = StatusStressed
	case c.current != nil:
		status = StatusBusy
	}

	var current *domain.Task
	if t, ok := c.CurrentTask(); ok {
		current = &t
	}
	return Summary{
		ID:       c.id,
		Name:     c.name,
		Kind:     domain.ActorCaregiver,
		Position: c.position,
		Status:   status,
		Needs:    c.needs.Snapshot(),
		Caregiver: &CaregiverDetail{
			Gender:        c.gender,
			Skills:        c.skills,
			BrainDamage:   c.brainDamage,
			Breastfeeding: c.breastfeeding,
			Efficiency:    c.Efficiency(),
			Capacity:      c.Capacity(),
			CurrentTask:   current,
			Queue:         c.Queue(),
		},
	}
}
