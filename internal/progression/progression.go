// Package progression tracks experience, levels, happiness, achievements and
// purchased upgrades for one game.
package progression

import "github.com/osse101/WhineTime/internal/domain"

// Wallet is the money the tracker pays rewards into and buys upgrades from
type Wallet interface {
	Balance() float64
	Credit(amount float64)
	Debit(amount float64) bool
}

// LevelUp describes one level gained
type LevelUp struct {
	OldLevel int     `json:"old_level"`
	NewLevel int     `json:"new_level"`
	Reward   float64 `json:"reward"`
}

// Unlock describes one achievement earned
type Unlock struct {
	Achievement Achievement `json:"achievement"`
	Reward      float64     `json:"reward"`
}

// Progress is a read-only copy of the tracker
type Progress struct {
	XP             int64    `json:"xp"`
	Level          int      `json:"level"`
	XPToNext       int64    `json:"xp_to_next"`
	Happiness      int64    `json:"happiness"`
	TasksCompleted int      `json:"tasks_completed"`
	BabiesCaredFor int      `json:"babies_cared_for"`
	TotalEarned    float64  `json:"total_earned"`
	Achievements   []string `json:"achievements"`
	Upgrades       []string `json:"upgrades"`
}

// Tracker accumulates progress. Achievements and upgrades are one-time.
type Tracker struct {
	cfg            Config
	xp             int64
	level          int
	happiness      int64
	tasksCompleted int
	babiesCaredFor int
	totalEarned    float64
	achievements   map[Achievement]bool
	upgrades       map[Upgrade]bool
}

// NewTracker starts at level 1 with nothing unlocked
func NewTracker(cfg Config) *Tracker {
	return &Tracker{
		cfg:          cfg,
		level:        1,
		achievements: make(map[Achievement]bool),
		upgrades:     make(map[Upgrade]bool),
	}
}

// AwardXP adds experience and pays newLevel × bonus for every level gained
func (t *Tracker) AwardXP(amount int64, w Wallet) []LevelUp {
	if amount <= 0 {
		return nil
	}
	t.xp += amount
	newLevel := t.CalculateLevel(t.xp)

	var ups []LevelUp
	for t.level < newLevel {
		old := t.level
		t.level++
		reward := float64(t.level) * t.cfg.LevelUpBonus
		w.Credit(reward)
		ups = append(ups, LevelUp{OldLevel: old, NewLevel: t.level, Reward: reward})
	}
	return ups
}

// AddHappiness adds to the happiness counter
func (t *Tracker) AddHappiness(amount int64) {
	t.happiness += amount
}

// CompleteTask records a finished task and awards its XP and happiness
func (t *Tracker) CompleteTask(task domain.TaskType, w Wallet) (TaskReward, []LevelUp) {
	reward := t.cfg.TaskRewards[task]
	if t.upgrades[UpgradeDoubleHappiness] && t.cfg.HappinessFactor > 0 {
		reward.Happiness *= t.cfg.HappinessFactor
	}
	t.tasksCompleted++
	t.AddHappiness(reward.Happiness)
	return reward, t.AwardXP(reward.XP, w)
}

// RecordFeeding counts one successful feeding toward babies cared for
func (t *Tracker) RecordFeeding() {
	t.babiesCaredFor++
}

// RecordEarnings counts income toward the wealth achievement
func (t *Tracker) RecordEarnings(amount float64) {
	if amount > 0 {
		t.totalEarned += amount
	}
}

// CheckAchievements unlocks every newly met achievement and pays its reward
func (t *Tracker) CheckAchievements(day int, w Wallet) []Unlock {
	var unlocked []Unlock
	for _, a := range AllAchievements() {
		if t.achievements[a] {
			continue
		}
		rule, ok := t.cfg.Achievements[a]
		if !ok || t.metric(a, day) < rule.Threshold {
			continue
		}
		t.achievements[a] = true
		w.Credit(rule.Reward)
		unlocked = append(unlocked, Unlock{Achievement: a, Reward: rule.Reward})
	}
	return unlocked
}

func (t *Tracker) metric(a Achievement, day int) float64 {
	switch a {
	case AchievementFirstSteps:
		return float64(t.babiesCaredFor)
	case AchievementCaringMaster:
		return float64(t.tasksCompleted)
	case AchievementWealthy:
		return t.totalEarned
	case AchievementHappinessGuru:
		return float64(t.happiness)
	case AchievementExperienced:
		return float64(t.level)
	case AchievementSurvivor:
		return float64(day)
	default:
		return 0
	}
}

// HasUpgrade reports whether u was bought
func (t *Tracker) HasUpgrade(u Upgrade) bool {
	return t.upgrades[u]
}

// UpgradeCost returns the price of u and whether it exists
func (t *Tracker) UpgradeCost(u Upgrade) (float64, bool) {
	c, ok := t.cfg.UpgradeCosts[u]
	return c, ok
}

// BuyUpgrade debits the cost and marks u owned. Fails for unknown or owned
// upgrades and when money is short.
func (t *Tracker) BuyUpgrade(u Upgrade, w Wallet) bool {
	cost, ok := t.UpgradeCost(u)
	if !ok || t.upgrades[u] {
		return false
	}
	if !w.Debit(cost) {
		return false
	}
	t.upgrades[u] = true
	return true
}

// Level returns the current level
func (t *Tracker) Level() int { return t.level }

// XP returns total experience
func (t *Tracker) XP() int64 { return t.xp }

// Happiness returns the happiness counter
func (t *Tracker) Happiness() int64 { return t.happiness }

// TasksCompleted returns the finished task count
func (t *Tracker) TasksCompleted() int { return t.tasksCompleted }

// Snapshot returns a copy of the tracker state with achievements and
// upgrades in their canonical order
func (t *Tracker) Snapshot() Progress {
	p := Progress{
		XP:             t.xp,
		Level:          t.level,
		XPToNext:       t.XPToNextLevel(),
		Happiness:      t.happiness,
		TasksCompleted: t.tasksCompleted,
		BabiesCaredFor: t.babiesCaredFor,
		TotalEarned:    t.totalEarned,
		Achievements:   []string{},
		Upgrades:       []string{},
	}
	for _, a := range AllAchievements() {
		if t.achievements[a] {
			p.Achievements = append(p.Achievements, string(a))
		}
	}
	for _, u := range AllUpgrades() {
		if t.upgrades[u] {
			p.Upgrades = append(p.Upgrades, string(u))
		}
	}
	return p
}
