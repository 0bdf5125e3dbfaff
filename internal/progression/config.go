package progression

import "github.com/osse101/WhineTime/internal/domain"

// Upgrade is a one-time household purchase
type Upgrade string

// Upgrades
const (
	UpgradeFasterFeeding    Upgrade = "faster_feeding"
	UpgradeEfficientFormula Upgrade = "efficient_formula"
	UpgradeAutoComfort      Upgrade = "auto_comfort"
	UpgradeDoubleHappiness  Upgrade = "double_happiness"
	UpgradeStressReduction  Upgrade = "stress_reduction"
	UpgradeBonusMoney       Upgrade = "bonus_money"
)

// AllUpgrades returns upgrades in shop order
func AllUpgrades() []Upgrade {
	return []Upgrade{
		UpgradeFasterFeeding,
		UpgradeEfficientFormula,
		UpgradeAutoComfort,
		UpgradeDoubleHappiness,
		UpgradeStressReduction,
		UpgradeBonusMoney,
	}
}

// Achievement is a one-time milestone
type Achievement string

// Achievements
const (
	AchievementFirstSteps    Achievement = "first_steps"
	AchievementCaringMaster  Achievement = "caring_master"
	AchievementWealthy       Achievement = "wealthy"
	AchievementHappinessGuru Achievement = "happiness_guru"
	AchievementExperienced   Achievement = "experienced"
	AchievementSurvivor      Achievement = "survivor"
)

// AllAchievements returns achievements in check order
func AllAchievements() []Achievement {
	return []Achievement{
		AchievementFirstSteps,
		AchievementCaringMaster,
		AchievementWealthy,
		AchievementHappinessGuru,
		AchievementExperienced,
		AchievementSurvivor,
	}
}

// TaskReward is what finishing one task of a type earns
type TaskReward struct {
	XP        int64 `yaml:"xp"`
	Happiness int64 `yaml:"happiness"`
}

// AchievementRule is the threshold and money reward of one achievement
type AchievementRule struct {
	Threshold float64 `yaml:"threshold"`
	Reward    float64 `yaml:"reward"`
}

// Config holds the progression curve, rewards and prices
type Config struct {
	BaseXP          float64                         `yaml:"base_xp"`
	LevelExponent   float64                         `yaml:"level_exponent"`
	MaxLevel        int                             `yaml:"max_level"`
	LevelUpBonus    float64                         `yaml:"level_up_bonus"`
	TaskRewards     map[domain.TaskType]TaskReward  `yaml:"task_rewards"`
	UpgradeCosts    map[Upgrade]float64             `yaml:"upgrade_costs"`
	Achievements    map[Achievement]AchievementRule `yaml:"achievements"`
	HappinessFactor int64                           `yaml:"happiness_factor"`
}

// DefaultConfig returns the standard progression table
func DefaultConfig() Config {
	return Config{
		BaseXP:        100,
		LevelExponent: 1,
		MaxLevel:      100,
		LevelUpBonus:  50,
		TaskRewards: map[domain.TaskType]TaskReward{
			domain.TaskFeed:        {XP: 10, Happiness: 5},
			domain.TaskSleep:       {XP: 15, Happiness: 8},
			domain.TaskComfort:     {XP: 5, Happiness: 3},
			domain.TaskMakeFormula: {XP: 5, Happiness: 0},
			domain.TaskRefillWater: {XP: 2, Happiness: 0},
		},
		UpgradeCosts: map[Upgrade]float64{
			UpgradeFasterFeeding:    300,
			UpgradeEfficientFormula: 400,
			UpgradeAutoComfort:      250,
			UpgradeDoubleHappiness:  500,
			UpgradeStressReduction:  350,
			UpgradeBonusMoney:       600,
		},
		Achievements: map[Achievement]AchievementRule{
			AchievementFirstSteps:    {Threshold: 1, Reward: 50},
			AchievementCaringMaster:  {Threshold: 100, Reward: 200},
			AchievementWealthy:       {Threshold: 2000, Reward: 300},
			AchievementHappinessGuru: {Threshold: 500, Reward: 150},
			AchievementExperienced:   {Threshold: 10, Reward: 500},
			AchievementSurvivor:      {Threshold: 30, Reward: 400},
		},
		HappinessFactor: 2,
	}
}
