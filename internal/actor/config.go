package actor

import (
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/needs"
)

// PersonalityTraits scale a baby's hunger and sleepiness accrual
type PersonalityTraits struct {
	Hunger     float64 `yaml:"hunger"`
	Sleepiness float64 `yaml:"sleepiness"`
}

// BabyConfig holds every baby rate and threshold
type BabyConfig struct {
	Initial       map[domain.Need]float64 `yaml:"initial"`
	AwakeRates    needs.Rates             `yaml:"awake_rates"`
	SleepingRates needs.Rates             `yaml:"sleeping_rates"`

	// Awake comfort loss while hungry or dirty
	DiscomfortRate             float64 `yaml:"discomfort_rate"`
	DiscomfortHungerAbove      float64 `yaml:"discomfort_hunger_above"`
	DiscomfortCleanlinessBelow float64 `yaml:"discomfort_cleanliness_below"`
	ColicComfortPerLevel       float64 `yaml:"colic_comfort_per_level"`

	FallAsleepSleepiness float64 `yaml:"fall_asleep_sleepiness"`
	FallAsleepComfort    float64 `yaml:"fall_asleep_comfort"`
	WakeHunger           float64 `yaml:"wake_hunger"`
	WakeCleanliness      float64 `yaml:"wake_cleanliness"`

	CryHunger      float64 `yaml:"cry_hunger"`
	CryCleanliness float64 `yaml:"cry_cleanliness"`
	CryComfort     float64 `yaml:"cry_comfort"`

	Personalities map[domain.Personality]PersonalityTraits `yaml:"personalities"`

	SensitiveFormulaChance float64 `yaml:"sensitive_formula_chance"`
	GasIssuesChance        float64 `yaml:"gas_issues_chance"`
	MaxColicLevel          int     `yaml:"max_colic_level"`

	FeedMinHunger          float64 `yaml:"feed_min_hunger"`
	FeedEffectiveness      float64 `yaml:"feed_effectiveness"`
	MismatchFactor         float64 `yaml:"mismatch_factor"`
	MismatchComfortPenalty float64 `yaml:"mismatch_comfort_penalty"`
	GasComfortPenalty      float64 `yaml:"gas_comfort_penalty"`
	SleepOnFeedChance      float64 `yaml:"sleep_on_feed_chance"`
	SleepOnFeedRelief      float64 `yaml:"sleep_on_feed_relief"`

	DiaperThreshold    float64 `yaml:"diaper_threshold"`
	DiaperComfortBonus float64 `yaml:"diaper_comfort_bonus"`

	ComfortAmount          float64 `yaml:"comfort_amount"`
	ComfortSleepyAbove     float64 `yaml:"comfort_sleepy_above"`
	ComfortSleepinessNudge float64 `yaml:"comfort_sleepiness_nudge"`

	HelpSleepRelief     float64 `yaml:"help_sleep_relief"`
	HelpSleepHungerCost float64 `yaml:"help_sleep_hunger_cost"`
}

// DefaultBabyConfig returns the canonical baby rate table
func DefaultBabyConfig() BabyConfig {
	return BabyConfig{
		Initial: map[domain.Need]float64{
			domain.NeedHunger:      60,
			domain.NeedCleanliness: 80,
			domain.NeedComfort:     70,
			domain.NeedSleepiness:  40,
		},
		AwakeRates: needs.Rates{
			domain.NeedHunger:      12,
			domain.NeedCleanliness: -5,
			domain.NeedSleepiness:  10,
		},
		SleepingRates: needs.Rates{
			domain.NeedHunger:      6,
			domain.NeedCleanliness: -3,
			domain.NeedSleepiness:  -20,
			domain.NeedComfort:     8,
		},
		DiscomfortRate:             -8,
		DiscomfortHungerAbove:      70,
		DiscomfortCleanlinessBelow: 30,
		ColicComfortPerLevel:       -1,
		FallAsleepSleepiness:       90,
		FallAsleepComfort:          50,
		WakeHunger:                 80,
		WakeCleanliness:            20,
		CryHunger:                  80,
		CryCleanliness:             20,
		CryComfort:                 30,
		Personalities: map[domain.Personality]PersonalityTraits{
			domain.PersonalityEasy:      {Hunger: 0.75, Sleepiness: 0.8},
			domain.PersonalityNormal:    {Hunger: 1, Sleepiness: 1},
			domain.PersonalityDifficult: {Hunger: 1.5, Sleepiness: 1.5},
		},
		SensitiveFormulaChance: 0.3,
		GasIssuesChance:        0.4,
		MaxColicLevel:          4,
		FeedMinHunger:          20,
		FeedEffectiveness:      40,
		MismatchFactor:         0.5,
		MismatchComfortPenalty: 10,
		GasComfortPenalty:      5,
		SleepOnFeedChance:      0.7,
		SleepOnFeedRelief:      20,
		DiaperThreshold:        80,
		DiaperComfortBonus:     15,
		ComfortAmount:          20,
		ComfortSleepyAbove:     60,
		ComfortSleepinessNudge: 10,
		HelpSleepRelief:        60,
		HelpSleepHungerCost:    20,
	}
}

// SkillRange bounds a rolled caregiver skill
type SkillRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// CaregiverConfig holds every caregiver rate and threshold
type CaregiverConfig struct {
	Initial map[domain.Need]float64 `yaml:"initial"`

	HungerRate           float64 `yaml:"hunger_rate"`
	TirednessRate        float64 `yaml:"tiredness_rate"`
	StressRate           float64 `yaml:"stress_rate"`
	StressRecoveryRate   float64 `yaml:"stress_recovery_rate"`
	StressHungerAbove    float64 `yaml:"stress_hunger_above"`
	StressTirednessAbove float64 `yaml:"stress_tiredness_above"`
	CryingStressRate     float64 `yaml:"crying_stress_rate"`

	Caregiving   SkillRange `yaml:"caregiving"`
	Efficiency   SkillRange `yaml:"efficiency"`
	Multitasking SkillRange `yaml:"multitasking"`

	MaxQueue             int     `yaml:"max_queue"`
	MultitaskingPerSlot  float64 `yaml:"multitasking_per_slot"`
	TirednessPerLostSlot float64 `yaml:"tiredness_per_lost_slot"`
	MinEfficiency        float64 `yaml:"min_efficiency"`

	ExhaustionTiredness  float64 `yaml:"exhaustion_tiredness"`
	ExhaustionFailChance float64 `yaml:"exhaustion_fail_chance"`
	OverwhelmStress      float64 `yaml:"overwhelm_stress"`
	OverwhelmDropChance  float64 `yaml:"overwhelm_drop_chance"`

	EatMinHunger float64 `yaml:"eat_min_hunger"`
	EatRelief    float64 `yaml:"eat_relief"`

	SleepRecoveryPerHour  float64 `yaml:"sleep_recovery_per_hour"`
	SleepHistorySize      int     `yaml:"sleep_history_size"`
	SleepHistoryInitial   float64 `yaml:"sleep_history_initial"`
	SleepDeprivationHours float64 `yaml:"sleep_deprivation_hours"`
	BrainDamagePerDeficit float64 `yaml:"brain_damage_per_deficit"`

	StruggleAbove float64 `yaml:"struggle_above"`
	StressedAbove float64 `yaml:"stressed_above"`
}

// DefaultCaregiverConfig returns the canonical caregiver rate table
func DefaultCaregiverConfig() CaregiverConfig {
	return CaregiverConfig{
		Initial: map[domain.Need]float64{
			domain.NeedHunger:    50,
			domain.NeedTiredness: 30,
			domain.NeedStress:    20,
		},
		HungerRate:            6,
		TirednessRate:         4,
		StressRate:            8,
		StressRecoveryRate:    2,
		StressHungerAbove:     70,
		StressTirednessAbove:  70,
		CryingStressRate:      3,
		Caregiving:            SkillRange{Min: 50, Max: 80},
		Efficiency:            SkillRange{Min: 50, Max: 80},
		Multitasking:          SkillRange{Min: 30, Max: 70},
		MaxQueue:              3,
		MultitaskingPerSlot:   20,
		TirednessPerLostSlot:  30,
		MinEfficiency:         0.1,
		ExhaustionTiredness:   90,
		ExhaustionFailChance:  0.1,
		OverwhelmStress:       80,
		OverwhelmDropChance:   0.1,
		EatMinHunger:          20,
		EatRelief:             40,
		SleepRecoveryPerHour:  20,
		SleepHistorySize:      24,
		SleepHistoryInitial:   1,
		SleepDeprivationHours: 4,
		BrainDamagePerDeficit: 1,
		StruggleAbove:         80,
		StressedAbove:         70,
	}
}

// StationConfig holds feeding station capacities
type StationConfig struct {
	WaterCapacity float64 `yaml:"water_capacity"`
	MaxUses       int     `yaml:"max_uses"`
	WaterPerBatch float64 `yaml:"water_per_batch"`
	BatchSize     float64 `yaml:"batch_size"`
	LowWater      float64 `yaml:"low_water"`
}

// DefaultStationConfig returns the standard station
func DefaultStationConfig() StationConfig {
	return StationConfig{
		WaterCapacity: 100,
		MaxUses:       4,
		WaterPerBatch: 20,
		BatchSize:     3,
		LowWater:      20,
	}
}

// Config groups the per-variant tables
type Config struct {
	Baby      BabyConfig      `yaml:"baby"`
	Caregiver CaregiverConfig `yaml:"caregiver"`
	Station   StationConfig   `yaml:"station"`
}

// DefaultConfig returns the canonical actor tables
func DefaultConfig() Config {
	return Config{
		Baby:      DefaultBabyConfig(),
		Caregiver: DefaultCaregiverConfig(),
		Station:   DefaultStationConfig(),
	}
}
