package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/WhineTime/internal/actor"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/ledger"
	"github.com/osse101/WhineTime/internal/loan"
	"github.com/osse101/WhineTime/internal/outcome"
	"github.com/osse101/WhineTime/internal/progression"
)

// Balance is the single table of tunable simulation constants
type Balance struct {
	Actors      actor.Config       `yaml:"actors"`
	Ledger      ledger.Config      `yaml:"ledger"`
	Loan        loan.Config        `yaml:"loan"`
	Outcome     outcome.Config     `yaml:"outcome"`
	Progression progression.Config `yaml:"progression"`
	Household   Household          `yaml:"household"`
}

// Household holds the rules that span several subsystems
type Household struct {
	PlayerName      string `yaml:"player_name"`
	FirstBabyName   string `yaml:"first_baby_name"`
	StationName     string `yaml:"station_name"`
	DefaultPriority int    `yaml:"default_priority"`

	Work              WorkRules                         `yaml:"work"`
	DailyIncome       float64                           `yaml:"daily_income"`
	BonusDailyIncome  float64                           `yaml:"bonus_daily_income"`
	RandomEventChance float64                           `yaml:"random_event_chance"`
	Events            EventRules                        `yaml:"events"`
	TaskDurations     map[domain.TaskType]time.Duration `yaml:"task_durations"`
	Upgrades          UpgradeEffects                    `yaml:"upgrades"`
	FoodPerMeal       float64                           `yaml:"food_per_meal"`
}

// WorkRules govern a shift at work
type WorkRules struct {
	Earnings      float64 `yaml:"earnings"`
	Hours         float64 `yaml:"hours"`
	TirednessCost float64 `yaml:"tiredness_cost"`
	MaxTiredness  float64 `yaml:"max_tiredness"`
}

// EventRules are the amounts granted by daily random events
type EventRules struct {
	Donation        float64 `yaml:"donation"`
	Appreciation    int64   `yaml:"appreciation"`
	FormulaDelivery float64 `yaml:"formula_delivery"`
	VolunteerRelief float64 `yaml:"volunteer_relief"`
}

// UpgradeEffects are the boosted values an owned upgrade switches to
type UpgradeEffects struct {
	FasterFeedingEffectiveness float64 `yaml:"faster_feeding_effectiveness"`
	EfficientFormulaBatch      float64 `yaml:"efficient_formula_batch"`
	AutoComfortAmount          float64 `yaml:"auto_comfort_amount"`
	StressReductionMultiplier  float64 `yaml:"stress_reduction_multiplier"`
}

// DefaultHousehold returns the standard household rules
func DefaultHousehold() Household {
	return Household{
		PlayerName:      "Parent",
		FirstBabyName:   "Baby",
		StationName:     "Feeding Station",
		DefaultPriority: 1,
		Work: WorkRules{
			Earnings:      100,
			Hours:         8,
			TirednessCost: 30,
			MaxTiredness:  80,
		},
		DailyIncome:       50,
		BonusDailyIncome:  100,
		RandomEventChance: 0.3,
		Events: EventRules{
			Donation:        200,
			Appreciation:    20,
			FormulaDelivery: 5,
			VolunteerRelief: 15,
		},
		TaskDurations: map[domain.TaskType]time.Duration{
			domain.TaskFeed:        15 * time.Minute,
			domain.TaskSleep:       20 * time.Minute,
			domain.TaskComfort:     10 * time.Minute,
			domain.TaskMakeFormula: 10 * time.Minute,
			domain.TaskRefillWater: 5 * time.Minute,
		},
		Upgrades: UpgradeEffects{
			FasterFeedingEffectiveness: 70,
			EfficientFormulaBatch:      5,
			AutoComfortAmount:          25,
			StressReductionMultiplier:  0.5,
		},
		FoodPerMeal: 1,
	}
}

// DefaultBalance returns the canonical table
func DefaultBalance() Balance {
	return Balance{
		Actors:      actor.DefaultConfig(),
		Ledger:      ledger.DefaultConfig(),
		Loan:        loan.DefaultConfig(),
		Outcome:     outcome.DefaultConfig(),
		Progression: progression.DefaultConfig(),
		Household:   DefaultHousehold(),
	}
}

// CasualBalance returns a gentler table for new players
func CasualBalance() Balance {
	b := DefaultBalance()
	b.Actors.Baby.AwakeRates[domain.NeedHunger] = 8
	b.Actors.Baby.AwakeRates[domain.NeedCleanliness] = -4
	b.Actors.Caregiver.TirednessRate = 3
	b.Actors.Caregiver.ExhaustionFailChance = 0.05
	b.Ledger.Initial[domain.ResourceMoney] = 800
	b.Loan.InterestRate = 0.03
	b.Outcome.MoneyFloor = -1000
	b.Household.RandomEventChance = 0.4
	return b
}

// HardBalance returns a punishing table for experienced players
func HardBalance() Balance {
	b := DefaultBalance()
	b.Actors.Baby.AwakeRates[domain.NeedHunger] = 15
	b.Actors.Baby.AwakeRates[domain.NeedCleanliness] = -7
	b.Actors.Baby.SleepOnFeedChance = 0.5
	b.Actors.Caregiver.TirednessRate = 5
	b.Ledger.Initial[domain.ResourceMoney] = 300
	b.Loan.InterestRate = 0.08
	b.Loan.MaxLoanAmount = 1500
	b.Outcome.MoneyFloor = -250
	b.Household.RandomEventChance = 0.2
	return b
}

// BalanceForProfile resolves a profile name. Empty means normal.
func BalanceForProfile(profile string) (Balance, error) {
	switch profile {
	case "", ProfileNormal:
		return DefaultBalance(), nil
	case ProfileEasy:
		return CasualBalance(), nil
	case ProfileHard:
		return HardBalance(), nil
	default:
		return Balance{}, fmt.Errorf("%w: unknown balance profile %q", domain.ErrInvalidInput, profile)
	}
}

// LoadBalance overlays the YAML file at path onto base and validates the
// result. Keys absent from the file keep their base values.
func LoadBalance(path string, base Balance) (Balance, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, fmt.Errorf("failed to read balance file: %w", err)
	}
	if err := yaml.Unmarshal(b, &base); err != nil {
		return Balance{}, fmt.Errorf("failed to parse balance file: %w", err)
	}
	if err := base.Validate(); err != nil {
		return Balance{}, err
	}
	return base, nil
}

// Validate rejects tables that would break the simulation's invariants
func (b Balance) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	probability := func(name string, p float64) {
		check(p >= 0 && p <= 1, "%s must be within [0,1], got %v", name, p)
	}

	baby := b.Actors.Baby
	probability("baby.sleep_on_feed_chance", baby.SleepOnFeedChance)
	probability("baby.sensitive_formula_chance", baby.SensitiveFormulaChance)
	probability("baby.gas_issues_chance", baby.GasIssuesChance)
	probability("baby.mismatch_factor", baby.MismatchFactor)
	check(baby.FeedEffectiveness > 0, "baby.feed_effectiveness must be positive")
	check(baby.MaxColicLevel >= 0, "baby.max_colic_level must not be negative")
	for _, p := range domain.AllPersonalities() {
		traits, ok := baby.Personalities[p]
		check(ok, "baby.personalities is missing %s", p)
		check(traits.Hunger >= 0 && traits.Sleepiness >= 0, "baby.personalities.%s must not be negative", p)
	}

	cg := b.Actors.Caregiver
	probability("caregiver.exhaustion_fail_chance", cg.ExhaustionFailChance)
	probability("caregiver.overwhelm_drop_chance", cg.OverwhelmDropChance)
	check(cg.MaxQueue >= 1, "caregiver.max_queue must be at least 1")
	check(cg.MultitaskingPerSlot > 0, "caregiver.multitasking_per_slot must be positive")
	check(cg.TirednessPerLostSlot > 0, "caregiver.tiredness_per_lost_slot must be positive")
	check(cg.MinEfficiency > 0 && cg.MinEfficiency <= 1, "caregiver.min_efficiency must be within (0,1]")
	check(cg.SleepHistorySize >= 1, "caregiver.sleep_history_size must be at least 1")
	check(cg.Caregiving.Min <= cg.Caregiving.Max, "caregiver.caregiving range is inverted")
	check(cg.Efficiency.Min <= cg.Efficiency.Max, "caregiver.efficiency range is inverted")
	check(cg.Multitasking.Min <= cg.Multitasking.Max, "caregiver.multitasking range is inverted")

	st := b.Actors.Station
	check(st.WaterCapacity > 0, "station.water_capacity must be positive")
	check(st.MaxUses > 0, "station.max_uses must be positive")
	check(st.BatchSize > 0, "station.batch_size must be positive")

	for item, price := range b.Ledger.Prices {
		check(item.IsValid(), "ledger.prices has unknown item %s", item)
		check(price >= 0, "ledger.prices.%s must not be negative", item)
	}
	for r, v := range b.Ledger.Initial {
		check(r.IsValid(), "ledger.initial has unknown resource %s", r)
		check(r == domain.ResourceMoney || v >= 0, "ledger.initial.%s must not be negative", r)
	}
	check(b.Ledger.ElectricityCapacity > 0, "ledger.electricity_capacity must be positive")
	check(b.Ledger.WaterCapacity > 0, "ledger.water_capacity must be positive")

	check(b.Loan.InterestRate >= 0, "loan.interest_rate must not be negative")
	check(b.Loan.MaxLoanAmount >= 0, "loan.max_loan_amount must not be negative")
	check(b.Loan.DaysPerYear > 0, "loan.days_per_year must be positive")

	check(b.Outcome.WinAfterHours > 0, "outcome.win_after_hours must be positive")
	check(b.Outcome.HoursPerRequiredBaby > 0, "outcome.hours_per_required_baby must be positive")

	check(b.Progression.BaseXP > 0, "progression.base_xp must be positive")
	check(b.Progression.MaxLevel >= 1, "progression.max_level must be at least 1")

	h := b.Household
	probability("household.random_event_chance", h.RandomEventChance)
	check(h.Work.Hours >= 0, "household.work.hours must not be negative")
	for _, tt := range domain.AllTaskTypes() {
		check(h.TaskDurations[tt] > 0, "household.task_durations.%s must be positive", tt)
	}
	probability("household.upgrades.stress_reduction_multiplier", h.Upgrades.StressReductionMultiplier)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidBalance, errors.Join(errs...))
	}
	return nil
}
