// Package actor holds the simulation's characters and fixtures: babies,
// caregivers and feeding stations. Each variant is an explicit typed record
// behind the Actor capability interface, and the Registry keeps them in
// insertion order.
package actor

import (
	"time"

	"github.com/osse101/WhineTime/internal/domain"
)

// Actor is the capability set shared by every variant
type Actor interface {
	ID() string
	Name() string
	Kind() domain.ActorKind
	Position() domain.Position
	SetPosition(p domain.Position)
	// Advance moves the actor forward by dt of game time
	Advance(dt time.Duration, env Env)
	// OnInteract lists the tasks a caregiver can be assigned against this actor
	OnInteract() []domain.TaskType
	StatusSummary() Summary
}

// Env is the household context an actor sees while advancing
type Env struct {
	CryingBabies int
	// StressMultiplier scales caregiver stress gains. Zero means 1.
	StressMultiplier float64
}

func (e Env) stressMultiplier() float64 {
	if e.StressMultiplier <= 0 {
		return 1
	}
	return e.StressMultiplier
}

// Summary is a display copy of one actor. Exactly one of the detail
// pointers is set, matching Kind.
type Summary struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Kind      domain.ActorKind        `json:"kind"`
	Position  domain.Position         `json:"position"`
	Status    string                  `json:"status"`
	Needs     map[domain.Need]float64 `json:"needs,omitempty"`
	Baby      *BabyDetail             `json:"baby,omitempty"`
	Caregiver *CaregiverDetail        `json:"caregiver,omitempty"`
	Station   *StationDetail          `json:"station,omitempty"`
}

// BabyDetail is the baby-specific part of a Summary
type BabyDetail struct {
	Personality  domain.Personality  `json:"personality"`
	SpecialNeeds domain.SpecialNeeds `json:"special_needs"`
	Sleeping     bool                `json:"sleeping"`
	Crying       bool                `json:"crying"`
	AgeHours     float64             `json:"age_hours"`
	LastFed      float64             `json:"last_fed"`
	LastChanged  float64             `json:"last_changed"`
}

// CaregiverDetail is the caregiver-specific part of a Summary
type CaregiverDetail struct {
	Gender        domain.Gender `json:"gender"`
	Skills        domain.Skills `json:"skills"`
	BrainDamage   float64       `json:"brain_damage"`
	Breastfeeding bool          `json:"breastfeeding"`
	Efficiency    float64       `json:"efficiency"`
	Capacity      int           `json:"capacity"`
	CurrentTask   *domain.Task  `json:"current_task,omitempty"`
	Queue         []domain.Task `json:"queue"`
}

// StationDetail is the feeding-station part of a Summary
type StationDetail struct {
	FormulaType   domain.FormulaType `json:"formula_type"`
	FormulaAmount float64            `json:"formula_amount"`
	WaterLevel    float64            `json:"water_level"`
	UsesLeft      int                `json:"uses_left"`
	MaxUses       int                `json:"max_uses"`
	NeedsCleaning bool               `json:"needs_cleaning"`
}

type base struct {
	id       string
	name     string
	position domain.Position
}

func (b *base) ID() string                    { return b.id }
func (b *base) Name() string                  { return b.name }
func (b *base) Position() domain.Position     { return b.position }
func (b *base) SetPosition(p domain.Position) { b.position = p }
