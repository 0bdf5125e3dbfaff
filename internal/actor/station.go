package actor

import (
	"math"
	"time"

	"github.com/osse101/WhineTime/internal/domain"
)

// FeedingStation mixes formula from household water. It has no needs and
// wears out after MaxUses batches until cleaned.
type FeedingStation struct {
	base
	cfg           StationConfig
	formulaType   domain.FormulaType
	formulaAmount float64
	waterLevel    float64
	usesLeft      int
	needsCleaning bool
}

// NewFeedingStation creates a full, clean station
func NewFeedingStation(id, name string, ft domain.FormulaType, cfg StationConfig) *FeedingStation {
	if ft != domain.FormulaSensitive {
		ft = domain.FormulaRegular
	}
	return &FeedingStation{
		base:        base{id: id, name: name},
		cfg:         cfg,
		formulaType: ft,
		waterLevel:  cfg.WaterCapacity,
		usesLeft:    cfg.MaxUses,
	}
}

// Kind implements Actor
func (s *FeedingStation) Kind() domain.ActorKind { return domain.ActorFeedingStation }

// Advance implements Actor. Stations do not change with time.
func (s *FeedingStation) Advance(time.Duration, Env) {}

// OnInteract implements Actor
func (s *FeedingStation) OnInteract() []domain.TaskType {
	return []domain.TaskType{domain.TaskMakeFormula, domain.TaskRefillWater}
}

// CanMakeFormula reports whether a batch can be mixed
func (s *FeedingStation) CanMakeFormula() bool {
	return !s.needsCleaning && s.waterLevel >= s.cfg.WaterPerBatch && s.usesLeft > 0
}

// MakeFormula mixes one batch of batchSize bottles. Rejected when dirty,
// short of water or out of uses.
func (s *FeedingStation) MakeFormula(batchSize float64) bool {
	if !s.CanMakeFormula() {
		return false
	}
	if batchSize <= 0 {
		batchSize = s.cfg.BatchSize
	}
	s.formulaAmount += batchSize
	s.waterLevel -= s.cfg.WaterPerBatch
	s.usesLeft--
	if s.usesLeft <= 0 {
		s.needsCleaning = true
	}
	return true
}

// Clean restores every use. Rejected when the station is already fresh.
func (s *FeedingStation) Clean() bool {
	if !s.needsCleaning && s.usesLeft == s.cfg.MaxUses {
		return false
	}
	s.needsCleaning = false
	s.usesLeft = s.cfg.MaxUses
	return true
}

// RefillWater tops up from at most available household water and returns
// how much was drawn. Rejected when full or nothing is available.
func (s *FeedingStation) RefillWater(available float64) (float64, bool) {
	missing := s.cfg.WaterCapacity - s.waterLevel
	if missing <= 0 || available <= 0 {
		return 0, false
	}
	drawn := math.Min(missing, available)
	s.waterLevel += drawn
	return drawn, true
}

// TakeFormula empties the station's mixed formula and returns the amount
func (s *FeedingStation) TakeFormula() float64 {
	amount := s.formulaAmount
	s.formulaAmount = 0
	return amount
}

// FormulaType is the kind of formula this station mixes
func (s *FeedingStation) FormulaType() domain.FormulaType { return s.formulaType }

// FormulaAmount is the mixed formula waiting to be collected
func (s *FeedingStation) FormulaAmount() float64 { return s.formulaAmount }

// WaterLevel is the station's water
func (s *FeedingStation) WaterLevel() float64 { return s.waterLevel }

// NeedsCleaning reports whether the station must be cleaned before use
func (s *FeedingStation) NeedsCleaning() bool { return s.needsCleaning }

// StatusSummary implements Actor
func (s *FeedingStation) StatusSummary() Summary {
	status := StatusReady
	switch {
	case s.needsCleaning:
		status = StatusNeedsCleaning
	case s.waterLevel < s.cfg.LowWater:
		status = StatusLowWater
	case s.formulaAmount == 0:
		status = StatusNoFormula
	}
	return Summary{
		ID:       s.id,
		Name:     s.name,
		Kind:     domain.ActorFeedingStation,
		Position: s.position,
		Status:   status,
		Station: &StationDetail{
			FormulaType:   s.formulaType,
			FormulaAmount: s.formulaAmount,
			WaterLevel:    s.waterLevel,
			UsesLeft:      s.usesLeft,
			MaxUses:       s.cfg.MaxUses,
			NeedsCleaning: s.needsCleaning,
		},
	}
}
