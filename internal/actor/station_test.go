package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WhineTime/internal/domain"
)

func TestFeedingStation_MakeFormulaUntilDirty(t *testing.T) {
	// ARRANGE
	s := NewFeedingStation("fs-1", "Kitchen", domain.FormulaRegular, DefaultStationConfig())

	// ACT
	for i := 0; i < 4; i++ {
		require.True(t, s.MakeFormula(0), "batch %d", i+1)
	}

	// ASSERT
	assert.True(t, s.NeedsCleaning())
	assert.False(t, s.MakeFormula(0))
	assert.Equal(t, 12.0, s.FormulaAmount())
	assert.Equal(t, 20.0, s.WaterLevel())
	assert.Equal(t, StatusNeedsCleaning, s.StatusSummary().Status)
}

func TestFeedingStation_Clean(t *testing.T) {
	s := NewFeedingStation("fs-1", "Kitchen", domain.FormulaRegular, DefaultStationConfig())
	assert.False(t, s.Clean(), "fresh station does not need cleaning")

	require.True(t, s.MakeFormula(5))
	assert.Equal(t, 5.0, s.FormulaAmount(), "explicit batch size overrides the default")
	assert.True(t, s.Clean())
	assert.Equal(t, 4, s.StatusSummary().Station.UsesLeft)
}

func TestFeedingStation_RefillWater(t *testing.T) {
	s := NewFeedingStation("fs-1", "Kitchen", domain.FormulaRegular, DefaultStationConfig())

	_, ok := s.RefillWater(500)
	assert.False(t, ok, "already full")

	require.True(t, s.MakeFormula(0))
	require.True(t, s.MakeFormula(0))

	drawn, ok := s.RefillWater(25)
	assert.True(t, ok)
	assert.Equal(t, 25.0, drawn, "limited by household water")
	assert.Equal(t, 85.0, s.WaterLevel())

	drawn, ok = s.RefillWater(500)
	assert.True(t, ok)
	assert.Equal(t, 15.0, drawn)

	_, ok = s.RefillWater(0)
	assert.False(t, ok)
}

func TestFeedingStation_LowWaterBlocksBatches(t *testing.T) {
	cfg := DefaultStationConfig()
	cfg.MaxUses = 10
	s := NewFeedingStation("fs-1", "Kitchen", domain.FormulaRegular, cfg)

	for i := 0; i < 5; i++ {
		require.True(t, s.MakeFormula(0))
	}

	assert.False(t, s.CanMakeFormula())
	assert.Equal(t, StatusLowWater, s.StatusSummary().Status)
}

func TestFeedingStation_TakeFormula(t *testing.T) {
	s := NewFeedingStation("fs-1", "Kitchen", domain.FormulaSensitive, DefaultStationConfig())
	assert.Equal(t, StatusNoFormula, s.StatusSummary().Status)
	require.True(t, s.MakeFormula(0))

	assert.Equal(t, 3.0, s.TakeFormula())
	assert.Equal(t, 0.0, s.TakeFormula())
	assert.Equal(t, domain.FormulaSensitive, s.FormulaType())
}

func TestFeedingStation_BreastMilkDefaultsToRegular(t *testing.T) {
	s := NewFeedingStation("fs-1", "Kitchen", domain.FormulaBreastMilk, DefaultStationConfig())
	assert.Equal(t, domain.FormulaRegular, s.FormulaType())
	assert.Empty(t, s.StatusSummary().Needs)
}
