package domain

// Need names tracked by the needs model. Babies track hunger, cleanliness,
// comfort and sleepiness; caregivers track hunger, tiredness and stress.
const (
	NeedHunger      Need = "hunger"
	NeedTiredness   Need = "tiredness"
	NeedCleanliness Need = "cleanliness"
	NeedComfort     Need = "comfort"
	NeedSleepiness  Need = "sleepiness"
	NeedStress      Need = "stress"
)

// Need value bounds
const (
	NeedMin = 0.0
	NeedMax = 100.0
)

// Need is the name of a clamped [0,100] attribute
type Need string

// Resource names held by the household ledger
const (
	ResourceMoney            Resource = "money"
	ResourceDiapers          Resource = "diapers"
	ResourceFormula          Resource = "formula"
	ResourceSensitiveFormula Resource = "sensitiveFormula"
	ResourceBottles          Resource = "bottles"
	ResourceFood             Resource = "food"
	ResourceBreastMilk       Resource = "breastMilk"
	ResourceCleanBottles     Resource = "cleanBottles"
	ResourceDirtyBottles     Resource = "dirtyBottles"
	ResourceElectricity      Resource = "electricity"
	ResourceWater            Resource = "water"
)

// Resource is the name of a countable household consumable or currency
type Resource string

// AllResources returns every ledger resource in display order
func AllResources() []Resource {
	return []Resource{
		ResourceMoney,
		ResourceDiapers,
		ResourceFormula,
		ResourceSensitiveFormula,
		ResourceBottles,
		ResourceFood,
		ResourceBreastMilk,
		ResourceCleanBottles,
		ResourceDirtyBottles,
		ResourceElectricity,
		ResourceWater,
	}
}

// IsValid reports whether r is a known ledger resource
func (r Resource) IsValid() bool {
	for _, known := range AllResources() {
		if r == known {
			return true
		}
	}
	return false
}

// FormulaType is what a baby is fed with
type FormulaType string

// Feed types
const (
	FormulaRegular    FormulaType = "formula"
	FormulaSensitive  FormulaType = "sensitive_formula"
	FormulaBreastMilk FormulaType = "breast_milk"
)

// Resource returns the ledger resource consumed by this feed type
func (f FormulaType) Resource() Resource {
	switch f {
	case FormulaSensitive:
		return ResourceSensitiveFormula
	case FormulaBreastMilk:
		return ResourceBreastMilk
	default:
		return ResourceFormula
	}
}

// IsValid reports whether f is a known feed type
func (f FormulaType) IsValid() bool {
	return f == FormulaRegular || f == FormulaSensitive || f == FormulaBreastMilk
}
