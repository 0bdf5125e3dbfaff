package domain

// ActorKind tags the variant of an actor in the registry
type ActorKind string

// Actor kinds
const (
	ActorBaby           ActorKind = "baby"
	ActorCaregiver      ActorKind = "caregiver"
	ActorFeedingStation ActorKind = "feeding_station"
)

// Gender of a caregiver. Only female caregivers can breastfeed.
type Gender string

// Genders
const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// IsValid reports whether g is a known gender
func (g Gender) IsValid() bool {
	return g == GenderFemale || g == GenderMale
}

// Personality is fixed per baby at creation and scales its hunger and
// sleepiness accrual
type Personality string

// Personalities
const (
	PersonalityEasy      Personality = "easy"
	PersonalityNormal    Personality = "normal"
	PersonalityDifficult Personality = "difficult"
)

// AllPersonalities returns personalities in the order they are rolled
func AllPersonalities() []Personality {
	return []Personality{PersonalityEasy, PersonalityNormal, PersonalityDifficult}
}

// SpecialNeeds are rolled once when a baby is created
type SpecialNeeds struct {
	SensitiveFormula bool `json:"sensitive_formula"`
	GasIssues        bool `json:"gas_issues"`
	ColicLevel       int  `json:"colic_level"`
}

// Position is a grid coordinate owned by the placement UI. The simulation
// stores it and never interprets it.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Skills are caregiver multipliers in percent
type Skills struct {
	Caregiving   float64 `json:"caregiving"`
	Efficiency   float64 `json:"efficiency"`
	Multitasking float64 `json:"multitasking"`
}
