package actor

// Status labels reported in summaries
const (
	StatusSleeping      = "sleeping"
	StatusCrying        = "crying"
	StatusHappy         = "happy"
	StatusAwake         = "awake"
	StatusBreastfeeding = "breastfeeding"
	StatusStruggling    = "struggling"
	StatusStressed      = "stressed"
	StatusBusy          = "busy"
	StatusIdle          = "idle"
	StatusNeedsCleaning = "needs_cleaning"
	StatusLowWater      = "low_water"
	StatusNoFormula     = "no_formula"
	StatusReady         = "ready"
)
