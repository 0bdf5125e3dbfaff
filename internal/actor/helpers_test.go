package actor

import "github.com/osse101/WhineTime/internal/domain"

// fixedRoll returns a random source that always yields v
func fixedRoll(v float64) func() float64 {
	return func() float64 { return v }
}

// switchableRoll returns a source whose value can be changed mid-test
func switchableRoll(v *float64) func() float64 {
	return func() float64 { return *v }
}

func newNormalBaby() *Baby {
	// 0.5 rolls the middle personality
	b := NewBaby("baby-1", "Ada", DefaultBabyConfig(), fixedRoll(0.5))
	b.SetSpecialNeeds(domain.SpecialNeeds{})
	return b
}
