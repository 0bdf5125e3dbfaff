package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// SeededRandom returns a float source in [0,1) backed by its own generator.
// Two sources built from the same seed produce the same sequence.
func SeededRandom(seed int64) func() float64 {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	return r.Float64
}

// RollIntRange maps a roll in [0,1) onto [min, max] inclusive
func RollIntRange(roll float64, min, max int) int {
	if min >= max {
		return min
	}
	n := min + int(math.Floor(roll*float64(max-min+1)))
	if n > max {
		return max
	}
	return n
}

// RollFloatRange maps a roll in [0,1) onto [min, max)
func RollFloatRange(roll float64, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + roll*(max-min)
}

// Clamp bounds value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
