// Package clock tracks simulated game time and wall time.
//
// GameClock is the simulation's notion of elapsed time in game hours. It
// reports the day boundaries crossed by each advance so the caller can run
// daily settlement once per day.
package clock

import (
	"fmt"
	"math"
	"time"
)

// HoursPerDay is the length of a game day
const HoursPerDay = 24.0

// Day is one game day as a duration
const Day = 24 * time.Hour

// GameClock holds monotonically increasing elapsed game time. Time is kept
// as an integer duration so repeated small steps land exactly on midnight.
type GameClock struct {
	elapsed time.Duration
}

// NewGameClock starts a clock at hour zero, day 1
func NewGameClock() *GameClock {
	return &GameClock{}
}

// Advance moves the clock forward by a number of game hours. Fractions are
// rounded to the nearest nanosecond. Non-finite or non-positive values are
// ignored.
func (c *GameClock) Advance(hours float64) []int {
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil
	}
	return c.AdvanceDuration(time.Duration(math.Round(hours * float64(time.Hour))))
}

// AdvanceDuration moves the clock forward and returns, for every midnight
// crossed, the number of the day that just ended
func (c *GameClock) AdvanceDuration(dt time.Duration) []int {
	if dt <= 0 {
		return nil
	}
	before := dayIndex(c.elapsed)
	c.elapsed += dt
	after := dayIndex(c.elapsed)

	if after == before {
		return nil
	}
	crossed := make([]int, 0, after-before)
	for d := before + 1; d <= after; d++ {
		crossed = append(crossed, d)
	}
	return crossed
}

// Elapsed returns elapsed game time
func (c *GameClock) Elapsed() time.Duration {
	return c.elapsed
}

// Hours returns elapsed game hours
func (c *GameClock) Hours() float64 {
	return c.elapsed.Hours()
}

// Day returns the 1-based day of the game
func (c *GameClock) Day() int {
	return dayIndex(c.elapsed) + 1
}

// HourOfDay returns the fractional hour within the current day
func (c *GameClock) HourOfDay() float64 {
	return (c.elapsed % Day).Hours()
}

// TimeOfDay formats the hour of day as HH:MM
func (c *GameClock) TimeOfDay() string {
	minutes := int((c.elapsed % Day) / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func dayIndex(elapsed time.Duration) int {
	return int(elapsed / Day)
}
