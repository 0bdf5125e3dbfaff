package progression

import "math"

// xpForStep is the XP needed to go from level n to level n+1
func (t *Tracker) xpForStep(n int) int64 {
	return int64(t.cfg.BaseXP * math.Pow(float64(n), t.cfg.LevelExponent))
}

// XPForLevel returns the cumulative XP at which level is reached. Level 1
// needs nothing.
func (t *Tracker) XPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	cumulative := int64(0)
	for n := 1; n < level; n++ {
		cumulative += t.xpForStep(n)
	}
	return cumulative
}

// CalculateLevel determines the level from total XP
func (t *Tracker) CalculateLevel(totalXP int64) int {
	level, _ := t.levelAndNext(totalXP)
	return level
}

// XPToNextLevel returns how much more XP the next level needs
func (t *Tracker) XPToNextLevel() int64 {
	_, next := t.levelAndNext(t.xp)
	return next - t.xp
}

// levelAndNext computes the level and the cumulative XP required for the
// next one in a single pass
func (t *Tracker) levelAndNext(totalXP int64) (int, int64) {
	level := 1
	cumulative := int64(0)
	for level < t.cfg.MaxLevel {
		step := t.xpForStep(level)
		if step <= 0 || cumulative+step > totalXP {
			return level, cumulative + step
		}
		cumulative += step
		level++
	}
	return level, cumulative + t.xpForStep(level)
}
