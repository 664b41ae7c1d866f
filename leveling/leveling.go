// Package leveling holds the XP-to-level curve shared by every surface that
// computes or displays a level. The two functions form a boundary-exact
// inverse pair: LevelForXP(XPThresholdForLevel(l)) == l for all l >= 1.
package leveling

import "math"

// LevelForXP maps accumulated experience points to a level. The curve is
// floor(sqrt(xp/100)), clamped so the result is never below 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := int(math.Sqrt(float64(xp) / 100))
	if level < 1 {
		return 1
	}
	return level
}

// XPThresholdForLevel returns the minimum XP at which the given level is
// reached. UI progress bars bracket the current XP between the thresholds
// of the current and next level.
func XPThresholdForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * level * 100
}
