package game

// LevelInfo is the derivation of a lifetime XP total.
type LevelInfo struct {
	Level       int `json:"level"`
	XPIntoLevel int `json:"xpIntoLevel"`
	XPForNext   int `json:"xpRequiredForNext"`
}

// LevelOf maps cumulative experience to level state. Level n requires
// exactly n*100 XP to clear (level 1 needs 100, level 2 needs 200, ...).
// Pure and re-derived on every XP change — never incrementally patched.
// There is no upper level bound.
func LevelOf(totalXP int) LevelInfo {
	level := 1
	remaining := totalXP
	for remaining >= level*100 {
		remaining -= level * 100
		level++
	}
	return LevelInfo{
		Level:       level,
		XPIntoLevel: remaining,
		XPForNext:   level * 100,
	}
}
