// Package progression holds the leveling rules shared by mining and combat.
package progression

// Leveling constants.
//
// LevelThreshold (K) is the experience needed per level: a miner at level L
// levels up once experience reaches L*K.
const (
	LevelThreshold    = 10
	MaxHealthPerLevel = 10
	StartingLevel     = 1
	StartingMaxHealth = 50
)

// ExperienceToLevel returns the experience needed to leave the given level
func ExperienceToLevel(level int) int {
	return level * LevelThreshold
}

// CanLevelUp reports whether experience has reached the threshold for level
func CanLevelUp(level, experience int) bool {
	return experience >= ExperienceToLevel(level)
}

// Result is the stat change of a single level up
type Result struct {
	Level     int
	MaxHealth int
}

// Next returns the stats after one level up. It never rolls over
// more than one level, however much experience is banked.
func Next(level, maxHealth int) Result {
	return Result{
		Level:     level + 1,
		MaxHealth: maxHealth + MaxHealthPerLevel,
	}
}
