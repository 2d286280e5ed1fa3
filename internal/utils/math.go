package utils

import (
	"math"
	"math/rand"
)

// Roller is the randomness source used by game logic.
// *rand.Rand satisfies it; tests can script exact rolls.
type Roller interface {
	Intn(n int) int
	Float64() float64
}

// NewRoller returns a seeded Roller
func NewRoller(seed int64) Roller {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewSource(seed))
}

// RandomInt returns a random integer between min and max (inclusive) drawn from r
func RandomInt(r Roller, min, max int) int {
	if min >= max {
		return min
	}
	return r.Intn(max-min+1) + min
}

// LowerBound returns round(4*max/5), the floor of a lower-bound roll.
func LowerBound(max int) int {
	return int(math.Round(4 * float64(max) / 5))
}

// RollLowerBound draws uniformly from [LowerBound(max), max].
// Non-positive maxima always roll 0.
func RollLowerBound(r Roller, max int) int {
	if max <= 0 {
		return 0
	}
	return RandomInt(r, LowerBound(max), max)
}

// Chance returns true with probability p
func Chance(r Roller, p float64) bool {
	return r.Float64() < p
}
