package generation

import (
	"fmt"
	"math"
)

// Linear congruential constants. Changing them changes every dungeon a seed produces.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededRandom is a deterministic integer generator driven by a mutable seed.
// Every procedural decision of a generation pass draws from one instance, so
// the same seed always rebuilds the same dungeon.
type SeededRandom struct {
	state int64
}

// NewSeededRandom creates a generator for the given seed. The seed is reduced
// into [0, 233280) first, which yields the same sequence as the unreduced
// recurrence and keeps the multiplication inside int64.
func NewSeededRandom(seed int64) *SeededRandom {
	state := seed % lcgModulus
	if state < 0 {
		state += lcgModulus
	}
	return &SeededRandom{state: state}
}

// State returns the current internal seed
func (r *SeededRandom) State() int64 {
	return r.state
}

// Float64 advances the generator and returns a value in [0, 1)
func (r *SeededRandom) Float64() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}

// NextInt returns a value in [min, max], inclusive on both ends.
// Calling it with min > max is a programming error and panics.
func (r *SeededRandom) NextInt(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("generation: NextInt called with min %d > max %d", min, max))
	}
	return int(math.Floor(float64(min) + r.Float64()*float64(max-min+1)))
}

// Chance reports true with probability p
func (r *SeededRandom) Chance(p float64) bool {
	return r.Float64() < p
}
