package drawingboard

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Lerp maps val from the range [x1, x2] onto [y1, y2]. The endpoints map
// exactly, without division, so a degenerate range (x1 == x2) never
// produces NaN at its endpoint.
func Lerp(val, x1, x2, y1, y2 float64) float64 {
	if val == x1 {
		return y1
	}
	if val == x2 {
		return y2
	}
	return (y2-y1)/(x2-x1)*(val-x1) + y1
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(deg float64) float64 { return deg * degToRad }

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(rad float64) float64 { return rad * radToDeg }

// Random is a seeded random source owned by a Board.
type Random struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandom creates a source seeded with seed.
func NewRandom(seed uint64) *Random {
	r := &Random{}
	r.Seed(seed)
	return r
}

// Seed resets the source.
func (r *Random) Seed(seed uint64) {
	r.seed = seed
	r.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// CurrentSeed returns the seed last passed to Seed.
func (r *Random) CurrentSeed() uint64 { return r.seed }

// Float returns a value in [0, 1).
func (r *Random) Float() float64 { return r.rng.Float64() }

// Max returns a value in [0, max).
func (r *Random) Max(max float64) float64 { return r.rng.Float64() * max }

// Range returns a value in [min, max). min must be less than max.
func (r *Random) Range(min, max float64) (float64, error) {
	if min >= max {
		return 0, fmt.Errorf("%w: min = %v, max = %v", ErrInvalidRange, min, max)
	}
	return r.rng.Float64()*(max-min) + min, nil
}

// IntRange returns an integer in [min, max). min must be less than max.
func (r *Random) IntRange(min, max int) (int, error) {
	if min >= max {
		return 0, fmt.Errorf("%w: min = %d, max = %d", ErrInvalidRange, min, max)
	}
	return min + r.rng.IntN(max-min), nil
}
