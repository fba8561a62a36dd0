package noise

import (
	"errors"
	"fmt"
)

// Generator is the contract shared by every noise engine in this package.
//
// A generator evaluates noise at a point whose arity must lie inside
// [MinDimension, MaxDimension]; anything else fails with
// [ErrUnsupportedDimension]. Output is always a finite float in [-1, 1]
// for finite inputs.
//
// Seeded reports whether the engine can evaluate with an arbitrary seed at
// per-call cost. When Seeded returns false, NoiseWithSeed falls back to
// perturbing the input coordinates by a function of the seed instead of
// actually reseeding; the stored seed is never mutated by either call.
type Generator interface {
	// MinDimension returns the smallest supported coordinate count.
	MinDimension() int
	// MaxDimension returns the largest supported coordinate count.
	MaxDimension() int
	// Seeded reports whether per-call reseeding is cheap (see above).
	Seeded() bool
	// Seed returns the stored seed.
	Seed() int64
	// SetSeed replaces the stored seed. Already-returned values are
	// unaffected.
	SetSeed(seed int64)
	// Noise evaluates at the given point using the stored seed.
	Noise(coords ...float64) (float64, error)
	// NoiseWithSeed evaluates at the given point with an explicit seed,
	// without mutating the stored seed.
	NoiseWithSeed(seed int64, coords ...float64) (float64, error)
	// Serialize encodes seed, dimension, and tunable parameters as a
	// compact string understood by Deserialize.
	Serialize() string
}

var (
	// ErrUnsupportedDimension is returned when a noise call's coordinate
	// count falls outside the generator's supported dimension range.
	ErrUnsupportedDimension = errors.New("noise: unsupported dimension")

	// ErrMalformedState is returned by Deserialize when the input cannot
	// be parsed into a complete generator.
	ErrMalformedState = errors.New("noise: malformed serialized state")
)

// dimensionError builds the standard guard failure for a call with n
// coordinates against a supported range.
func dimensionError(n, min, max int) error {
	return fmt.Errorf("%w: got %d coordinates, supported %d..%d", ErrUnsupportedDimension, n, min, max)
}

// smootherstep is the cubic Hermite blend t*t*(3-2t), mapping [0,1] to
// [0,1] with zero slope at both ends.
func smootherstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// clamp1 clamps v to [-1, 1]. Adapter engines use it to hold third-party
// output to the documented range.
func clamp1(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
