package noise

import (
	"math"
	"strconv"

	"github.com/procgrid/noise/internal/hashing"
)

// Value is interpolated lattice-hash noise: the 2^N corners of the unit
// cell around the input are hashed and blended with a smootherstep weight
// per axis. No gradient vectors are involved, so the result is cheaper and
// blockier than simplex noise.
//
// The dimension is fixed at construction. A Value instance reuses internal
// scratch arrays between calls and must not be shared between goroutines;
// use Clone for per-goroutine copies.
type Value struct {
	dim  int
	seed int64

	floors  [6]int64
	fracs   [6]float64
	lattice [6]int64
}

// NewValue creates a value-noise generator for a dimension in 2..6.
func NewValue(dim int, seed int64) (*Value, error) {
	if dim < 2 || dim > 6 {
		return nil, dimensionError(dim, 2, 6)
	}
	return &Value{dim: dim, seed: seed}, nil
}

// MinDimension returns the construction dimension.
func (v *Value) MinDimension() int { return v.dim }

// MaxDimension returns the construction dimension.
func (v *Value) MaxDimension() int { return v.dim }

// Seeded returns true: per-call reseeding is free.
func (v *Value) Seeded() bool { return true }

// Seed returns the stored seed.
func (v *Value) Seed() int64 { return v.seed }

// SetSeed replaces the stored seed.
func (v *Value) SetSeed(seed int64) { v.seed = seed }

// Clone returns an independent copy with its own scratch buffers.
func (v *Value) Clone() *Value {
	return &Value{dim: v.dim, seed: v.seed}
}

// Noise evaluates value noise at the given point with the stored seed.
// The result is in [-1, 1]. Input exactly on a lattice point returns the
// bare hash value of that corner.
func (v *Value) Noise(coords ...float64) (float64, error) {
	if len(coords) != v.dim {
		return 0, dimensionError(len(coords), v.dim, v.dim)
	}
	return v.at(v.seed, coords), nil
}

// NoiseWithSeed evaluates with an explicit seed, leaving the stored seed
// untouched.
func (v *Value) NoiseWithSeed(seed int64, coords ...float64) (float64, error) {
	if len(coords) != v.dim {
		return 0, dimensionError(len(coords), v.dim, v.dim)
	}
	return v.at(seed, coords), nil
}

func (v *Value) at(seed int64, coords []float64) float64 {
	for a, c := range coords {
		f := math.Floor(c)
		v.floors[a] = int64(f)
		v.fracs[a] = smootherstep(c - f)
	}
	var sum float64
	for corner := 0; corner < 1<<v.dim; corner++ {
		w := 1.0
		for a := 0; a < v.dim; a++ {
			if corner>>a&1 == 1 {
				w *= v.fracs[a]
				v.lattice[a] = v.floors[a] + 1
			} else {
				w *= 1 - v.fracs[a]
				v.lattice[a] = v.floors[a]
			}
		}
		if w == 0 {
			continue
		}
		h := hashing.HashN(seed, v.lattice[:v.dim])
		// Top 32 bits as a signed corner value in [-2^31, 2^31).
		sum += w * float64(int32(h>>32))
	}
	// Weights sum to 1, so dividing by 2^31 lands in [-1, 1).
	return sum * 0x1p-31
}

// Serialize encodes the generator as "Value`<dim>~<seed>`".
func (v *Value) Serialize() string {
	return encode(tagValue, strconv.Itoa(v.dim), strconv.FormatInt(v.seed, 10))
}
