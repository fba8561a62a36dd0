package noise

import (
	"strconv"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// OpenSimplex adapts github.com/ojrac/opensimplex-go to the Generator
// contract, covering 2 to 4 dimensions. Output is clamped to [-1, 1].
//
// Like Perlin, reseeding rebuilds the underlying permutation tables, so
// Seeded returns false and NoiseWithSeed uses the coordinate perturbation
// fallback.
type OpenSimplex struct {
	seed int64
	gen  opensimplex.Noise
}

// NewOpenSimplex creates an OpenSimplex adapter with the given seed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{seed: seed, gen: opensimplex.New(seed)}
}

// MinDimension returns 2.
func (o *OpenSimplex) MinDimension() int { return 2 }

// MaxDimension returns 4.
func (o *OpenSimplex) MaxDimension() int { return 4 }

// Seeded returns false: per-call seeds fall back to coordinate
// perturbation.
func (o *OpenSimplex) Seeded() bool { return false }

// Seed returns the stored seed.
func (o *OpenSimplex) Seed() int64 { return o.seed }

// SetSeed replaces the seed and rebuilds the underlying tables.
func (o *OpenSimplex) SetSeed(seed int64) {
	o.seed = seed
	o.gen = opensimplex.New(seed)
}

// Noise evaluates OpenSimplex noise at the given point with the stored
// seed.
func (o *OpenSimplex) Noise(coords ...float64) (float64, error) {
	switch len(coords) {
	case 2:
		return clamp1(o.gen.Eval2(coords[0], coords[1])), nil
	case 3:
		return clamp1(o.gen.Eval3(coords[0], coords[1], coords[2])), nil
	case 4:
		return clamp1(o.gen.Eval4(coords[0], coords[1], coords[2], coords[3])), nil
	}
	return 0, dimensionError(len(coords), 2, 4)
}

// NoiseWithSeed evaluates with an explicit seed via the coordinate
// perturbation fallback; the stored seed and tables are left untouched.
func (o *OpenSimplex) NoiseWithSeed(seed int64, coords ...float64) (float64, error) {
	if len(coords) < 2 || len(coords) > 4 {
		return 0, dimensionError(len(coords), 2, 4)
	}
	if seed == o.seed {
		return o.Noise(coords...)
	}
	var shifted [4]float64
	perturb(seed, coords, shifted[:len(coords)])
	return o.Noise(shifted[:len(coords)]...)
}

// Serialize encodes the adapter as "OpenSimplex`<seed>`".
func (o *OpenSimplex) Serialize() string {
	return encode(tagOpenSimplex, strconv.FormatInt(o.seed, 10))
}
