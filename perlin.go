package noise

import (
	"strconv"

	perlin "github.com/aquilax/go-perlin"

	"github.com/procgrid/noise/internal/hashing"
)

// Perlin adapter defaults, matching the upstream library's usual tuning.
const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinLevels = 3
)

// Perlin adapts github.com/aquilax/go-perlin to the Generator contract,
// covering 1 to 3 dimensions. Output is clamped to [-1, 1].
//
// Reseeding rebuilds the underlying permutation tables, so SetSeed works
// but is not cheap; NoiseWithSeed therefore uses the coordinate
// perturbation fallback (Seeded returns false) instead of reseeding per
// call.
type Perlin struct {
	seed int64
	gen  *perlin.Perlin
}

// NewPerlin creates a Perlin adapter with the given seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		seed: seed,
		gen:  perlin.NewPerlin(perlinAlpha, perlinBeta, perlinLevels, seed),
	}
}

// MinDimension returns 1.
func (p *Perlin) MinDimension() int { return 1 }

// MaxDimension returns 3.
func (p *Perlin) MaxDimension() int { return 3 }

// Seeded returns false: reseeding rebuilds tables, so per-call seeds fall
// back to coordinate perturbation.
func (p *Perlin) Seeded() bool { return false }

// Seed returns the stored seed.
func (p *Perlin) Seed() int64 { return p.seed }

// SetSeed replaces the seed and rebuilds the underlying tables.
func (p *Perlin) SetSeed(seed int64) {
	p.seed = seed
	p.gen = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinLevels, seed)
}

// Noise evaluates Perlin noise at the given point with the stored seed.
func (p *Perlin) Noise(coords ...float64) (float64, error) {
	switch len(coords) {
	case 1:
		return clamp1(p.gen.Noise1D(coords[0])), nil
	case 2:
		return clamp1(p.gen.Noise2D(coords[0], coords[1])), nil
	case 3:
		return clamp1(p.gen.Noise3D(coords[0], coords[1], coords[2])), nil
	}
	return 0, dimensionError(len(coords), 1, 3)
}

// NoiseWithSeed evaluates with an explicit seed by offsetting each
// coordinate by a hash of the seed. The stored seed and tables are left
// untouched; this is the documented fallback for engines without cheap
// reseeding.
func (p *Perlin) NoiseWithSeed(seed int64, coords ...float64) (float64, error) {
	if len(coords) < 1 || len(coords) > 3 {
		return 0, dimensionError(len(coords), 1, 3)
	}
	if seed == p.seed {
		return p.Noise(coords...)
	}
	var shifted [3]float64
	perturb(seed, coords, shifted[:len(coords)])
	return p.Noise(shifted[:len(coords)]...)
}

// Serialize encodes the adapter as "Perlin`<seed>`".
func (p *Perlin) Serialize() string {
	return encode(tagPerlin, strconv.FormatInt(p.seed, 10))
}

// perturb writes coords shifted by a seed-derived offset into dst. Each
// axis gets a distinct offset so the shift is not a pure diagonal slide.
func perturb(seed int64, coords, dst []float64) {
	for i := range coords {
		h := hashing.Mix64(uint64(seed) + uint64(i)*0x9E3779B97F4A7C15)
		// Offset in [-1024, 1024): far enough to decorrelate, small
		// enough to keep float precision.
		dst[i] = coords[i] + float64(int32(h))*0x1p-21
	}
}
