package noise

import (
	"math"
	"strconv"

	"github.com/procgrid/noise/internal/hashing"
)

// inversePhi is 1/φ, the irrational decrement that decorrelates the
// layered value-noise rounds inside Phantom.
const inversePhi = 0.6180339887498949

// Phantom is layered, domain-warped value noise. The input is projected
// onto the N+1 vertex directions of a regular N-simplex; each of the N+1
// rounds evaluates value noise over the projections with one left out,
// folding the previous round's result into the first working coordinate.
// The averaged result is reshaped with a Barron bias/gain spline so the
// output stays spread across [-1, 1] as the dimension grows instead of
// regressing to the mean.
//
// Dimension and sharpness are fixed at construction; the seed is mutable.
// All projection and working buffers are allocated once at construction
// and reused, so calls never allocate — and a single instance must not be
// shared between goroutines. Use Clone for per-goroutine copies.
type Phantom struct {
	dim       int
	seed      int64
	sharpness float64
	inverse   float64

	vertices [][]float64
	points   []float64
	working  []float64
	floors   []int64
	fracs    []float64
	lattice  []int64
}

// DefaultSharpness returns the default Barron-spline sharpness for a
// dimension, 0.825 per axis.
func DefaultSharpness(dim int) float64 {
	return 0.825 * float64(dim)
}

// NewPhantom creates a phantom-noise generator for a dimension in 2..6
// with the default sharpness for that dimension.
func NewPhantom(dim int, seed int64) (*Phantom, error) {
	if dim < 2 || dim > 6 {
		return nil, dimensionError(dim, 2, 6)
	}
	return NewPhantomSharpness(dim, seed, DefaultSharpness(dim))
}

// NewPhantomSharpness creates a phantom-noise generator with an explicit
// sharpness. Sharpness must be positive; larger values push results toward
// the extremes.
func NewPhantomSharpness(dim int, seed int64, sharpness float64) (*Phantom, error) {
	if dim < 2 || dim > 6 {
		return nil, dimensionError(dim, 2, 6)
	}
	if !(sharpness > 0) {
		sharpness = DefaultSharpness(dim)
	}
	p := &Phantom{
		dim:       dim,
		seed:      seed,
		sharpness: sharpness,
		inverse:   1 / float64(dim+1),
		vertices:  simplexVertices(dim),
		points:    make([]float64, dim+1),
		working:   make([]float64, dim),
		floors:    make([]int64, dim),
		fracs:     make([]float64, dim),
		lattice:   make([]int64, dim),
	}
	return p, nil
}

// simplexVertices returns the dim+1 unit vertices of a regular dim-simplex
// centered on the origin. Built column by column: the diagonal entry comes
// from the unit-length constraint, and every later vertex shares the same
// component in that column so all pairwise dot products equal -1/dim. The
// construction is fully deterministic.
func simplexVertices(dim int) [][]float64 {
	n := float64(dim)
	v := make([][]float64, dim+1)
	for i := range v {
		v[i] = make([]float64, dim)
	}
	for i := 0; i < dim; i++ {
		sq := 1.0
		for k := 0; k < i; k++ {
			sq -= v[i][k] * v[i][k]
		}
		d := math.Sqrt(sq)
		v[i][i] = d
		dot := 0.0
		for k := 0; k < i; k++ {
			dot += v[i][k] * v[i+1][k]
		}
		c := (-1/n - dot) / d
		for j := i + 1; j <= dim; j++ {
			v[j][i] = c
		}
	}
	return v
}

// MinDimension returns the construction dimension.
func (p *Phantom) MinDimension() int { return p.dim }

// MaxDimension returns the construction dimension.
func (p *Phantom) MaxDimension() int { return p.dim }

// Seeded returns true: per-call reseeding is free.
func (p *Phantom) Seeded() bool { return true }

// Seed returns the stored seed.
func (p *Phantom) Seed() int64 { return p.seed }

// SetSeed replaces the stored seed.
func (p *Phantom) SetSeed(seed int64) { p.seed = seed }

// Sharpness returns the Barron-spline sharpness fixed at construction.
func (p *Phantom) Sharpness() float64 { return p.sharpness }

// Clone returns an independent generator with the same dimension, seed,
// and sharpness but its own scratch buffers.
func (p *Phantom) Clone() *Phantom {
	c, _ := NewPhantomSharpness(p.dim, p.seed, p.sharpness)
	return c
}

// Noise evaluates phantom noise at the given point with the stored seed.
// The result is in [-1, 1].
func (p *Phantom) Noise(coords ...float64) (float64, error) {
	if len(coords) != p.dim {
		return 0, dimensionError(len(coords), p.dim, p.dim)
	}
	return p.at(p.seed, coords), nil
}

// NoiseWithSeed evaluates with an explicit seed, leaving the stored seed
// untouched.
func (p *Phantom) NoiseWithSeed(seed int64, coords ...float64) (float64, error) {
	if len(coords) != p.dim {
		return 0, dimensionError(len(coords), p.dim, p.dim)
	}
	return p.at(seed, coords), nil
}

func (p *Phantom) at(seed int64, coords []float64) float64 {
	for v := 0; v <= p.dim; v++ {
		vert := p.vertices[v]
		s := 0.0
		for a := 0; a < p.dim; a++ {
			s += coords[a] * vert[a]
		}
		p.points[v] = s
	}

	pseudo := inversePhi
	warp := 0.0
	total := 0.0
	for round := 0; round <= p.dim; round++ {
		w := 0
		for v := 0; v <= p.dim; v++ {
			if v != round {
				p.working[w] = p.points[v]
				w++
			}
		}
		p.working[0] += warp
		roundSeed := int64(hashing.Mix64(uint64(seed) ^ math.Float64bits(pseudo)))
		warp = p.valueNoise(roundSeed)
		total += warp
		pseudo -= inversePhi
	}

	total *= p.inverse
	return barronSpline(total, p.sharpness, 0.5)*2 - 1
}

// valueNoise blends the hashed corners of the cell around p.working, like
// Value.at but mapped to [0, 1) so rounds can be averaged before the final
// spline.
func (p *Phantom) valueNoise(seed int64) float64 {
	for a := 0; a < p.dim; a++ {
		f := math.Floor(p.working[a])
		p.floors[a] = int64(f)
		p.fracs[a] = smootherstep(p.working[a] - f)
	}
	var sum float64
	for corner := 0; corner < 1<<p.dim; corner++ {
		w := 1.0
		for a := 0; a < p.dim; a++ {
			if corner>>a&1 == 1 {
				w *= p.fracs[a]
				p.lattice[a] = p.floors[a] + 1
			} else {
				w *= 1 - p.fracs[a]
				p.lattice[a] = p.floors[a]
			}
		}
		if w == 0 {
			continue
		}
		h := hashing.HashN(seed, p.lattice[:p.dim])
		sum += w * (float64(h>>40) * 0x1p-24)
	}
	return sum
}

// barronSpline is Barron's generalization of Schlick's bias/gain curves
// (arXiv:2010.09714): a monotonic map of [0,1] onto [0,1] that passes
// through (turning, turning), steeper than identity on one side and
// flatter on the other. Shape must be positive and turning must lie in
// (0, 1).
func barronSpline(x, shape, turning float64) float64 {
	if x <= turning {
		return turning * x / (x + shape*(turning-x))
	}
	return 1 + (1-turning)*(x-1)/((1-x)-shape*(turning-x))
}

// Serialize encodes the generator as "Phantom`<dim>~<seed>~<sharpness>`".
func (p *Phantom) Serialize() string {
	return encode(tagPhantom,
		strconv.Itoa(p.dim),
		strconv.FormatInt(p.seed, 10),
		strconv.FormatFloat(p.sharpness, 'g', -1, 64))
}
