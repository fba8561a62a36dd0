package noise

import (
	"math"
	"strconv"

	"github.com/procgrid/noise/internal/gradient"
	"github.com/procgrid/noise/internal/hashing"
)

// Simplex noise for 2 to 6 dimensions.
//
// Each dimension follows the same plan: skew the input onto the simplex
// grid, find the containing cell, rank the unskewed offsets to pick the
// traversal order through the cell's corners, and sum a falloff-weighted
// gradient dot product per corner. The skew factor for dimension N is
// (sqrt(N+1)-1)/N and the unskew factor is (N+1-sqrt(N+1))/(N*(N+1)).
//
// The limit (squared falloff radius) and scale constants are tuned per
// dimension so the output fills [-1, 1] without leaving it; they are
// empirical, not derived. 4D and up additionally pass the scaled sum
// through a bounded rational curve, since the polynomial falloff alone
// does not strictly bound the result at higher dimensions.
const (
	skew2   = 0.36602540378443865
	unskew2 = 0.21132486540518713
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
	skew4   = 0.30901699437494745
	unskew4 = 0.13819660112501053
	skew5   = 0.28989794855663564
	unskew5 = 0.11835034190722741
	skew6   = 0.27429188517743176
	unskew6 = 0.10367258783179547

	limit2 = 0.5
	limit3 = 0.6
	limit4 = 0.4675
	limit5 = 0.7
	limit6 = 0.8375

	scale2 = 99.20689070704672
	scale3 = 41.1833
	scale4 = 120.0
	scale5 = 26.0
	scale6 = 12.0

	bound4 = 0.25
	bound5 = 0.25
	bound6 = 0.25
)

// floori floors v to an int64 without calling math.Floor.
func floori(v float64) int64 {
	f := int64(v)
	if v < float64(f) {
		f--
	}
	return f
}

// softClip maps t to (-1, 1) via t / (c + |t|). Monotonic and odd, so it
// reshapes without reordering values.
func softClip(t, c float64) float64 {
	return t / (c + math.Abs(t))
}

// Simplex2D returns 2D simplex noise at (x, y) for a seed, in [-1, 1].
// It is stateless and safe for concurrent use.
func Simplex2D(x, y float64, seed int64) float64 {
	s := (x + y) * skew2
	i := floori(x + s)
	j := floori(y + s)
	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Which of the two triangles are we in? Ties go to the x-major
	// triangle so lattice-exact input takes a well-defined path.
	var i1, j1 int64
	if x0 >= y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	var n float64
	if t0 := limit2 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n += t0 * t0 * gradient.Dot2(hashing.Index2(seed, i, j), x0, y0)
	}
	if t1 := limit2 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n += t1 * t1 * gradient.Dot2(hashing.Index2(seed, i+i1, j+j1), x1, y1)
	}
	if t2 := limit2 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n += t2 * t2 * gradient.Dot2(hashing.Index2(seed, i+1, j+1), x2, y2)
	}
	return n * scale2
}

// Simplex3D returns 3D simplex noise at (x, y, z) for a seed, in [-1, 1].
// It is stateless and safe for concurrent use.
func Simplex3D(x, y, z float64, seed int64) float64 {
	s := (x + y + z) * skew3
	i := floori(x + s)
	j := floori(y + s)
	k := floori(z + s)
	t := float64(i+j+k) * unskew3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Order the axes by offset magnitude to pick one of the six
	// tetrahedra inside the cell. Non-strict comparisons keep ties on
	// the lower axis index.
	var i1, j1, k1, i2, j2, k2 int64
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, i2, j2 = 1, 1, 1
		case x0 >= z0:
			i1, i2, k2 = 1, 1, 1
		default:
			k1, i2, k2 = 1, 1, 1
		}
	} else {
		switch {
		case y0 < z0:
			k1, j2, k2 = 1, 1, 1
		case x0 < z0:
			j1, j2, k2 = 1, 1, 1
		default:
			j1, i2, j2 = 1, 1, 1
		}
	}

	x1 := x0 - float64(i1) + unskew3
	y1 := y0 - float64(j1) + unskew3
	z1 := z0 - float64(k1) + unskew3
	x2 := x0 - float64(i2) + 2*unskew3
	y2 := y0 - float64(j2) + 2*unskew3
	z2 := z0 - float64(k2) + 2*unskew3
	x3 := x0 - 1 + 3*unskew3
	y3 := y0 - 1 + 3*unskew3
	z3 := z0 - 1 + 3*unskew3

	var n float64
	if t0 := limit3 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n += t0 * t0 * gradient.Dot3(hashing.Index3(seed, i, j, k), x0, y0, z0)
	}
	if t1 := limit3 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n += t1 * t1 * gradient.Dot3(hashing.Index3(seed, i+i1, j+j1, k+k1), x1, y1, z1)
	}
	if t2 := limit3 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n += t2 * t2 * gradient.Dot3(hashing.Index3(seed, i+i2, j+j2, k+k2), x2, y2, z2)
	}
	if t3 := limit3 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n += t3 * t3 * gradient.Dot3(hashing.Index3(seed, i+1, j+1, k+1), x3, y3, z3)
	}
	return n * scale3
}

// Simplex4D returns 4D simplex noise at (x, y, z, w) for a seed, in
// [-1, 1]. It is stateless and safe for concurrent use.
func Simplex4D(x, y, z, w float64, seed int64) float64 {
	s := (x + y + z + w) * skew4
	i := floori(x + s)
	j := floori(y + s)
	k := floori(z + s)
	l := floori(w + s)
	t := float64(i+j+k+l) * unskew4
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)
	w0 := w - (float64(l) - t)

	// Rank each axis by pairwise comparison; the rank decides at which
	// corner step the axis increments. Non-strict comparisons keep ties
	// on the lower axis index.
	var rx, ry, rz, rw int
	if x0 >= y0 {
		rx++
	} else {
		ry++
	}
	if x0 >= z0 {
		rx++
	} else {
		rz++
	}
	if x0 >= w0 {
		rx++
	} else {
		rw++
	}
	if y0 >= z0 {
		ry++
	} else {
		rz++
	}
	if y0 >= w0 {
		ry++
	} else {
		rw++
	}
	if z0 >= w0 {
		rz++
	} else {
		rw++
	}

	var i1, j1, k1, l1, i2, j2, k2, l2, i3, j3, k3, l3 int64
	if rx >= 3 {
		i1 = 1
	}
	if ry >= 3 {
		j1 = 1
	}
	if rz >= 3 {
		k1 = 1
	}
	if rw >= 3 {
		l1 = 1
	}
	if rx >= 2 {
		i2 = 1
	}
	if ry >= 2 {
		j2 = 1
	}
	if rz >= 2 {
		k2 = 1
	}
	if rw >= 2 {
		l2 = 1
	}
	if rx >= 1 {
		i3 = 1
	}
	if ry >= 1 {
		j3 = 1
	}
	if rz >= 1 {
		k3 = 1
	}
	if rw >= 1 {
		l3 = 1
	}

	x1 := x0 - float64(i1) + unskew4
	y1 := y0 - float64(j1) + unskew4
	z1 := z0 - float64(k1) + unskew4
	w1 := w0 - float64(l1) + unskew4
	x2 := x0 - float64(i2) + 2*unskew4
	y2 := y0 - float64(j2) + 2*unskew4
	z2 := z0 - float64(k2) + 2*unskew4
	w2 := w0 - float64(l2) + 2*unskew4
	x3 := x0 - float64(i3) + 3*unskew4
	y3 := y0 - float64(j3) + 3*unskew4
	z3 := z0 - float64(k3) + 3*unskew4
	w3 := w0 - float64(l3) + 3*unskew4
	x4 := x0 - 1 + 4*unskew4
	y4 := y0 - 1 + 4*unskew4
	z4 := z0 - 1 + 4*unskew4
	w4 := w0 - 1 + 4*unskew4

	var n float64
	if t0 := limit4 - x0*x0 - y0*y0 - z0*z0 - w0*w0; t0 > 0 {
		t0 *= t0
		n += t0 * t0 * gradient.Dot4(hashing.Index4(seed, i, j, k, l), x0, y0, z0, w0)
	}
	if t1 := limit4 - x1*x1 - y1*y1 - z1*z1 - w1*w1; t1 > 0 {
		t1 *= t1
		n += t1 * t1 * gradient.Dot4(hashing.Index4(seed, i+i1, j+j1, k+k1, l+l1), x1, y1, z1, w1)
	}
	if t2 := limit4 - x2*x2 - y2*y2 - z2*z2 - w2*w2; t2 > 0 {
		t2 *= t2
		n += t2 * t2 * gradient.Dot4(hashing.Index4(seed, i+i2, j+j2, k+k2, l+l2), x2, y2, z2, w2)
	}
	if t3 := limit4 - x3*x3 - y3*y3 - z3*z3 - w3*w3; t3 > 0 {
		t3 *= t3
		n += t3 * t3 * gradient.Dot4(hashing.Index4(seed, i+i3, j+j3, k+k3, l+l3), x3, y3, z3, w3)
	}
	if t4 := limit4 - x4*x4 - y4*y4 - z4*z4 - w4*w4; t4 > 0 {
		t4 *= t4
		n += t4 * t4 * gradient.Dot4(hashing.Index4(seed, i+1, j+1, k+1, l+1), x4, y4, z4, w4)
	}
	return softClip(n*scale4, bound4)
}

// Simplex5D returns 5D simplex noise at (x, y, z, w, u) for a seed, in
// [-1, 1]. It is stateless and safe for concurrent use.
func Simplex5D(x, y, z, w, u float64, seed int64) float64 {
	s := (x + y + z + w + u) * skew5
	i := floori(x + s)
	j := floori(y + s)
	k := floori(z + s)
	l := floori(w + s)
	h := floori(u + s)
	t := float64(i+j+k+l+h) * unskew5
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)
	w0 := w - (float64(l) - t)
	u0 := u - (float64(h) - t)

	var rx, ry, rz, rw, ru int
	if x0 >= y0 {
		rx++
	} else {
		ry++
	}
	if x0 >= z0 {
		rx++
	} else {
		rz++
	}
	if x0 >= w0 {
		rx++
	} else {
		rw++
	}
	if x0 >= u0 {
		rx++
	} else {
		ru++
	}
	if y0 >= z0 {
		ry++
	} else {
		rz++
	}
	if y0 >= w0 {
		ry++
	} else {
		rw++
	}
	if y0 >= u0 {
		ry++
	} else {
		ru++
	}
	if z0 >= w0 {
		rz++
	} else {
		rw++
	}
	if z0 >= u0 {
		rz++
	} else {
		ru++
	}
	if w0 >= u0 {
		rw++
	} else {
		ru++
	}

	// Corner steps 1..4: an axis increments once its rank reaches the
	// remaining step count.
	var steps [4][5]int64
	ranks := [5]int{rx, ry, rz, rw, ru}
	for c := 0; c < 4; c++ {
		for a := 0; a < 5; a++ {
			if ranks[a] >= 4-c {
				steps[c][a] = 1
			}
		}
	}

	offs := [5]float64{x0, y0, z0, w0, u0}
	base := [5]int64{i, j, k, l, h}

	var n float64
	if t0 := limit5 - x0*x0 - y0*y0 - z0*z0 - w0*w0 - u0*u0; t0 > 0 {
		t0 *= t0
		n += t0 * t0 * gradient.Dot5(hashing.Index5(seed, i, j, k, l, h), x0, y0, z0, w0, u0)
	}
	for c := 0; c < 4; c++ {
		g := float64(c+1) * unskew5
		xc := offs[0] - float64(steps[c][0]) + g
		yc := offs[1] - float64(steps[c][1]) + g
		zc := offs[2] - float64(steps[c][2]) + g
		wc := offs[3] - float64(steps[c][3]) + g
		uc := offs[4] - float64(steps[c][4]) + g
		if tc := limit5 - xc*xc - yc*yc - zc*zc - wc*wc - uc*uc; tc > 0 {
			tc *= tc
			gi := hashing.Index5(seed,
				base[0]+steps[c][0], base[1]+steps[c][1], base[2]+steps[c][2],
				base[3]+steps[c][3], base[4]+steps[c][4])
			n += tc * tc * gradient.Dot5(gi, xc, yc, zc, wc, uc)
		}
	}
	g := 5 * unskew5
	x5 := x0 - 1 + g
	y5 := y0 - 1 + g
	z5 := z0 - 1 + g
	w5 := w0 - 1 + g
	u5 := u0 - 1 + g
	if t5 := limit5 - x5*x5 - y5*y5 - z5*z5 - w5*w5 - u5*u5; t5 > 0 {
		t5 *= t5
		n += t5 * t5 * gradient.Dot5(hashing.Index5(seed, i+1, j+1, k+1, l+1, h+1), x5, y5, z5, w5, u5)
	}
	return softClip(n*scale5, bound5)
}

// Simplex6D returns 6D simplex noise at (x, y, z, w, u, v) for a seed, in
// [-1, 1]. It is stateless and safe for concurrent use.
func Simplex6D(x, y, z, w, u, v float64, seed int64) float64 {
	s := (x + y + z + w + u + v) * skew6
	i := floori(x + s)
	j := floori(y + s)
	k := floori(z + s)
	l := floori(w + s)
	h := floori(u + s)
	m := floori(v + s)
	t := float64(i+j+k+l+h+m) * unskew6
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)
	w0 := w - (float64(l) - t)
	u0 := u - (float64(h) - t)
	v0 := v - (float64(m) - t)

	var rx, ry, rz, rw, ru, rv int
	if x0 >= y0 {
		rx++
	} else {
		ry++
	}
	if x0 >= z0 {
		rx++
	} else {
		rz++
	}
	if x0 >= w0 {
		rx++
	} else {
		rw++
	}
	if x0 >= u0 {
		rx++
	} else {
		ru++
	}
	if x0 >= v0 {
		rx++
	} else {
		rv++
	}
	if y0 >= z0 {
		ry++
	} else {
		rz++
	}
	if y0 >= w0 {
		ry++
	} else {
		rw++
	}
	if y0 >= u0 {
		ry++
	} else {
		ru++
	}
	if y0 >= v0 {
		ry++
	} else {
		rv++
	}
	if z0 >= w0 {
		rz++
	} else {
		rw++
	}
	if z0 >= u0 {
		rz++
	} else {
		ru++
	}
	if z0 >= v0 {
		rz++
	} else {
		rv++
	}
	if w0 >= u0 {
		rw++
	} else {
		ru++
	}
	if w0 >= v0 {
		rw++
	} else {
		rv++
	}
	if u0 >= v0 {
		ru++
	} else {
		rv++
	}

	var steps [5][6]int64
	ranks := [6]int{rx, ry, rz, rw, ru, rv}
	for c := 0; c < 5; c++ {
		for a := 0; a < 6; a++ {
			if ranks[a] >= 5-c {
				steps[c][a] = 1
			}
		}
	}

	offs := [6]float64{x0, y0, z0, w0, u0, v0}
	base := [6]int64{i, j, k, l, h, m}

	var n float64
	if t0 := limit6 - x0*x0 - y0*y0 - z0*z0 - w0*w0 - u0*u0 - v0*v0; t0 > 0 {
		t0 *= t0
		n += t0 * t0 * gradient.Dot6(hashing.Index6(seed, i, j, k, l, h, m), x0, y0, z0, w0, u0, v0)
	}
	for c := 0; c < 5; c++ {
		g := float64(c+1) * unskew6
		xc := offs[0] - float64(steps[c][0]) + g
		yc := offs[1] - float64(steps[c][1]) + g
		zc := offs[2] - float64(steps[c][2]) + g
		wc := offs[3] - float64(steps[c][3]) + g
		uc := offs[4] - float64(steps[c][4]) + g
		vc := offs[5] - float64(steps[c][5]) + g
		if tc := limit6 - xc*xc - yc*yc - zc*zc - wc*wc - uc*uc - vc*vc; tc > 0 {
			tc *= tc
			gi := hashing.Index6(seed,
				base[0]+steps[c][0], base[1]+steps[c][1], base[2]+steps[c][2],
				base[3]+steps[c][3], base[4]+steps[c][4], base[5]+steps[c][5])
			n += tc * tc * gradient.Dot6(gi, xc, yc, zc, wc, uc, vc)
		}
	}
	g := 6 * unskew6
	x6 := x0 - 1 + g
	y6 := y0 - 1 + g
	z6 := z0 - 1 + g
	w6 := w0 - 1 + g
	u6 := u0 - 1 + g
	v6 := v0 - 1 + g
	if t6 := limit6 - x6*x6 - y6*y6 - z6*z6 - w6*w6 - u6*u6 - v6*v6; t6 > 0 {
		t6 *= t6
		n += t6 * t6 * gradient.Dot6(hashing.Index6(seed, i+1, j+1, k+1, l+1, h+1, m+1), x6, y6, z6, w6, u6, v6)
	}
	return softClip(n*scale6, bound6)
}

// Simplex is a seeded wrapper around the stateless simplex functions. It
// holds no scratch state, so a single instance is safe for concurrent use.
type Simplex struct {
	seed int64
}

// NewSimplex creates a simplex generator with the given seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{seed: seed}
}

// MinDimension returns 2.
func (s *Simplex) MinDimension() int { return 2 }

// MaxDimension returns 6.
func (s *Simplex) MaxDimension() int { return 6 }

// Seeded returns true: per-call reseeding is free.
func (s *Simplex) Seeded() bool { return true }

// Seed returns the stored seed.
func (s *Simplex) Seed() int64 { return s.seed }

// SetSeed replaces the stored seed.
func (s *Simplex) SetSeed(seed int64) { s.seed = seed }

// Noise evaluates simplex noise at the given point with the stored seed.
func (s *Simplex) Noise(coords ...float64) (float64, error) {
	return s.NoiseWithSeed(s.seed, coords...)
}

// NoiseWithSeed evaluates simplex noise with an explicit seed. The stored
// seed is not touched.
func (s *Simplex) NoiseWithSeed(seed int64, coords ...float64) (float64, error) {
	switch len(coords) {
	case 2:
		return Simplex2D(coords[0], coords[1], seed), nil
	case 3:
		return Simplex3D(coords[0], coords[1], coords[2], seed), nil
	case 4:
		return Simplex4D(coords[0], coords[1], coords[2], coords[3], seed), nil
	case 5:
		return Simplex5D(coords[0], coords[1], coords[2], coords[3], coords[4], seed), nil
	case 6:
		return Simplex6D(coords[0], coords[1], coords[2], coords[3], coords[4], coords[5], seed), nil
	}
	return 0, dimensionError(len(coords), 2, 6)
}

// Serialize encodes the generator as "Simplex`<seed>`".
func (s *Simplex) Serialize() string {
	return encode(tagSimplex, strconv.FormatInt(s.seed, 10))
}
