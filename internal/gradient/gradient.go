// Package gradient holds the precomputed unit-direction tables used by the
// simplex engines. Each dimension from 2 to 6 has a table of 256 directions
// stored as a flat float64 slice, runs of N values per entry. Tables are
// built once on first use and never written afterwards, so they are safe to
// read from any number of goroutines.
package gradient

import (
	"math"
	"math/rand"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// TableSize is the number of directions per table. Power of two so a hash
// can be reduced to an index with a bitmask.
const TableSize = 256

var (
	buildOnce sync.Once
	tab2      []float64
	tab3      []float64
	tab4      []float64
	tab5      []float64
	tab6      []float64
)

func build() {
	tab2 = build2()
	tab3 = build3()
	tab4 = buildHigh(4)
	tab5 = buildHigh(5)
	tab6 = buildHigh(6)
}

// build2 walks the unit circle by the golden angle, which spreads 256
// directions as evenly as an irrational rotation can.
func build2() []float64 {
	const goldenAngle = 2 * math.Pi * 0.6180339887498949
	t := make([]float64, TableSize*2)
	for i := 0; i < TableSize; i++ {
		v := mgl64.Vec2{math.Cos(float64(i) * goldenAngle), math.Sin(float64(i) * goldenAngle)}.Normalize()
		t[i*2] = v.X()
		t[i*2+1] = v.Y()
	}
	return t
}

// build3 places directions on a Fibonacci sphere.
func build3() []float64 {
	const goldenAngle = 2 * math.Pi * 0.6180339887498949
	t := make([]float64, TableSize*3)
	for i := 0; i < TableSize; i++ {
		y := 1 - (2*float64(i)+1)/TableSize
		r := math.Sqrt(1 - y*y)
		phi := float64(i) * goldenAngle
		v := mgl64.Vec3{r * math.Cos(phi), y, r * math.Sin(phi)}.Normalize()
		t[i*3] = v.X()
		t[i*3+1] = v.Y()
		t[i*3+2] = v.Z()
	}
	return t
}

// buildHigh fills a table for dimensions above 3 by normalizing Gaussian
// samples, which is uniform on the hypersphere. The generator seed is fixed
// so every process sees the same table.
func buildHigh(dim int) []float64 {
	rng := rand.New(rand.NewSource(int64(uint64(0x9E3779B97F4A7C15) + uint64(dim))))
	t := make([]float64, TableSize*dim)
	v := make([]float64, dim)
	for i := 0; i < TableSize; i++ {
		lenSq := 0.0
		for lenSq < 1e-8 {
			lenSq = 0
			for a := range v {
				v[a] = rng.NormFloat64()
				lenSq += v[a] * v[a]
			}
		}
		if dim == 4 {
			u := mgl64.Vec4{v[0], v[1], v[2], v[3]}.Normalize()
			copy(t[i*4:], []float64{u.X(), u.Y(), u.Z(), u.W()})
			continue
		}
		inv := 1 / math.Sqrt(lenSq)
		for a := range v {
			t[i*dim+a] = v[a] * inv
		}
	}
	return t
}

// Table returns the flat direction table for a dimension in 2..6. The
// returned slice must be treated as read-only.
func Table(dim int) []float64 {
	buildOnce.Do(build)
	switch dim {
	case 2:
		return tab2
	case 3:
		return tab3
	case 4:
		return tab4
	case 5:
		return tab5
	case 6:
		return tab6
	}
	return nil
}

// Dot2 returns the dot product of table entry i with (x, y).
func Dot2(i int, x, y float64) float64 {
	buildOnce.Do(build)
	g := tab2[i*2:]
	return g[0]*x + g[1]*y
}

// Dot3 returns the dot product of table entry i with (x, y, z).
func Dot3(i int, x, y, z float64) float64 {
	buildOnce.Do(build)
	g := tab3[i*3:]
	return g[0]*x + g[1]*y + g[2]*z
}

// Dot4 returns the dot product of table entry i with (x, y, z, w).
func Dot4(i int, x, y, z, w float64) float64 {
	buildOnce.Do(build)
	g := tab4[i*4:]
	return g[0]*x + g[1]*y + g[2]*z + g[3]*w
}

// Dot5 returns the dot product of table entry i with (x, y, z, w, u).
func Dot5(i int, x, y, z, w, u float64) float64 {
	buildOnce.Do(build)
	g := tab5[i*5:]
	return g[0]*x + g[1]*y + g[2]*z + g[3]*w + g[4]*u
}

// Dot6 returns the dot product of table entry i with (x, y, z, w, u, v).
func Dot6(i int, x, y, z, w, u, v float64) float64 {
	buildOnce.Do(build)
	g := tab6[i*6:]
	return g[0]*x + g[1]*y + g[2]*z + g[3]*w + g[4]*u + g[5]*v
}
