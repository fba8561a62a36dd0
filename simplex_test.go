package noise

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestSimplex2DRepeatable(t *testing.T) {
	a := Simplex2D(0, 0, 12345)
	b := Simplex2D(0, 0, 12345)
	if a != b {
		t.Errorf("Simplex2D(0, 0, 12345) = %v then %v, want identical", a, b)
	}
	if !(a > -1 && a < 1) {
		t.Errorf("Simplex2D(0, 0, 12345) = %v, want strictly inside (-1, 1)", a)
	}
}

func TestSimplexRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sample := func(dim int, c [6]float64, seed int64) float64 {
		switch dim {
		case 2:
			return Simplex2D(c[0], c[1], seed)
		case 3:
			return Simplex3D(c[0], c[1], c[2], seed)
		case 4:
			return Simplex4D(c[0], c[1], c[2], c[3], seed)
		case 5:
			return Simplex5D(c[0], c[1], c[2], c[3], c[4], seed)
		default:
			return Simplex6D(c[0], c[1], c[2], c[3], c[4], c[5], seed)
		}
	}
	for dim := 2; dim <= 6; dim++ {
		for i := 0; i < 10000; i++ {
			var c [6]float64
			for a := 0; a < dim; a++ {
				c[a] = rng.Float64()*2000 - 1000
			}
			seed := rng.Int63()
			v := sample(dim, c, seed)
			if math.IsNaN(v) || v < -1 || v > 1 {
				t.Fatalf("Simplex%dD%v seed %d = %v, want in [-1, 1]", dim, c[:dim], seed, v)
			}
		}
	}
}

// TestSimplexLatticeExact feeds points exactly on lattice corners and cell
// boundaries; the tie-breaking in the simplex ranking must stay on a
// well-defined path with no NaN or panic.
func TestSimplexLatticeExact(t *testing.T) {
	coords := []float64{-3, -1, 0, 1, 2, 100}
	for _, x := range coords {
		for _, y := range coords {
			v := Simplex2D(x, y, 99)
			if math.IsNaN(v) || v < -1 || v > 1 {
				t.Errorf("Simplex2D(%v, %v, 99) = %v, want finite in [-1, 1]", x, y, v)
			}
			v = Simplex3D(x, y, x, 99)
			if math.IsNaN(v) || v < -1 || v > 1 {
				t.Errorf("Simplex3D(%v, %v, %v, 99) = %v, want finite in [-1, 1]", x, y, x, v)
			}
			v = Simplex4D(x, x, y, y, 99)
			if math.IsNaN(v) || v < -1 || v > 1 {
				t.Errorf("Simplex4D = %v at tied offsets, want finite in [-1, 1]", v)
			}
			v = Simplex6D(x, x, x, y, y, y, 99)
			if math.IsNaN(v) || v < -1 || v > 1 {
				t.Errorf("Simplex6D = %v at tied offsets, want finite in [-1, 1]", v)
			}
		}
	}
}

func TestSimplexContinuity(t *testing.T) {
	// Walk a fine line through several cells; adjacent samples must not
	// jump. Catches discontinuities at simplex boundaries.
	const step = 0.01
	const bound = 0.5
	prev2 := Simplex2D(-2, -2*0.7, 31337)
	prev3 := Simplex3D(-2, -2*0.7, -2*1.3, 31337)
	prev4 := Simplex4D(-2, -2*0.7, -2*1.3, -2*0.4, 31337)
	for i := 1; i <= 800; i++ {
		p := -2 + float64(i)*step
		v2 := Simplex2D(p, p*0.7, 31337)
		v3 := Simplex3D(p, p*0.7, p*1.3, 31337)
		v4 := Simplex4D(p, p*0.7, p*1.3, p*0.4, 31337)
		if d := math.Abs(v2 - prev2); d > bound {
			t.Fatalf("2D jump of %v at t=%v, want <= %v", d, p, bound)
		}
		if d := math.Abs(v3 - prev3); d > bound {
			t.Fatalf("3D jump of %v at t=%v, want <= %v", d, p, bound)
		}
		if d := math.Abs(v4 - prev4); d > bound {
			t.Fatalf("4D jump of %v at t=%v, want <= %v", d, p, bound)
		}
		prev2, prev3, prev4 = v2, v3, v4
	}
}

func TestSimplexSeedSensitivity(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	changed := 0
	const pairs = 200
	for range pairs {
		s1, s2 := rng.Int63(), rng.Int63()
		if s1 == s2 {
			changed++
			continue
		}
		x, y := rng.Float64()*100-50, rng.Float64()*100-50
		if Simplex2D(x, y, s1) != Simplex2D(x, y, s2) {
			changed++
		}
	}
	if frac := float64(changed) / pairs; frac < 0.99 {
		t.Errorf("seed change altered output in %.3f of pairs, want >= 0.99", frac)
	}
}

func TestSimplexInstanceSeedOverride(t *testing.T) {
	s := NewSimplex(1)
	base, err := s.Noise(3.5, -2.25)
	if err != nil {
		t.Fatalf("Noise() = %v", err)
	}
	other, err := s.NoiseWithSeed(999, 3.5, -2.25)
	if err != nil {
		t.Fatalf("NoiseWithSeed() = %v", err)
	}
	if other == base {
		t.Error("NoiseWithSeed(999) matched the stored-seed output; override ignored")
	}
	if s.Seed() != 1 {
		t.Errorf("Seed() = %d after NoiseWithSeed, want 1 (stored seed must not mutate)", s.Seed())
	}
	again, err := s.Noise(3.5, -2.25)
	if err != nil {
		t.Fatalf("Noise() = %v", err)
	}
	if again != base {
		t.Errorf("stored-seed output changed after NoiseWithSeed: %v != %v", again, base)
	}
}

func TestSimplexDimensionGuard(t *testing.T) {
	s := NewSimplex(1)
	for _, coords := range [][]float64{nil, {1}, {1, 2, 3, 4, 5, 6, 7}} {
		if _, err := s.Noise(coords...); !errors.Is(err, ErrUnsupportedDimension) {
			t.Errorf("Noise with %d coords: err = %v, want ErrUnsupportedDimension", len(coords), err)
		}
	}
	if min, max := s.MinDimension(), s.MaxDimension(); min != 2 || max != 6 {
		t.Errorf("dimension bounds = %d..%d, want 2..6", min, max)
	}
}
