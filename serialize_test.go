package noise

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func mustValue(t *testing.T, dim int, seed int64) *Value {
	t.Helper()
	v, err := NewValue(dim, seed)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func mustPhantom(t *testing.T, dim int, seed int64, sharpness float64) *Phantom {
	t.Helper()
	p, err := NewPhantomSharpness(dim, seed, sharpness)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSerializeRoundTrip(t *testing.T) {
	simplexSrc := NewSimplex(5)
	fractal, err := NewFractal(simplexSrc, 4, 0.125, 2.5, 0.6, Ridged)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		gen  Generator
	}{
		{"simplex", NewSimplex(-987654321)},
		{"value", mustValue(t, 5, 13)},
		{"phantom", mustPhantom(t, 3, 12345, 2.475)},
		{"phantom odd sharpness", mustPhantom(t, 6, -1, 0.1234567890123456)},
		{"perlin", NewPerlin(31415)},
		{"opensimplex", NewOpenSimplex(-27182)},
		{"fractal", fractal},
	}
	rng := rand.New(rand.NewSource(23))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.gen.Serialize()
			back, err := Deserialize(data)
			if err != nil {
				t.Fatalf("Deserialize(%q) = %v", data, err)
			}
			if got := back.Serialize(); got != data {
				t.Errorf("re-serialized form %q != original %q", got, data)
			}
			dim := tt.gen.MinDimension()
			if dim < 2 {
				dim = 2
			}
			coords := make([]float64, dim)
			for i := 0; i < 200; i++ {
				for a := range coords {
					coords[a] = rng.Float64()*200 - 100
				}
				want, err := tt.gen.Noise(coords...)
				if err != nil {
					t.Fatal(err)
				}
				got, err := back.Noise(coords...)
				if err != nil {
					t.Fatal(err)
				}
				if got != want {
					t.Fatalf("deserialized output %v != original %v at %v", got, want, coords)
				}
			}
		})
	}
}

// TestDeserializeNestedFractal round-trips a fractal wrapping another
// fractal, which drives Deserialize back into the decoder registry
// recursively.
func TestDeserializeNestedFractal(t *testing.T) {
	inner, err := NewFractal(NewSimplex(8), 2, 0.5, 2, 0.5, Billow)
	if err != nil {
		t.Fatal(err)
	}
	outer, err := NewFractal(inner, 3, 0.1, 2, 0.5, FBM)
	if err != nil {
		t.Fatal(err)
	}
	data := outer.Serialize()
	back, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize(%q) = %v", data, err)
	}
	if got := back.Serialize(); got != data {
		t.Errorf("re-serialized form %q != original %q", got, data)
	}
	want, err := outer.Noise(3.5, -1.25)
	if err != nil {
		t.Fatal(err)
	}
	got, err := back.Noise(3.5, -1.25)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("deserialized output %v != original %v", got, want)
	}
}

func TestDeserializeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no backtick", "Simplex12345"},
		{"missing tag", "`12345`"},
		{"unknown tag", "Bogus`1`"},
		{"truncated", "Simplex`123"},
		{"bad seed", "Simplex`notanumber`"},
		{"value missing field", "Value`3`"},
		{"value bad dim", "Value`nine~1`"},
		{"value dim out of range", "Value`9~1`"},
		{"phantom bad sharpness", "Phantom`3~12~spiky`"},
		{"fractal too few fields", "Fractal`2~1~2~0.5`"},
		{"fractal bad nested", "Fractal`2~1~2~0.5~fbm~Nope`1``"},
		{"fractal bad mode", "Fractal`2~1~2~0.5~swirly~Simplex`1``"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Deserialize(tt.data)
			if !errors.Is(err, ErrMalformedState) {
				t.Errorf("Deserialize(%q) err = %v, want ErrMalformedState", tt.data, err)
			}
			if g != nil {
				t.Errorf("Deserialize(%q) returned a generator alongside the error", tt.data)
			}
		})
	}
}

func TestSerializedShape(t *testing.T) {
	p := mustPhantom(t, 3, 12345, 2.475)
	got := p.Serialize()
	want := "Phantom`3~12345~2.475`"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(NewSimplex(7).Serialize(), "`7`") {
		t.Errorf("Simplex Serialize() = %q, want trailing seed field", NewSimplex(7).Serialize())
	}
}
