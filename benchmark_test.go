package noise

import (
	"strconv"
	"testing"
)

func BenchmarkSimplex(b *testing.B) {
	coords := [][]float64{
		{1.1, 2.2},
		{1.1, 2.2, 3.3},
		{1.1, 2.2, 3.3, 4.4},
		{1.1, 2.2, 3.3, 4.4, 5.5},
		{1.1, 2.2, 3.3, 4.4, 5.5, 6.6},
	}
	for _, c := range coords {
		b.Run(dimLabel(len(c)), func(b *testing.B) {
			s := NewSimplex(1)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := s.Noise(c...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkValue(b *testing.B) {
	for _, dim := range []int{2, 3, 4, 6} {
		b.Run(dimLabel(dim), func(b *testing.B) {
			v, err := NewValue(dim, 1)
			if err != nil {
				b.Fatal(err)
			}
			coords := benchCoords(dim)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := v.Noise(coords...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPhantom(b *testing.B) {
	for _, dim := range []int{2, 3, 4, 6} {
		b.Run(dimLabel(dim), func(b *testing.B) {
			p, err := NewPhantom(dim, 1)
			if err != nil {
				b.Fatal(err)
			}
			coords := benchCoords(dim)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := p.Noise(coords...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFractal(b *testing.B) {
	for _, octaves := range []int{1, 4, 8} {
		b.Run(strconv.Itoa(octaves)+"-octaves", func(b *testing.B) {
			f, err := NewFractal(NewSimplex(1), octaves, 0.05, 2, 0.5, FBM)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			for b.Loop() {
				if _, err := f.Noise(12.3, -4.5, 6.7); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDeserialize(b *testing.B) {
	data := NewSimplex(42).Serialize()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Deserialize(data); err != nil {
			b.Fatal(err)
		}
	}
}

func dimLabel(n int) string {
	return string(rune('0'+n)) + "D"
}

func benchCoords(dim int) []float64 {
	coords := make([]float64, dim)
	for i := range coords {
		coords[i] = 1.1 * float64(i+1)
	}
	return coords
}
