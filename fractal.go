package noise

import (
	"fmt"
	"strconv"
)

// FractalMode selects how Fractal combines octaves.
type FractalMode int

const (
	// FBM sums octaves directly (fractional Brownian motion).
	FBM FractalMode = iota
	// Billow folds each octave around zero, giving puffy ridges.
	Billow
	// Ridged inverts the folded octaves, giving sharp creases.
	Ridged
)

// String returns the lowercase mode name.
func (m FractalMode) String() string {
	switch m {
	case FBM:
		return "fbm"
	case Billow:
		return "billow"
	case Ridged:
		return "ridged"
	}
	return fmt.Sprintf("FractalMode(%d)", int(m))
}

// ParseFractalMode converts a mode name back to a FractalMode.
func ParseFractalMode(s string) (FractalMode, error) {
	switch s {
	case "fbm":
		return FBM, nil
	case "billow":
		return Billow, nil
	case "ridged":
		return Ridged, nil
	}
	return 0, fmt.Errorf("%w: unknown fractal mode %q", ErrMalformedState, s)
}

// Fractal layers another generator into octave noise. Each octave samples
// the source at a higher frequency and lower amplitude; the weighted sum
// is divided by the total amplitude so output stays in [-1, 1].
//
// Dimension bounds and seeding follow the wrapped source. A Fractal
// reuses a coordinate scratch buffer between calls, so an instance must
// not be shared between goroutines even when the source is stateless.
type Fractal struct {
	src         Generator
	octaves     int
	frequency   float64
	lacunarity  float64
	persistence float64
	mode        FractalMode

	ampSum  float64
	scratch [6]float64
}

// NewFractal wraps src in octave layering. Octaves must be at least 1;
// frequency and lacunarity must be positive; persistence must be in
// (0, 1].
func NewFractal(src Generator, octaves int, frequency, lacunarity, persistence float64, mode FractalMode) (*Fractal, error) {
	if src == nil {
		return nil, fmt.Errorf("noise: fractal source must not be nil")
	}
	if octaves < 1 {
		return nil, fmt.Errorf("noise: fractal octaves must be >= 1, got %d", octaves)
	}
	if frequency <= 0 || lacunarity <= 0 {
		return nil, fmt.Errorf("noise: fractal frequency and lacunarity must be positive")
	}
	if persistence <= 0 || persistence > 1 {
		return nil, fmt.Errorf("noise: fractal persistence must be in (0, 1], got %v", persistence)
	}
	f := &Fractal{
		src:         src,
		octaves:     octaves,
		frequency:   frequency,
		lacunarity:  lacunarity,
		persistence: persistence,
		mode:        mode,
	}
	amp := 1.0
	for o := 0; o < octaves; o++ {
		f.ampSum += amp
		amp *= persistence
	}
	return f, nil
}

// Source returns the wrapped generator.
func (f *Fractal) Source() Generator { return f.src }

// MinDimension follows the wrapped source.
func (f *Fractal) MinDimension() int { return f.src.MinDimension() }

// MaxDimension follows the wrapped source.
func (f *Fractal) MaxDimension() int { return f.src.MaxDimension() }

// Seeded follows the wrapped source.
func (f *Fractal) Seeded() bool { return f.src.Seeded() }

// Seed returns the wrapped source's seed.
func (f *Fractal) Seed() int64 { return f.src.Seed() }

// SetSeed reseeds the wrapped source.
func (f *Fractal) SetSeed(seed int64) { f.src.SetSeed(seed) }

// Noise evaluates the layered noise at the given point.
func (f *Fractal) Noise(coords ...float64) (float64, error) {
	return f.NoiseWithSeed(f.src.Seed(), coords...)
}

// NoiseWithSeed evaluates the layered noise with an explicit seed passed
// through to the wrapped source.
func (f *Fractal) NoiseWithSeed(seed int64, coords ...float64) (float64, error) {
	if len(coords) > len(f.scratch) {
		return 0, dimensionError(len(coords), f.MinDimension(), f.MaxDimension())
	}
	freq := f.frequency
	amp := 1.0
	var sum float64
	for o := 0; o < f.octaves; o++ {
		for i, c := range coords {
			f.scratch[i] = c * freq
		}
		n, err := f.src.NoiseWithSeed(seed, f.scratch[:len(coords)]...)
		if err != nil {
			return 0, err
		}
		switch f.mode {
		case Billow:
			if n < 0 {
				n = -n
			}
			n = 2*n - 1
		case Ridged:
			if n < 0 {
				n = -n
			}
			n = 1 - n
			n = 2*n*n - 1
		}
		sum += n * amp
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return sum / f.ampSum, nil
}

// Serialize encodes the wrapper followed by the wrapped generator's own
// encoding as the trailing field.
func (f *Fractal) Serialize() string {
	return encode(tagFractal,
		strconv.Itoa(f.octaves),
		strconv.FormatFloat(f.frequency, 'g', -1, 64),
		strconv.FormatFloat(f.lacunarity, 'g', -1, 64),
		strconv.FormatFloat(f.persistence, 'g', -1, 64),
		f.mode.String(),
		f.src.Serialize())
}
