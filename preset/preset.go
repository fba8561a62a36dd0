// Package preset loads and saves YAML descriptions of configured noise
// generators, so map-generation pipelines can keep their tuning in data
// files instead of code. Loading layers file values over defaults; a
// preset can then be built into a ready-to-use generator.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/procgrid/noise"
)

// Preset describes a generator and optional fractal layering.
type Preset struct {
	// Engine is one of "simplex", "value", "phantom", "perlin",
	// "opensimplex".
	Engine string `yaml:"engine"`
	// Dimension applies to engines fixed at construction (value,
	// phantom).
	Dimension int   `yaml:"dimension"`
	Seed      int64 `yaml:"seed"`
	// Sharpness tunes phantom noise; zero means the engine default.
	Sharpness float64 `yaml:"sharpness,omitempty"`

	// Octaves above 1 wraps the engine in fractal layering.
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Persistence float64 `yaml:"persistence"`
	// Mode is "fbm", "billow", or "ridged".
	Mode string `yaml:"mode"`
}

// Default returns the baseline preset: 2D simplex, single octave.
func Default() Preset {
	return Preset{
		Engine:      "simplex",
		Dimension:   2,
		Seed:        1,
		Octaves:     1,
		Frequency:   1,
		Lacunarity:  2,
		Persistence: 0.5,
		Mode:        "fbm",
	}
}

// Load reads a preset file, layering its values over Default.
func Load(path string) (Preset, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("preset: parsing %s: %w", path, err)
	}
	noise.Logger().Debug("loaded noise preset", "path", path, "engine", p.Engine)
	return p, nil
}

// Save writes a preset as YAML.
func Save(path string, p Preset) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("preset: encoding: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("preset: writing %s: %w", path, err)
	}
	return nil
}

// Build constructs the generator the preset describes, wrapping it in
// fractal layering when Octaves is above 1.
func (p Preset) Build() (noise.Generator, error) {
	var g noise.Generator
	var err error
	switch p.Engine {
	case "simplex":
		g = noise.NewSimplex(p.Seed)
	case "value":
		g, err = noise.NewValue(p.Dimension, p.Seed)
	case "phantom":
		if p.Sharpness > 0 {
			g, err = noise.NewPhantomSharpness(p.Dimension, p.Seed, p.Sharpness)
		} else {
			g, err = noise.NewPhantom(p.Dimension, p.Seed)
		}
	case "perlin":
		g = noise.NewPerlin(p.Seed)
	case "opensimplex":
		g = noise.NewOpenSimplex(p.Seed)
	default:
		return nil, fmt.Errorf("preset: unknown engine %q", p.Engine)
	}
	if err != nil {
		return nil, fmt.Errorf("preset: building %s: %w", p.Engine, err)
	}
	if p.Octaves <= 1 {
		return g, nil
	}
	mode, err := noise.ParseFractalMode(p.Mode)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	f, err := noise.NewFractal(g, p.Octaves, p.Frequency, p.Lacunarity, p.Persistence, mode)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	return f, nil
}
