package noise

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialized generator state is a compact text encoding: a tag naming the
// engine, a backtick, `~`-separated fields, and a closing backtick. For
// example:
//
//	Phantom`3~12345~2.475`
//
// The encoding round-trips seed, dimension, and tunable parameters
// exactly; scratch buffers are derived state and are rebuilt on
// deserialization. The format is consumed only by Deserialize in this
// package — no external wire compatibility is promised.

// Engine tags. Stable; changing one breaks previously serialized state.
const (
	tagSimplex     = "Simplex"
	tagValue       = "Value"
	tagPhantom     = "Phantom"
	tagPerlin      = "Perlin"
	tagOpenSimplex = "OpenSimplex"
	tagFractal     = "Fractal"
)

// encode joins a tag and fields into the serialized form.
func encode(tag string, fields ...string) string {
	return tag + "`" + strings.Join(fields, "~") + "`"
}

// Deserialize reconstructs a generator from the output of Serialize. The
// result produces bit-identical output to the generator that was
// serialized. Corrupt or truncated input fails with ErrMalformedState;
// no partially-initialized generator is ever returned.
func Deserialize(data string) (Generator, error) {
	open := strings.IndexByte(data, '`')
	if open <= 0 || !strings.HasSuffix(data, "`") || len(data) < open+2 {
		return nil, fmt.Errorf("%w: %q is not tag`fields` form", ErrMalformedState, data)
	}
	tag := data[:open]
	body := data[open+1 : len(data)-1]
	build, ok := registry[tag]
	if !ok {
		return nil, fmt.Errorf("%w: unknown engine tag %q", ErrMalformedState, tag)
	}
	g, err := build(body)
	if err != nil {
		return nil, err
	}
	Logger().Debug("deserialized noise generator", "tag", tag)
	return g, nil
}

// registry maps engine tags to body parsers. Populated in init rather
// than a composite literal: decodeFractal recurses into Deserialize, and
// a package-level literal referencing it would form an initialization
// cycle.
var registry map[string]func(body string) (Generator, error)

func init() {
	registry = map[string]func(body string) (Generator, error){
		tagSimplex:     decodeSimplex,
		tagValue:       decodeValue,
		tagPhantom:     decodePhantom,
		tagPerlin:      decodePerlin,
		tagOpenSimplex: decodeOpenSimplex,
		tagFractal:     decodeFractal,
	}
}

func decodeSimplex(body string) (Generator, error) {
	seed, err := parseSeed(body)
	if err != nil {
		return nil, err
	}
	return NewSimplex(seed), nil
}

func decodeValue(body string) (Generator, error) {
	fields, err := splitFields(body, 2)
	if err != nil {
		return nil, err
	}
	dim, err := parseDim(fields[0])
	if err != nil {
		return nil, err
	}
	seed, err := parseSeed(fields[1])
	if err != nil {
		return nil, err
	}
	g, err := NewValue(dim, seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return g, nil
}

func decodePhantom(body string) (Generator, error) {
	fields, err := splitFields(body, 3)
	if err != nil {
		return nil, err
	}
	dim, err := parseDim(fields[0])
	if err != nil {
		return nil, err
	}
	seed, err := parseSeed(fields[1])
	if err != nil {
		return nil, err
	}
	sharpness, err := parseFloat(fields[2])
	if err != nil {
		return nil, err
	}
	g, err := NewPhantomSharpness(dim, seed, sharpness)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return g, nil
}

func decodePerlin(body string) (Generator, error) {
	seed, err := parseSeed(body)
	if err != nil {
		return nil, err
	}
	return NewPerlin(seed), nil
}

func decodeOpenSimplex(body string) (Generator, error) {
	seed, err := parseSeed(body)
	if err != nil {
		return nil, err
	}
	return NewOpenSimplex(seed), nil
}

func decodeFractal(body string) (Generator, error) {
	// The trailing field is the wrapped generator's own encoding, which
	// contains backticks, so split off exactly the five leading fields.
	fields := strings.SplitN(body, "~", 6)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: fractal needs 6 fields, got %d", ErrMalformedState, len(fields))
	}
	octaves, err := parseDim(fields[0])
	if err != nil {
		return nil, err
	}
	frequency, err := parseFloat(fields[1])
	if err != nil {
		return nil, err
	}
	lacunarity, err := parseFloat(fields[2])
	if err != nil {
		return nil, err
	}
	persistence, err := parseFloat(fields[3])
	if err != nil {
		return nil, err
	}
	mode, err := ParseFractalMode(fields[4])
	if err != nil {
		return nil, err
	}
	src, err := Deserialize(fields[5])
	if err != nil {
		return nil, err
	}
	f, err := NewFractal(src, octaves, frequency, lacunarity, persistence, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return f, nil
}

func splitFields(body string, want int) ([]string, error) {
	fields := strings.Split(body, "~")
	if len(fields) != want {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedState, want, len(fields))
	}
	return fields, nil
}

func parseSeed(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad seed %q", ErrMalformedState, s)
	}
	return v, nil
}

func parseDim(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad integer %q", ErrMalformedState, s)
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad float %q", ErrMalformedState, s)
	}
	return v, nil
}
