// Package noise provides procedural continuous-noise generators for
// tile-based and turn-based games.
//
// # Overview
//
// noise is a pure computational library: it has no goroutines, I/O, or
// global mutable state beyond immutable lookup tables. Map generators and
// renderers feed it coordinates and read back floats in [-1, 1].
//
// Four engine families are built in:
//   - Simplex: gradient noise on a simplex lattice, 2 to 6 dimensions,
//     available both as stateless package functions and as a seeded
//     [Simplex] instance.
//   - [Value]: interpolated lattice-hash noise, 2 to 6 dimensions.
//   - [Phantom]: layered, domain-warped value noise projected through the
//     vertices of a regular simplex, 2 to 6 dimensions.
//   - Adapters: [Perlin] and [OpenSimplex] wrap the aquilax/go-perlin and
//     ojrac/opensimplex-go libraries behind the same [Generator] contract.
//
// [Fractal] composes any engine into octave noise (FBM, billow, ridged).
//
// # Quick Start
//
//	g, err := noise.NewPhantom(3, 12345)
//	if err != nil {
//		// dimension out of range
//	}
//	v, err := g.Noise(0.1, 0.2, 0.3) // v is in [-1, 1]
//
// # Determinism
//
// Every generator is deterministic: the same engine, seed, and coordinates
// always produce the same float, and Serialize/Deserialize round-trips
// enough state to reproduce identical future output.
//
// # Concurrency
//
// The stateless Simplex2D..Simplex6D functions and the shared gradient
// tables are safe for concurrent use. Value and Phantom instances reuse
// internal scratch buffers between calls and must not be shared between
// goroutines without external synchronization; use Clone to give each
// goroutine its own instance.
//
// # Related packages
//
//   - render: rasterizes a generator into images.
//   - preset: YAML presets describing configured generators.
//   - grid: small fixed-arity point types for collaborator code.
package noise
