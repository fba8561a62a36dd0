// Package hashing provides deterministic point hashing for integer lattice
// coordinates. The hashes drive gradient selection and value-noise corner
// weights, so they must be stable across runs, cheap, and statistically flat
// over every usable seed. No cryptographic strength is intended.
package hashing

// Per-axis multiplicative constants. Each arity gets its own set, derived
// from generalized golden-ratio sequences, so that the same coordinate fed
// to a different axis (or a different arity) lands in an unrelated bucket.
// All constants are odd, keeping the multiply a bijection on uint64.
const (
	ax2 uint64 = 0xC13FA9A902A6328F
	ay2 uint64 = 0x91E10DA5C79E7B1D

	ax3 uint64 = 0xD1B54A32D192ED03
	ay3 uint64 = 0xABC98388FB8FAC03
	az3 uint64 = 0x8CB92BA72F3D8DD7

	ax4 uint64 = 0xDB4F0B9175AE2165
	ay4 uint64 = 0xBBE0563303A4615F
	az4 uint64 = 0xA0F2EC75A1FE1575
	aw4 uint64 = 0x89E182857D9ED689

	ax5 uint64 = 0xE19B01AA9D42C633
	ay5 uint64 = 0xC6D1D6C8ED0C9631
	az5 uint64 = 0xAF36D01EF7518DBB
	aw5 uint64 = 0x9A69443F36F710E7
	au5 uint64 = 0x881403B9339BD42D

	ax6 uint64 = 0xE60E2B722B53AEEB
	ay6 uint64 = 0xCEBD76D9EDB6A8EF
	az6 uint64 = 0xB9C9AA3A51D00B65
	aw6 uint64 = 0xA6F5777F6F88983F
	au6 uint64 = 0x9609C71EB7D03F7B
	av6 uint64 = 0x86D516E50B04AB1B
)

// axisN holds the 6D constant set in axis order for variadic hashing.
var axisN = [6]uint64{ax6, ay6, az6, aw6, au6, av6}

// Mix64 finalizes a 64-bit value with a SplitMix64-style avalanche so that
// every input bit influences every output bit.
func Mix64(v uint64) uint64 {
	v ^= v >> 30
	v *= 0xBF58476D1CE4E5B9
	v ^= v >> 27
	v *= 0x94D049BB133111EB
	v ^= v >> 31
	return v
}

// Hash2 hashes a 2D lattice point with a seed. Negative coordinates are
// fine: the int64 -> uint64 conversion is a bijection and the mixing does
// not care about sign.
func Hash2(seed, x, y int64) uint64 {
	return Mix64(uint64(seed) ^ uint64(x)*ax2 ^ uint64(y)*ay2)
}

// Hash3 hashes a 3D lattice point with a seed.
func Hash3(seed, x, y, z int64) uint64 {
	return Mix64(uint64(seed) ^ uint64(x)*ax3 ^ uint64(y)*ay3 ^ uint64(z)*az3)
}

// Hash4 hashes a 4D lattice point with a seed.
func Hash4(seed, x, y, z, w int64) uint64 {
	return Mix64(uint64(seed) ^ uint64(x)*ax4 ^ uint64(y)*ay4 ^ uint64(z)*az4 ^ uint64(w)*aw4)
}

// Hash5 hashes a 5D lattice point with a seed.
func Hash5(seed, x, y, z, w, u int64) uint64 {
	return Mix64(uint64(seed) ^ uint64(x)*ax5 ^ uint64(y)*ay5 ^ uint64(z)*az5 ^ uint64(w)*aw5 ^ uint64(u)*au5)
}

// Hash6 hashes a 6D lattice point with a seed.
func Hash6(seed, x, y, z, w, u, v int64) uint64 {
	return Mix64(uint64(seed) ^ uint64(x)*ax6 ^ uint64(y)*ay6 ^ uint64(z)*az6 ^ uint64(w)*aw6 ^ uint64(u)*au6 ^ uint64(v)*av6)
}

// HashN hashes a lattice point of 1 to 6 coordinates with a seed. It uses
// the 6D constant set, so HashN(seed, x, y) and Hash2(seed, x, y) differ;
// callers should stick to one form per use site.
func HashN(seed int64, coords []int64) uint64 {
	h := uint64(seed)
	for i, c := range coords {
		h ^= uint64(c) * axisN[i]
	}
	return Mix64(h)
}

// Index2 reduces Hash2 to a gradient-table index in 0..255.
func Index2(seed, x, y int64) int {
	return int(Hash2(seed, x, y) & 255)
}

// Index3 reduces Hash3 to a gradient-table index in 0..255.
func Index3(seed, x, y, z int64) int {
	return int(Hash3(seed, x, y, z) & 255)
}

// Index4 reduces Hash4 to a gradient-table index in 0..255.
func Index4(seed, x, y, z, w int64) int {
	return int(Hash4(seed, x, y, z, w) & 255)
}

// Index5 reduces Hash5 to a gradient-table index in 0..255.
func Index5(seed, x, y, z, w, u int64) int {
	return int(Hash5(seed, x, y, z, w, u) & 255)
}

// Index6 reduces Hash6 to a gradient-table index in 0..255.
func Index6(seed, x, y, z, w, u, v int64) int {
	return int(Hash6(seed, x, y, z, w, u, v) & 255)
}
