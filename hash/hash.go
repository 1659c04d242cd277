// Package hash implements the fast modular hash used to draw reproducible
// initial weights for the network.
package hash

// Hash mixes n with the salt s and reduces the result into the range 0 to max-1.
func Hash(n uint32, s uint32, max uint32) uint32 {
	// mixing stage, mix input with salt using subtraction
	var m = uint32(n) - uint32(s)

	// hashing stage, use xor shift with prime coefficients
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	// mixing stage 2, mix input with salt using addition
	m += s

	// multiply shift instead of modulo, see
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	return uint32((uint64(m) * uint64(max)) >> 32)
}

// unit is the resolution of Float, 24 bits fit exactly in a float64 mantissa
const unit = 1 << 24

// Float hashes n with the salt s into a uniform value in [0, 1).
func Float(n uint32, s uint32) float64 {
	// a second round spreads consecutive n over the high bits
	var m = Hash(Hash(n, s, 0xffffffff), n^s, unit)
	return float64(m) / unit
}
