// Package scan implements the branch-light bitmask algebra and 64-byte
// block classifier that make up the structural scanner of a zone-file
// lexer: prefix-XOR toggles, escape-run classification, and the
// position tape indexer. Nothing in this package knows about files,
// records, or grouping — it operates purely on byte slices and the
// uint64 masks derived from them, one block at a time.
package scan

import "math/bits"

// BlockSize is the number of input bytes classified per scan, matching
// one 64-bit mask lane.
const BlockSize = 64

// PrefixXOR returns y where y_i = x_0 ^ x_1 ^ ... ^ x_i. Used to turn a
// mask of toggle-positions (opening/closing delimiters) into a mask of
// the region those toggles bound.
func PrefixXOR(x uint64) uint64 {
	// multiplying by the all-ones mask computes the running XOR in
	// carry-less arithmetic; Go doesn't expose carry-less multiply, so
	// fall back to the standard doubling trick instead.
	x ^= x << 1
	x ^= x << 2
	x ^= x << 4
	x ^= x << 8
	x ^= x << 16
	x ^= x << 32
	return x
}

// Follows returns match shifted up by one bit, with carry filling the
// vacated low bit, and updates carry to the bit that fell off the top.
// Used to compute "this position is preceded by a contiguous byte".
func Follows(match uint64, carry *uint64) uint64 {
	result := match<<1 | *carry
	*carry = match >> 63
	return result
}

// AddOverflow returns a+b and reports whether the addition overflowed
// a uint64, i.e. the carry out of bit 63.
func AddOverflow(a, b uint64) (sum uint64, carry uint64) {
	sum, c := bits.Add64(a, b, 0)
	return sum, c
}

// CountOnes returns the population count of x.
func CountOnes(x uint64) int {
	return bits.OnesCount64(x)
}

// TrailingZeroes returns the index of the lowest set bit of x, or 64
// if x is zero.
func TrailingZeroes(x uint64) int {
	return bits.TrailingZeros64(x)
}

// ClearLowestBit returns x with its lowest set bit cleared.
func ClearLowestBit(x uint64) uint64 {
	return x & (x - 1)
}

// LowestBit isolates the lowest set bit of x (0 if x is 0).
func LowestBit(x uint64) uint64 {
	return x & -x
}
