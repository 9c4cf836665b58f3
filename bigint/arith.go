// This file provides the portable word-vector arithmetic primitives that
// every higher-level BigInt operation is built from. Names and signatures
// are grounded on math/big's internal vector routines (the same ones the
// teacher's internal/bigfft package borrowed via go:linkname) but are
// reimplemented here in plain Go: this module's BigInt is a from-scratch
// type, not a wrapper around math/big, so it earns its own primitives
// rather than reaching into another package's internals.
package bigint

import "math/bits"

// addVV computes z[i] = x[i] + y[i] for all i, propagating carry, and
// returns the final carry-out. len(z) == len(x) == len(y) is required.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		var cc uint64
		z[i], cc = bits.Add64(x[i], y[i], c)
		c = Word(cc)
	}
	return c
}

// subVV computes z[i] = x[i] - y[i] for all i, propagating borrow, and
// returns the final borrow-out.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		var cc uint64
		z[i], cc = bits.Sub64(x[i], y[i], c)
		c = Word(cc)
	}
	return c
}

// shlVU computes z = x << s (0 <= s < WordBits) and returns the bits
// shifted out of the top.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	for i := 0; i < len(x); i++ {
		w := x[i]
		z[i] = w<<s | c
		c = w >> (WordBits - s)
	}
	return c
}

// shrVU computes z = x >> s (0 <= s < WordBits) and returns the bits
// shifted out of the bottom (left-aligned in the returned word, i.e. the
// high s bits of the result hold the shifted-out bits — mirrors shlVU's
// symmetry and is unused by ShrAssign directly but kept for completeness).
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	for i := len(x) - 1; i >= 0; i-- {
		w := x[i]
		z[i] = w>>s | c
		c = w << (WordBits - s)
	}
	return c
}

// mulAddVWW computes z = x*y + r element-wise (z[i] = low64(x[i]*y) plus
// carry, with r seeding the carry chain) and returns the final carry-out.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range x {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		lo, cc = bits.Add64(lo, c, 0)
		z[i] = lo
		c = hi + Word(cc)
	}
	return c
}

// ucmp compares two unsigned magnitudes given as little-endian word slices,
// tolerating differing lengths and trailing zero words.
func ucmp(a, b []Word) int {
	na, nb := View{Coefficients: a}.trimmedLen(), View{Coefficients: b}.trimmedLen()
	if na != nb {
		if na < nb {
			return -1
		}
		return 1
	}
	for i := na - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
