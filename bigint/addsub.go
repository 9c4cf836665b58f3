package bigint

import "math/bits"

// Add sets dst to a + b (both signed views), aligning operand lengths by
// zero-extending the shorter one, and reports whether the magnitude
// carry-out did not fit in dst's capacity. dst's previous value is
// discarded.
//
// Per the spec: "Result sign is whatever the view subroutine reports;
// overflow (true) is returned when a carry-out cannot be stored."
func (dst *BigInt) Add(a, b View) (overflow bool) {
	if a.Negative == b.Negative {
		mag, carry := uadd(a.Coefficients, b.Coefficients)
		return dst.storeMagnitude(mag, carry, a.Negative)
	}
	return dst.signedSubtract(a, b)
}

// Sub sets dst to a - b (both signed views) and reports overflow the same
// way Add does.
func (dst *BigInt) Sub(a, b View) (overflow bool) {
	return dst.Add(a, View{Coefficients: b.Coefficients, Negative: !b.Negative})
}

// signedSubtract handles the a+b case where a and b have opposite signs,
// i.e. a true magnitude subtraction: the result's sign follows whichever
// operand has the larger magnitude.
func (dst *BigInt) signedSubtract(a, b View) (overflow bool) {
	switch ucmp(a.Coefficients, b.Coefficients) {
	case 0:
		dst.length = 0
		dst.sign = false
		return false
	case 1:
		mag := usub(a.Coefficients, b.Coefficients)
		return dst.storeMagnitude(mag, 0, a.Negative)
	default:
		mag := usub(b.Coefficients, a.Coefficients)
		return dst.storeMagnitude(mag, 0, b.Negative)
	}
}

// uadd adds two unsigned magnitudes of possibly differing length and
// returns the (unnormalized, possibly longer-than-either-input) result
// plus any final carry word.
func uadd(a, b []Word) ([]Word, Word) {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]Word, len(a))
	c := addVV(z[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = propagateCarry(z[len(b):], a[len(b):], c)
	}
	return z, c
}

// usub subtracts the smaller-or-equal magnitude b from a (len(a) must
// represent a value >= b's) and returns the unnormalized result.
func usub(a, b []Word) []Word {
	if len(a) < len(b) {
		b = b[:len(a)]
	}
	z := make([]Word, len(a))
	c := subVV(z[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = propagateBorrow(z[len(b):], a[len(b):], c)
	}
	_ = c // usub's caller already knows a >= b, so the final borrow must be 0
	return z
}

func propagateCarry(z, x []Word, c Word) Word {
	for i := range x {
		var cc uint64
		z[i], cc = bits.Add64(x[i], c, 0)
		c = Word(cc)
	}
	return c
}

func propagateBorrow(z, x []Word, c Word) Word {
	for i := range x {
		var cc uint64
		z[i], cc = bits.Sub64(x[i], c, 0)
		c = Word(cc)
	}
	return c
}

// storeMagnitude writes an unsigned magnitude (with an optional extra
// high carry word) into dst, truncated to dst's capacity, and reports
// overflow when the true result does not fit.
func (dst *BigInt) storeMagnitude(mag []Word, carry Word, negative bool) (overflow bool) {
	full := mag
	if carry != 0 {
		full = append(append([]Word{}, mag...), carry)
	}
	trimmed := View{Coefficients: full}.trimmedLen()
	full = full[:trimmed]
	if len(full) > dst.capacity {
		overflow = true
		full = full[:dst.capacity]
	}
	dst.SetWords(full, negative)
	return overflow
}
