package bigint

import "math"

// ToUint64 returns b's magnitude as a uint64 and whether it fit (b's
// magnitude must occupy at most one word and b must be non-negative).
func (b *BigInt) ToUint64() (v uint64, exact bool) {
	if b.sign || b.length > 1 {
		if b.length > 1 {
			return 0, false
		}
		if b.sign {
			return 0, false
		}
	}
	if b.length == 0 {
		return 0, true
	}
	return uint64(b.data[0]), true
}

// ToInt64 returns b's value as an int64 and whether it fit.
func (b *BigInt) ToInt64() (v int64, exact bool) {
	mag, ok := b.ToUint64()
	if !ok {
		return 0, false
	}
	if b.sign {
		if mag > 1<<63 {
			return 0, false
		}
		return -int64(mag), true
	}
	if mag > math.MaxInt64 {
		return 0, false
	}
	return int64(mag), true
}

// ToFloat64 converts b to the nearest representable float64, scanning
// coefficients most-significant-word-first and packing the top 53
// significant bits into the mantissa with round-to-nearest-even, the
// same rounding discipline the library's decimal<->binary float
// collaborators rely on (spec.md §4.5).
func (b *BigInt) ToFloat64() float64 {
	if b.length == 0 {
		return 0
	}
	bitLen := b.bitLen()
	const mantissaBits = 53

	// Collect the top mantissaBits bits as an integer, plus whether any
	// bit below the round bit is non-zero (for round-to-even).
	shift := bitLen - mantissaBits
	var mantissa uint64
	var stickyBits bool
	if shift <= 0 {
		v, _ := b.ToUint64()
		_ = v
		mantissa = uint64(b.lowBitsAsUint())
		shift = 0
	} else {
		mantissa, _ = b.bitsAt(shift, mantissaBits)
		_, stickyBits = b.bitsAt(shift-1, 0)
	}

	// Round to even on a tie.
	if shift > 0 {
		roundBit, hasRoundBit := b.bitAt(shift - 1)
		if hasRoundBit && roundBit {
			if stickyBits || mantissa&1 == 1 {
				mantissa++
				if mantissa>>mantissaBits != 0 {
					mantissa >>= 1
					shift++
				}
			}
		}
	}

	f := float64(mantissa) * math.Pow(2, float64(shift))
	if b.sign {
		f = -f
	}
	return f
}

// lowBitsAsUint returns the whole magnitude as a uint64 when it fits in
// mantissaBits or fewer bits (only called when bitLen <= 53).
func (b *BigInt) lowBitsAsUint() uint64 {
	if b.length == 0 {
		return 0
	}
	return uint64(b.data[0])
}

// bitAt returns the bit at absolute position pos (0 = least significant).
func (b *BigInt) bitAt(pos int) (bit bool, inRange bool) {
	word := pos / WordBits
	if word >= b.length {
		return false, false
	}
	return (b.data[word]>>(uint(pos)%WordBits))&1 == 1, true
}

// bitsAt extracts `count` bits starting at absolute bit position `from`
// (from is the position of the least significant bit to extract) and
// reports whether any bits below `from` were non-zero (sticky, for
// rounding).
func (b *BigInt) bitsAt(from, count int) (value uint64, sticky bool) {
	for i := 0; i < from; i++ {
		if bit, ok := b.bitAt(i); ok && bit {
			sticky = true
			break
		}
	}
	for i := 0; i < count; i++ {
		if bit, ok := b.bitAt(from + i); ok && bit {
			value |= 1 << uint(i)
		}
	}
	return value, sticky
}
