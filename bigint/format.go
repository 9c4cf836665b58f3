package bigint

import "math/bits"

// pow10Chunk is the largest power of 10 that fits in a Word (10^19 for a
// 64-bit Word); FormatDecimal repeatedly divides by it to peel off
// decimal digits 19 at a time rather than one at a time.
const (
	pow10ChunkDigits = 19
	pow10Chunk  Word = 10000000000000000000 // 10^19
)

// String formats b in decimal: `[-]?[0-9]+`, no leading zeros except for
// the value "0".
func (b *BigInt) String() string {
	return FormatDecimal(b.View())
}

// ToHexString formats b in hexadecimal (no "0x" prefix); upper selects
// A-F vs a-f.
func (b *BigInt) ToHexString(upper bool) string {
	return FormatHex(b.View(), upper)
}

// ToBinaryString formats b in binary (no "0b" prefix).
func (b *BigInt) ToBinaryString() string {
	return FormatBinary(b.View())
}

// FormatDecimal formats a view in decimal. The buffer is sized to
// ceil(log10(2) * WordBits * len(coefficients)) + 1 for the sign, matching
// spec.md §4.5's bound, then filled from the end backwards as digits are
// produced least-significant-chunk-first.
func FormatDecimal(v View) string {
	n := v.trimmedLen()
	if n == 0 {
		return "0"
	}
	work := make([]Word, n)
	copy(work, v.Coefficients[:n])

	bound := decimalDigitBound(n)
	buf := make([]byte, bound)
	pos := bound

	for !allZero(work) {
		rem := divWordsBy(work, pow10Chunk)
		work = trimWords(work)
		// A chunk is zero-padded to 19 digits unless it is the final
		// (most significant) chunk, i.e. nothing nonzero remains above it.
		chunkDigits := formatChunk(rem, !allZero(work))
		pos -= len(chunkDigits)
		copy(buf[pos:], chunkDigits)
	}

	if v.Negative {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// decimalDigitBound implements spec.md §4.5's buffer-size formula:
// ceil(log10(2) * word_bits * capacity) + 1 for the sign.
func decimalDigitBound(words int) int {
	// log10(2) ~= 0.30103; scaled by 100000 to stay in integer math.
	const log10_2x1e5 = 30103
	bits := words * WordBits
	digits := (bits*log10_2x1e5 + 99999) / 100000
	return digits + 1
}

// formatChunk renders rem as decimal digits, zero-padded to
// pow10ChunkDigits when more (higher) chunks remain, or unpadded when
// it's the most-significant chunk.
func formatChunk(rem Word, padded bool) []byte {
	var tmp [pow10ChunkDigits]byte
	i := pow10ChunkDigits
	for rem > 0 {
		i--
		tmp[i] = byte('0' + rem%10)
		rem /= 10
	}
	if padded {
		for i > 0 {
			i--
			tmp[i] = '0'
		}
		return tmp[:]
	}
	if i == pow10ChunkDigits {
		return []byte{'0'}
	}
	return tmp[i:]
}

// divWordsBy divides the multi-word value in place by a single word and
// returns the remainder, from the most-significant word down.
func divWordsBy(words []Word, by Word) Word {
	var rem Word
	for i := len(words) - 1; i >= 0; i-- {
		var q uint64
		q, rem = bits.Div64(uint64(rem), uint64(words[i]), uint64(by))
		words[i] = Word(q)
	}
	return rem
}

func allZero(words []Word) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

const hexDigits = "0123456789abcdef"
const hexDigitsUpper = "0123456789ABCDEF"

// FormatHex formats a view in hexadecimal, most-significant nibble first,
// with no leading zero nibbles (except the value "0").
func FormatHex(v View, upper bool) string {
	n := v.trimmedLen()
	if n == 0 {
		return "0"
	}
	digits := hexDigits
	if upper {
		digits = hexDigitsUpper
	}
	buf := make([]byte, 0, n*16+1)
	if v.Negative {
		buf = append(buf, '-')
	}
	started := false
	for i := n - 1; i >= 0; i-- {
		w := v.Coefficients[i]
		for shift := WordBits - 4; shift >= 0; shift -= 4 {
			nibble := (w >> uint(shift)) & 0xF
			if !started && nibble == 0 {
				continue
			}
			started = true
			buf = append(buf, digits[nibble])
		}
	}
	return string(buf)
}

// FormatBinary formats a view in binary, most-significant bit first, with
// no leading zero bits (except the value "0").
func FormatBinary(v View) string {
	n := v.trimmedLen()
	if n == 0 {
		return "0"
	}
	buf := make([]byte, 0, n*WordBits+1)
	if v.Negative {
		buf = append(buf, '-')
	}
	started := false
	for i := n - 1; i >= 0; i-- {
		w := v.Coefficients[i]
		for shift := WordBits - 1; shift >= 0; shift-- {
			bit := (w >> uint(shift)) & 1
			if !started && bit == 0 {
				continue
			}
			started = true
			buf = append(buf, byte('0'+bit))
		}
	}
	return string(buf)
}
