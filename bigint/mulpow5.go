package bigint

// pow5Chunk is the largest power of 5 that fits in a Word: 5^27. It is the
// chunk size mulPow5 processes k in, so the vast majority of the work is
// done with single-word multiplications regardless of how large k is.
const (
	pow5ChunkExp = 27
	pow5Chunk    Word = 7450580596923828125 // 5^27
)

// pow5 tables 5^0..5^27 so mulPow5 never recomputes a chunk's factor.
var pow5Table = func() [pow5ChunkExp + 1]Word {
	var t [pow5ChunkExp + 1]Word
	t[0] = 1
	for i := 1; i <= pow5ChunkExp; i++ {
		t[i] = t[i-1] * 5
	}
	return t
}()

// MulPow5 multiplies b in place by 5^k, processing k in chunks of the
// largest n such that 5^n fits in a Word (27, for a 64-bit Word). It
// returns true iff some chunk produced a carry that did not fit within
// b's capacity — i.e. precision was lost.
//
// Whether that loss should instead propagate per-chunk like the other
// mul operations, or stay silently-absorbed the way left-shift drops
// high bits, is spec.md §9's open question; this implementation reports
// it (returns true) rather than staying silent, since mulPow5 callers
// (decimal<->binary conversion) need to know capacity was exceeded. See
// DESIGN.md OQ-2.
func (b *BigInt) MulPow5(k uint) (overflowed bool) {
	remaining := k
	for remaining > 0 {
		n := uint(pow5ChunkExp)
		if remaining < n {
			n = remaining
		}
		factor := pow5Table[n]
		carry := b.MulAssign(factor, 0)
		if carry != 0 {
			overflowed = true
		}
		remaining -= n
	}
	return overflowed
}
