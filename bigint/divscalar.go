package bigint

import "math/bits"

// DivAssign divides b in place by rhs, performing schoolbook long
// division from the most significant word down, seeded by an optional
// upper overflow (the remainder carried in from a wider division this
// word-chunk is part of). The precondition is overflow < rhs; it is the
// caller's responsibility (violating it is a precondition error per the
// spec's error taxonomy, not reported here). It returns the final
// remainder.
func (b *BigInt) DivAssign(rhs Word, overflow Word) (remainder Word) {
	rem := overflow
	for i := b.length - 1; i >= 0; i-- {
		var q uint64
		q, rem = bits.Div64(uint64(rem), uint64(b.data[i]), uint64(rhs))
		b.data[i] = Word(q)
	}
	b.normalize()
	return rem
}
