// Package bigint implements a fixed-capacity, stack-friendly arbitrary
// precision signed integer.
//
// Unlike math/big.Int, a BigInt never grows past the capacity it was
// constructed with: the widening mutators report overflow instead of
// reallocating (MulAssign returns the overflow word, MulPow5 and
// CheckedShlAssign return a flag), while ShlAssign discards the bits
// shifted past capacity. This
// mirrors how a systems language would express "K machine words of storage,
// known at compile time" — Go's generics cannot parameterize an array
// length by an arbitrary type parameter, so BigInt instead carries one
// generously sized backing array (MaxWords) and a runtime logical capacity
// no larger than it. See DESIGN.md, Open Question OQ-1.
package bigint

import "math/bits"

// Word is a single machine word of a BigInt's magnitude.
type Word = uint64

// WordBits is the number of bits in a Word.
const WordBits = bits.UintSize

// MaxWords bounds every BigInt's backing array. It is sized generously
// (4096 bits) so that the common capacity presets in internal/config all
// fit inside a single, non-generic, stack-sized struct.
const MaxWords = 64

// Common capacity presets, expressed in words. A BigInt constructed with
// one of these is guaranteed to never need more than MaxWords of backing
// storage.
const (
	Words4  = 4  // 256 bits
	Words8  = 8  // 512 bits
	Words16 = 16 // 1024 bits
	Words32 = 32 // 2048 bits
	Words64 = 64 // 4096 bits
)

// BigInt is a fixed-capacity signed arbitrary precision integer.
//
// The zero value is not ready to use: call New or one of the From*
// constructors, which establish the logical capacity.
type BigInt struct {
	sign     bool // true = negative
	length   int  // number of active words, 0..capacity
	capacity int  // logical capacity in words, <= MaxWords
	data     [MaxWords]Word
}

// New returns a zero-valued BigInt with the given logical capacity, in
// words. It panics if capacity is not in [1, MaxWords]; capacity is a
// construction-time contract, not something a caller recovers from.
func New(capacity int) *BigInt {
	if capacity <= 0 || capacity > MaxWords {
		panic("bigint: capacity out of range")
	}
	return &BigInt{capacity: capacity}
}

// Capacity returns the logical word capacity this BigInt was constructed
// with.
func (b *BigInt) Capacity() int { return b.capacity }

// Length returns the number of active (non-implicit-zero) words.
func (b *BigInt) Length() int { return b.length }

// Sign returns -1, 0, or +1 according to the value's sign.
func (b *BigInt) Sign() int {
	if b.length == 0 {
		return 0
	}
	if b.sign {
		return -1
	}
	return 1
}

// IsZero reports whether the value is zero.
func (b *BigInt) IsZero() bool { return b.length == 0 }

// Words returns the active coefficient words, least-significant first.
// The returned slice aliases the BigInt's backing array and must not be
// retained past the next mutation.
func (b *BigInt) Words() []Word { return b.data[:b.length] }

// View returns a borrowed (coefficients, sign) pair over this BigInt's
// storage, for use with the free functions that operate on two views
// (Add, Sub, Cmp).
func (b *BigInt) View() View { return View{Coefficients: b.data[:b.length], Negative: b.sign} }

// normalize restores the "most significant stored word is non-zero"
// invariant, and forces sign=false when the value is zero. Every public
// mutator ends by calling this.
func (b *BigInt) normalize() {
	for b.length > 0 && b.data[b.length-1] == 0 {
		b.length--
	}
	if b.length == 0 {
		b.sign = false
	}
}

// SetUint64 stores v's magnitude with a positive sign (opAssign(scalar)).
func (b *BigInt) SetUint64(v uint64) *BigInt {
	b.sign = false
	if v == 0 {
		b.length = 0
		return b
	}
	b.data[0] = Word(v)
	b.length = 1
	b.normalize()
	return b
}

// SetInt64 stores v's magnitude and sign (opAssign(scalar)).
func (b *BigInt) SetInt64(v int64) *BigInt {
	neg := v < 0
	var mag uint64
	if neg {
		// avoid overflow on MinInt64
		mag = uint64(-(v + 1)) + 1
	} else {
		mag = uint64(v)
	}
	b.SetUint64(mag)
	if !b.IsZero() {
		b.sign = neg
	}
	return b
}

// SetWords loads a pre-built little-endian word array as this BigInt's
// magnitude, truncating (and reporting) whatever does not fit in capacity.
// It returns the number of high words that were dropped.
func (b *BigInt) SetWords(words []Word, negative bool) (dropped int) {
	n := len(words)
	if n > b.capacity {
		dropped = n - b.capacity
		words = words[:b.capacity]
		n = b.capacity
	}
	copy(b.data[:n], words)
	for i := n; i < b.capacity; i++ {
		b.data[i] = 0
	}
	b.length = n
	b.sign = negative
	b.normalize()
	return dropped
}

// Copy sets b to a copy of src's value, truncating if src's active length
// exceeds b's capacity (dropped is the number of discarded high words).
func (b *BigInt) Copy(src *BigInt) (dropped int) {
	return b.SetWords(src.data[:src.length], src.sign)
}

// Clone allocates a new BigInt with the same capacity and value as b.
func (b *BigInt) Clone() *BigInt {
	c := New(b.capacity)
	c.Copy(b)
	return c
}

// Cmp compares the magnitudes-and-signs of a and b (a<b: -1, a==b: 0, a>b: 1).
func Cmp(a, b View) int {
	if a.Negative != b.Negative {
		if a.isZeroView() && b.isZeroView() {
			return 0
		}
		if a.Negative {
			return -1
		}
		return 1
	}
	c := ucmp(a.Coefficients, b.Coefficients)
	if a.Negative {
		return -c
	}
	return c
}

// Cmp compares b against another BigInt's value.
func (b *BigInt) Cmp(other *BigInt) int {
	return Cmp(b.View(), other.View())
}
