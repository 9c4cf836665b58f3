package ndslice

import (
	"github.com/agbru/ndcore/internal/apperrors"
)

// DebugChecks toggles precondition checking (out-of-range index,
// duplicate byDim dimensions, zero stride). It defaults to false so
// release builds pay nothing; test code may set it to true. See
// spec.md §7.3 and SPEC_FULL.md §7.
var DebugChecks = false

func checkPrecond(ok bool, op, message string) {
	if DebugChecks && !ok {
		panic(&apperrors.PrecondViolation{Op: op, Message: message})
	}
}

// Slice is the central n-dimensional view: Lengths (rank N, one extent
// per dimension), Strides (present per the Kind's rules — absent for
// Contiguous, N-1 explicit for Canonical, N explicit for Universal),
// and an Iterator positioned at element (0,...,0).
//
// Rank N is not a type parameter: Go generics cannot size an array by an
// arbitrary type-parameter value, so the dimension count is carried at
// runtime as len(Lengths) (see DESIGN.md Open Question OQ-3). Kind K
// still pins, at compile time, which operations are even callable and
// whether Strides is meaningful to read.
type Slice[T any, K Kind] struct {
	Lengths []int
	Strides []int // semantics depend on K; see Contiguous, Canonical, Universal
	It      MutIterator[T]
}

// Len returns the total element count (product of Lengths); an empty
// slice (any Lengths[i] == 0) has Len() == 0.
func (s Slice[T, K]) Len() int {
	n := 1
	for _, l := range s.Lengths {
		n *= l
	}
	return n
}

// Rank returns the number of dimensions.
func (s Slice[T, K]) Rank() int { return len(s.Lengths) }

// IsEmpty reports whether any dimension has extent zero.
func (s Slice[T, K]) IsEmpty() bool {
	for _, l := range s.Lengths {
		if l == 0 {
			return true
		}
	}
	return false
}

// rowMajorStrides returns the strides this slice would have if it were
// Contiguous, regardless of K; used by Contiguous and Canonical readers
// and by reshape/pack/transpose to recover the implicit innermost
// stride.
func (s Slice[T, K]) rowMajorStrides() []int { return contiguousStrides(s.Lengths) }

// effectiveStrides materializes a full N-length stride array regardless
// of K: Contiguous synthesizes row-major strides; Canonical appends the
// implicit innermost 1; Universal returns Strides verbatim.
func (s Slice[T, K]) effectiveStrides() []int {
	var zero K
	switch any(zero).(type) {
	case Contiguous:
		return s.rowMajorStrides()
	case Canonical:
		full := make([]int, len(s.Lengths))
		copy(full, s.Strides)
		if len(s.Lengths) > 0 {
			full[len(full)-1] = 1
		}
		return full
	default: // Universal
		full := make([]int, len(s.Strides))
		copy(full, s.Strides)
		return full
	}
}

// flatOffset computes the flat element offset for a multi-index under
// this slice's effective strides.
func (s Slice[T, K]) flatOffset(idx []int) int {
	strides := s.effectiveStrides()
	off := 0
	for d, i := range idx {
		off += i * strides[d]
	}
	return off
}

// At reads the element at the given multi-index.
func (s Slice[T, K]) At(idx ...int) T {
	if DebugChecks {
		for d, i := range idx {
			checkPrecond(i >= 0 && i < s.Lengths[d], "Slice.At", "index out of range")
		}
	}
	return s.It.At(s.flatOffset(idx))
}

// AtPtr returns a mutable location for the given multi-index.
func (s Slice[T, K]) AtPtr(idx ...int) *T {
	if DebugChecks {
		for d, i := range idx {
			checkPrecond(i >= 0 && i < s.Lengths[d], "Slice.AtPtr", "index out of range")
		}
	}
	return s.It.AtPtr(s.flatOffset(idx))
}

// AtFlat reads the element at row-major flat index k by converting k to
// a multi-index and calling At (used by the concrete scenarios in
// spec.md §8 expressed as 1-d comparisons).
func (s Slice[T, K]) AtFlat(k int) T {
	return s.At(unflattenIndex(k, s.Lengths)...)
}

// Universal converts the slice to the Universal kind: a
// verification-free conversion, since a full stride array always
// exists.
func (s Slice[T, K]) Universal() Slice[T, Universal] {
	return Slice[T, Universal]{Lengths: append([]int{}, s.Lengths...), Strides: s.effectiveStrides(), It: s.It}
}

// AssumeCanonical asserts that this Universal slice's innermost stride
// is 1 and converts it to Canonical (unchecked in release, per spec.md
// §3.1; checked when DebugChecks is set).
func AssumeCanonical[T any](s Slice[T, Universal]) Slice[T, Canonical] {
	if DebugChecks && len(s.Strides) > 0 {
		checkPrecond(s.Strides[len(s.Strides)-1] == 1, "AssumeCanonical", "innermost stride must be 1")
	}
	outer := []int{}
	if len(s.Strides) > 0 {
		outer = append(outer, s.Strides[:len(s.Strides)-1]...)
	}
	return Slice[T, Canonical]{Lengths: append([]int{}, s.Lengths...), Strides: outer, It: s.It}
}

// AssumeContiguous asserts that this Canonical slice's strides are
// exactly the row-major strides implied by Lengths, and converts it to
// Contiguous (checked only when DebugChecks is set).
func AssumeContiguous[T any](s Slice[T, Canonical]) Slice[T, Contiguous] {
	if DebugChecks {
		want := contiguousStrides(s.Lengths)
		for d := 0; d < len(s.Strides); d++ {
			checkPrecond(s.Strides[d] == want[d], "AssumeContiguous", "strides must match row-major layout")
		}
	}
	return Slice[T, Contiguous]{Lengths: append([]int{}, s.Lengths...), It: s.It}
}

// CanonicalOf is a convenience composing AssumeCanonical directly from
// any kind, going through Universal first.
func CanonicalOf[T any, K Kind](s Slice[T, K]) Slice[T, Canonical] {
	return AssumeCanonical(s.Universal())
}

// ContiguousOf composes AssumeContiguous directly from any kind.
func ContiguousOf[T any, K Kind](s Slice[T, K]) Slice[T, Contiguous] {
	return AssumeContiguous(CanonicalOf(s))
}

// NewContiguous builds a Contiguous slice over owned or borrowed
// backing storage. len(data) must equal the product of lengths.
func NewContiguous[T any](lengths []int, data []T) Slice[T, Contiguous] {
	return Slice[T, Contiguous]{
		Lengths: append([]int{}, lengths...),
		It:      PointerIterator[T]{Data: data, Offset: 0},
	}
}
