package ndslice

import "github.com/agbru/ndcore/internal/apperrors"

// Map constructs a slice whose iterator lazily applies fn to each
// element read through the base. fn must be pure with respect to the
// library's contract (no observable side effects on the backing
// store). Same Lengths and Strides as the source's Universal view; the
// iterator and element type change, and the result always reports
// itself as Universal (a MapIterator carries no mutable location,
// which rules out AssumeContiguous/AssumeCanonical on it without an
// explicit, caller-asserted re-wrap).
func Map[T, R any, K Kind](s Slice[T, K], fn func(T) R) Slice[R, Universal] {
	u := s.Universal()
	return Slice[R, Universal]{
		Lengths: u.Lengths,
		Strides: u.Strides,
		It:      roIterator[R]{Iterator: MapIterator[T, R]{Base: u.It, Fn: fn}},
	}
}

// Callable is a value-typed closure object, letting Vmap take a
// stateful functor without erasing it behind a func value.
type Callable[T, R any] interface {
	Call(T) R
}

// Vmap is identical to Map but takes a Callable instead of a bare func,
// matching spec.md §4.4's "value-typed callable (object with state)".
func Vmap[T, R any, K Kind](s Slice[T, K], c Callable[T, R]) Slice[R, Universal] {
	return Map(s, c.Call)
}

// roIterator adapts a read-only Iterator[T] to satisfy MutIterator[T]
// for slices (Map's output) that have no addressable backing cell;
// AtPtr panics, since writing through a lazily-computed value is
// undefined. Reads never call it.
type roIterator[T any] struct {
	Iterator[T]
}

func (r roIterator[T]) AtPtr(k int) *T {
	panic(&apperrors.PrecondViolation{Op: "Map", Message: "cannot write through a lazily computed element"})
}

// Zip requires identical Lengths for all inputs and yields a slice
// whose element at flat index k is the []T tuple of each operand's
// k'th element in row-major order. Each operand is independently
// flattened first (see Flattened), since operands may carry different
// strides of their own — a shared raw offset would otherwise only be
// valid for one operand's stride pattern.
func Zip[T any, K Kind](operands ...Slice[T, K]) (Slice[[]T, Universal], error) {
	if len(operands) == 0 {
		return Slice[[]T, Universal]{}, nil
	}
	lengths := operands[0].Lengths
	all := make([][]int, len(operands))
	for i, op := range operands {
		all[i] = op.Lengths
		if !sameLengths(op.Lengths, lengths) {
			return Slice[[]T, Universal]{}, &apperrors.ZipLengthMismatchError{Lengths: all}
		}
	}
	iters := make([]Iterator[T], len(operands))
	for i, op := range operands {
		iters[i] = Flattened(op).It
	}
	return Slice[[]T, Universal]{
		Lengths: append([]int{}, lengths...),
		Strides: contiguousStrides(lengths),
		It:      roIterator[[]T]{Iterator: ZipIterator[T]{Iters: iters}},
	}, nil
}

// Zip2 zips two slices of possibly different element types into a
// Pair-valued slice, flattening each operand independently for the
// same reason as Zip.
func Zip2[A, B any, KA, KB Kind](a Slice[A, KA], b Slice[B, KB]) (Slice[Pair[A, B], Universal], error) {
	if !sameLengths(a.Lengths, b.Lengths) {
		return Slice[Pair[A, B], Universal]{}, &apperrors.ZipLengthMismatchError{Lengths: [][]int{a.Lengths, b.Lengths}}
	}
	fa, fb := Flattened(a), Flattened(b)
	return Slice[Pair[A, B], Universal]{
		Lengths: append([]int{}, a.Lengths...),
		Strides: contiguousStrides(a.Lengths),
		It:      roIterator[Pair[A, B]]{Iterator: Zip2Iterator[A, B]{A: fa.It, B: fb.It}},
	}, nil
}

// UnzipFirst recovers the operand-th input (0 for the first) from a
// homogeneous Zip result.
func UnzipFirst[T any](z Slice[[]T, Universal], operand int) Slice[T, Universal] {
	return Map(z, func(tuple []T) T { return tuple[operand] })
}

func sameLengths(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Cached is a triple view: on read of flat index k, if Flags[k] == 0 it
// computes Cache[k] = Original[k] and sets Flags[k] = 1, otherwise
// returns the cached value. On write, both Cache and Flags are set.
// Per spec.md §5, concurrent first-accesses to the same index are
// undefined; callers serialize. Cached indexes Cache/Flags by the same
// compact flat index it receives, so it must wrap a source whose
// iterator already addresses a dense [0, Len) range — NewCachedSlice
// enforces this by flattening the source first.
type Cached[T any] struct {
	Original Iterator[T]
	Cache    []T
	Flags    []uint8
}

func (c *Cached[T]) At(k int) T {
	if c.Flags[k] == 0 {
		c.Cache[k] = c.Original.At(k)
		c.Flags[k] = 1
	}
	return c.Cache[k]
}

func (c *Cached[T]) AtPtr(k int) *T {
	if c.Flags[k] == 0 {
		c.Cache[k] = c.Original.At(k)
		c.Flags[k] = 1
	}
	return &c.Cache[k]
}

// NewCachedSlice wraps source in a Cached view with freshly allocated
// cache/flags storage. The source is flattened first so Cached's flat
// index always ranges densely over [0, Len), regardless of the
// source's Kind or stride pattern.
func NewCachedSlice[T any, K Kind](s Slice[T, K]) Slice[T, Universal] {
	flat := Flattened(s)
	n := flat.Len()
	return Slice[T, Universal]{
		Lengths: []int{n},
		Strides: []int{1},
		It:      &Cached[T]{Original: flat.It, Cache: make([]T, n), Flags: make([]uint8, n)},
	}
}
