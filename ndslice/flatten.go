package ndslice

// Stride composes a stride multiplier across every dimension: each
// stride is multiplied by factor and each length becomes
// ceil(length/factor). Matches spec.md §8 scenario 6:
// iota(4,6).stride(2) == [[0,2,4],[12,14,16]].
func Stride[T any, K Kind](s Slice[T, K], factor int) Slice[T, Universal] {
	checkPrecond(factor != 0, "Stride", "factor must be non-zero")
	u := s.Universal()
	n := len(u.Lengths)
	lengths := make([]int, n)
	strides := make([]int, n)
	for d := 0; d < n; d++ {
		lengths[d] = (u.Lengths[d] + factor - 1) / factor
		strides[d] = u.Strides[d] * factor
	}
	return Slice[T, Universal]{Lengths: lengths, Strides: strides, It: u.It}
}

// Retro reverses iteration along every dimension: it advances the
// iterator to the last element and wraps it in a RetroIterator. Double
// Retro cancels, since RetroIterator's base is unwrapped rather than
// doubly wrapped when the input is already retro'd.
func Retro[T any, K Kind](s Slice[T, K]) Slice[T, Universal] {
	u := s.Universal()
	n := len(u.Lengths)
	lastIdx := make([]int, n)
	for d := 0; d < n; d++ {
		if u.Lengths[d] > 0 {
			lastIdx[d] = u.Lengths[d] - 1
		}
	}
	lastOffset := u.flatOffset(lastIdx)
	if r, ok := u.It.(RetroIterator[T]); ok {
		// Double-retro cancels: unwrap back toward the original cursor,
		// shifted to this call's element 0.
		return Slice[T, Universal]{Lengths: u.Lengths, Strides: u.Strides, It: shiftIterator[T]{Base: r.Base, Base0: -lastOffset}}
	}
	return Slice[T, Universal]{
		Lengths: u.Lengths,
		Strides: u.Strides,
		It:      RetroIterator[T]{Base: shiftIterator[T]{Base: u.It, Base0: lastOffset}},
	}
}

// DropBorders removes one element from both ends along every
// dimension.
func DropBorders[T any, K Kind](s Slice[T, K]) Slice[T, Universal] {
	u := s.Universal()
	n := len(u.Lengths)
	lengths := make([]int, n)
	for d := 0; d < n; d++ {
		l := u.Lengths[d] - 2
		if l < 0 {
			l = 0
		}
		lengths[d] = l
	}
	one := make([]int, n)
	for d := range one {
		one[d] = 1
	}
	offset := u.flatOffset(one)
	return Slice[T, Universal]{Lengths: lengths, Strides: u.Strides, It: shiftIterator[T]{Base: u.It, Base0: offset}}
}

// flattenedIterator maps each flat index back to a multi-index of Src, so
// a non-contiguous slice can be read as a 1-d view without copying.
type flattenedIterator[T any] struct {
	Src Slice[T, Universal]
}

func (f flattenedIterator[T]) At(k int) T     { return f.Src.At(unflattenIndex(k, f.Src.Lengths)...) }
func (f flattenedIterator[T]) AtPtr(k int) *T { return f.Src.AtPtr(unflattenIndex(k, f.Src.Lengths)...) }

// Flattened produces a 1-d view over a (generally non-Contiguous)
// slice, recomputing the multi-index of the source for every flat index
// read. Calling Flattened on an already-Contiguous slice is legal
// but redundant, since PointerIterator already gives a flat view.
func Flattened[T any, K Kind](s Slice[T, K]) Slice[T, Universal] {
	u := s.Universal()
	return Slice[T, Universal]{
		Lengths: []int{u.Len()},
		Strides: []int{1},
		It:      flattenedIterator[T]{Src: u},
	}
}

// SubRange returns the contiguous-in-flat-index subrange [lo, hi) of a
// 1-d flattened slice; used by ChopIterator.
func (s Slice[T, K]) SubRange(lo, hi int) Slice[T, Universal] {
	checkPrecond(len(s.Lengths) == 1, "SubRange", "only defined on a 1-d slice")
	step := 1
	if len(s.Strides) == 1 {
		step = s.Strides[0]
	}
	return Slice[T, Universal]{
		Lengths: []int{hi - lo},
		Strides: []int{step},
		It:      shiftIterator[T]{Base: s.It, Base0: lo * step},
	}
}
