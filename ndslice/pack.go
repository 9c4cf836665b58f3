package ndslice

// PackIterator synthesizes an inner Slice on each read rather than
// materializing one; it is the cursor behind Pack/Ipack, matching
// spec.md §9's "slice-of-slices as iterator, not allocation".
type PackIterator[T any, IK Kind] struct {
	Base         MutIterator[T]
	OuterLengths []int
	OuterStrides []int
	InnerLengths []int
	InnerStrides []int // ignored when IK is Contiguous
}

func (p PackIterator[T, IK]) At(k int) Slice[T, IK] {
	// k is already the outer element's offset: Slice.At applies the
	// outer strides before calling the iterator.
	base := k
	var zero IK
	switch any(zero).(type) {
	case Contiguous:
		return Slice[T, IK]{Lengths: append([]int{}, p.InnerLengths...), It: shiftIterator[T]{Base: p.Base, Base0: base}}
	default: // Canonical or Universal
		return Slice[T, IK]{Lengths: append([]int{}, p.InnerLengths...), Strides: append([]int{}, p.InnerStrides...), It: shiftIterator[T]{Base: p.Base, Base0: base}}
	}
}

// shiftIterator rebases a MutIterator by a fixed offset, letting
// PackIterator hand out inner iterators without copying the backing
// store.
type shiftIterator[T any] struct {
	Base  MutIterator[T]
	Base0 int
}

func (s shiftIterator[T]) At(k int) T     { return s.Base.At(s.Base0 + k) }
func (s shiftIterator[T]) AtPtr(k int) *T { return s.Base.AtPtr(s.Base0 + k) }

// Pack fixes the last p dimensions as the inner (element) slice: the
// outer slice has rank N-p, the inner slice rank p. Since the source is
// Contiguous, the trailing p dimensions are themselves contiguous, so
// the inner kind is Contiguous and the outer kind is Universal with
// strides computed from the original row-major layout.
func Pack[T any](s Slice[T, Contiguous], p int) Slice[Slice[T, Contiguous], Universal] {
	checkPrecond(p >= 1 && p < len(s.Lengths), "Pack", "p must be in [1, rank)")
	n := len(s.Lengths)
	rowStrides := s.rowMajorStrides()
	outerLengths := append([]int{}, s.Lengths[:n-p]...)
	outerStrides := append([]int{}, rowStrides[:n-p]...)
	innerLengths := append([]int{}, s.Lengths[n-p:]...)

	return Slice[Slice[T, Contiguous], Universal]{
		Lengths: outerLengths,
		Strides: outerStrides,
		It: roIterator[Slice[T, Contiguous]]{Iterator: PackIterator[T, Contiguous]{
			Base: s.It, OuterLengths: outerLengths, OuterStrides: outerStrides,
			InnerLengths: innerLengths,
		}},
	}
}

// Ipack fixes the first p dimensions as the outer slice, dual to Pack.
func Ipack[T any](s Slice[T, Contiguous], p int) Slice[Slice[T, Contiguous], Universal] {
	checkPrecond(p >= 1 && p < len(s.Lengths), "Ipack", "p must be in [1, rank)")
	rowStrides := s.rowMajorStrides()
	outerLengths := append([]int{}, s.Lengths[:p]...)
	outerStrides := append([]int{}, rowStrides[:p]...)
	innerLengths := append([]int{}, s.Lengths[p:]...)

	return Slice[Slice[T, Contiguous], Universal]{
		Lengths: outerLengths,
		Strides: outerStrides,
		It: roIterator[Slice[T, Contiguous]]{Iterator: PackIterator[T, Contiguous]{
			Base: s.It, OuterLengths: outerLengths, OuterStrides: outerStrides,
			InnerLengths: innerLengths,
		}},
	}
}

// PackGeneric is the Universal-source variant of Pack/Ipack used by
// byDim/alongDim/evertPack, where the inner pack need not itself be
// contiguous.
func PackGeneric[T any](s Slice[T, Universal], p int, outerFirst bool) Slice[Slice[T, Universal], Universal] {
	n := len(s.Lengths)
	var outerLengths, outerStrides, innerLengths, innerStrides []int
	if outerFirst {
		outerLengths = append([]int{}, s.Lengths[:p]...)
		outerStrides = append([]int{}, s.Strides[:p]...)
		innerLengths = append([]int{}, s.Lengths[p:]...)
		innerStrides = append([]int{}, s.Strides[p:]...)
	} else {
		outerLengths = append([]int{}, s.Lengths[:n-p]...)
		outerStrides = append([]int{}, s.Strides[:n-p]...)
		innerLengths = append([]int{}, s.Lengths[n-p:]...)
		innerStrides = append([]int{}, s.Strides[n-p:]...)
	}
	return Slice[Slice[T, Universal], Universal]{
		Lengths: outerLengths,
		Strides: outerStrides,
		It: roIterator[Slice[T, Universal]]{Iterator: PackIterator[T, Universal]{
			Base: s.It, OuterLengths: outerLengths, OuterStrides: outerStrides,
			InnerLengths: innerLengths, InnerStrides: innerStrides,
		}},
	}
}

// Unpack merges the outer and inner stride layers of a packed slice
// back into a single flat slice. The output kind is min(innerKind,
// Canonical): Unpack never reconstructs Contiguous automatically,
// since the merge does not by itself re-derive the innermost-stride-1
// guarantee beyond what Canonical already asserts.
func Unpack[T any](s Slice[Slice[T, Universal], Universal]) Slice[T, Canonical] {
	checkPrecond(s.Len() > 0, "Unpack", "packed slice must be non-empty to read an inner shape")
	inner := s.At(make([]int, len(s.Lengths))...)
	lengths := append(append([]int{}, s.Lengths...), inner.Lengths...)
	outerStrides := append([]int{}, s.Strides...)
	// Canonical carries only the outer N-1 strides; the true innermost
	// stride is whatever the inner slice's last stride is, asserted (not
	// re-verified) to be 1 by the Canonical contract.
	strides := append(outerStrides, inner.effectiveStrides()[:len(inner.Lengths)-1]...)
	return Slice[T, Canonical]{
		Lengths: lengths,
		Strides: strides,
		It:      unpackIterator[T]{Outer: s, InnerLen: len(inner.Lengths)},
	}
}

// unpackIterator reconstructs flat access over a packed slice by
// splitting the flat index back into outer/inner parts on every read.
type unpackIterator[T any] struct {
	Outer    Slice[Slice[T, Universal], Universal]
	InnerLen int
}

func (u unpackIterator[T]) splitLengths() ([]int, []int) {
	first := u.Outer.At(make([]int, len(u.Outer.Lengths))...)
	return u.Outer.Lengths, first.Lengths
}

func (u unpackIterator[T]) At(k int) T {
	outerLengths, innerLengths := u.splitLengths()
	full := append(append([]int{}, outerLengths...), innerLengths...)
	idx := unflattenIndex(k, full)
	outerIdx, innerIdx := idx[:len(outerLengths)], idx[len(outerLengths):]
	return u.Outer.At(outerIdx...).At(innerIdx...)
}

func (u unpackIterator[T]) AtPtr(k int) *T {
	outerLengths, innerLengths := u.splitLengths()
	full := append(append([]int{}, outerLengths...), innerLengths...)
	idx := unflattenIndex(k, full)
	outerIdx, innerIdx := idx[:len(outerLengths)], idx[len(outerLengths):]
	return u.Outer.At(outerIdx...).AtPtr(innerIdx...)
}

// EvertPack swaps the outer and inner packs of a slice of slices,
// expressing "iterate along dimension D" in terms of pack/ipack.
func EvertPack[T any](s Slice[Slice[T, Universal], Universal]) Slice[Slice[T, Universal], Universal] {
	checkPrecond(s.Len() > 0, "EvertPack", "packed slice must be non-empty")
	flat := Unpack(s)
	p := len(s.At(make([]int, len(s.Lengths))...).Lengths)
	n := len(flat.Lengths)
	return PackGeneric(flat.Universal(), n-p, false)
}
