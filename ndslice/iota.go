package ndslice

// Iota builds a Contiguous slice whose element (i0,...,iN-1) evaluates
// to start + stride*sum(i_k * rowMajorStride_k).
func Iota(lengths []int, start, stride int) Slice[int, Contiguous] {
	f := NewIotaField(lengths, start, stride)
	return Slice[int, Contiguous]{
		Lengths: append([]int{}, lengths...),
		It:      roIterator[int]{Iterator: FieldIterator[int]{F: f, Lengths: lengths}},
	}
}

// NdIota builds a slice whose element at each multi-index is the
// multi-index itself.
func NdIota(lengths []int) Slice[[]int, Contiguous] {
	return Slice[[]int, Contiguous]{
		Lengths: append([]int{}, lengths...),
		It:      roIterator[[]int]{Iterator: FieldIterator[[]int]{F: NdIotaField{}, Lengths: lengths}},
	}
}

// Linspace1 builds a 1-d slice of length n with values evenly spaced
// over [lo, hi].
func Linspace1(n int, lo, hi float64) Slice[float64, Contiguous] {
	f := LinspaceField1{Length: n, Lo: lo, Hi: hi}
	return Slice[float64, Contiguous]{
		Lengths: []int{n},
		It:      roIterator[float64]{Iterator: FieldIterator[float64]{F: f, Lengths: []int{n}}},
	}
}

// Linspace builds the Cartesian product of N independent linspace axes:
// element at a multi-index is the []float64 tuple of each axis's value.
func Linspace(lengths []int, intervals [][2]float64) Slice[[]float64, Contiguous] {
	f := LinspaceField{Lengths: lengths, Intervals: intervals}
	return Slice[[]float64, Contiguous]{
		Lengths: append([]int{}, lengths...),
		It:      roIterator[[]float64]{Iterator: FieldIterator[[]float64]{F: f, Lengths: lengths}},
	}
}

// Magic builds the lazy n x n magic square field as a Contiguous slice.
func Magic(n int) Slice[int, Contiguous] {
	checkPrecond(n >= 3, "Magic", "n must be >= 3")
	f := MagicField{N: n}
	lengths := []int{n, n}
	return Slice[int, Contiguous]{
		Lengths: lengths,
		It:      roIterator[int]{Iterator: FieldIterator[int]{F: f, Lengths: lengths}},
	}
}

// Cycle builds a 1-d slice of the given length mapping index i to
// source[i mod period].
func Cycle[T any](source []T, period, length int) Slice[T, Contiguous] {
	f := CycleField[T]{Source: source, Period: period}
	return Slice[T, Contiguous]{
		Lengths: []int{length},
		It:      roIterator[T]{Iterator: FieldIterator[T]{F: f, Lengths: []int{length}}},
	}
}

// Cartesian builds the Cartesian product slice of the given per-operand
// fields, each consuming the stated number of leading dimensions (the
// ranks must sum to len(lengths)).
func Cartesian[T any](lengths []int, fields []Field[T], ranks []int) Slice[[]T, Contiguous] {
	f := CartesianField[T]{Fields: fields, Ranks: ranks}
	return Slice[[]T, Contiguous]{
		Lengths: append([]int{}, lengths...),
		It:      roIterator[[]T]{Iterator: FieldIterator[[]T]{F: f, Lengths: lengths}},
	}
}

// Kronecker builds the Kronecker-product slice, combining operand
// fields via fn instead of tupling.
func Kronecker[T any](lengths []int, fields []Field[T], ranks []int, fn func([]T) T) Slice[T, Contiguous] {
	f := KroneckerField[T]{Fields: fields, Ranks: ranks, Fn: fn}
	return Slice[T, Contiguous]{
		Lengths: append([]int{}, lengths...),
		It:      roIterator[T]{Iterator: FieldIterator[T]{F: f, Lengths: lengths}},
	}
}
