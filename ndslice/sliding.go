package ndslice

// Slide applies a P-ary reduction fn over every sliding window of width
// P along every axis simultaneously, yielding lengths[d]-P+1 along each
// dimension. The inner window at each outer position is read via
// Windows and reduced through fn.
func Slide[T, R any, K Kind](s Slice[T, K], p int, fn func(window Slice[T, Universal]) R) Slice[R, Universal] {
	rl := make([]int, len(s.Lengths))
	for d := range rl {
		rl[d] = p
	}
	return Map(Windows(s, rl), fn)
}

// SlideAlong is Slide restricted to the given dims: other axes keep
// their full extent, only the named dims shrink by p-1.
func SlideAlong[T, R any, K Kind](s Slice[T, K], p int, dims []int, fn func(window Slice[T, Universal]) R) Slice[R, Universal] {
	u := s.Universal()
	rl := make([]int, len(u.Lengths))
	for d := range rl {
		rl[d] = 1
	}
	for _, d := range dims {
		rl[d] = p
	}
	return Map(Windows(u, rl), fn)
}

// Pairwise is slide<lag+1, fn> where fn receives the window's first and
// last elements: fun(a, b) with a the first, b the last in the window.
// Only meaningful on a 1-d slice.
func Pairwise[T, R any, K Kind](s Slice[T, K], lag int, fn func(a, b T) R) Slice[R, Universal] {
	checkPrecond(len(s.Lengths) == 1, "Pairwise", "only defined on a 1-d slice")
	return Slide(s, lag+1, func(w Slice[T, Universal]) R {
		return fn(w.At(0), w.At(w.Lengths[0]-1))
	})
}

// Diff is pairwise(lambda(a,b).b-a, lag).
func Diff[K Kind](s Slice[float64, K], lag int) Slice[float64, Universal] {
	return Pairwise(s, lag, func(a, b float64) float64 { return b - a })
}

// DiffInt is the integer specialization of Diff.
func DiffInt[K Kind](s Slice[int, K], lag int) Slice[int, Universal] {
	return Pairwise(s, lag, func(a, b int) int { return b - a })
}

// WithNeighboursSum pairs each interior element with
// fn(leftNeighbour, rightNeighbour) accumulated across every axis: each
// interior cell is zipped with the fn-reduction of its 2*rank
// axis-adjacent neighbours.
func WithNeighboursSum[T, R any, K Kind](s Slice[T, K], fn func(left, right T) R, combine func(R, R) R, zero R) Slice[Pair[T, R], Universal] {
	u := s.Universal()
	interior := DropBorders(u)
	n := len(u.Lengths)

	neighbourSum := func(idx []int) R {
		acc := zero
		for d := 0; d < n; d++ {
			left := append([]int{}, idx...)
			right := append([]int{}, idx...)
			left[d]--
			right[d]++
			acc = combine(acc, fn(u.At(left...), u.At(right...)))
		}
		return acc
	}

	return Slice[Pair[T, R], Universal]{
		Lengths: interior.Lengths,
		Strides: contiguousStrides(interior.Lengths),
		It: roIterator[Pair[T, R]]{Iterator: MapIterator[int, Pair[T, R]]{
			Base: identityField{},
			Fn: func(flat int) Pair[T, R] {
				innerIdx := unflattenIndex(flat, interior.Lengths)
				fullIdx := make([]int, n)
				for d := range fullIdx {
					fullIdx[d] = innerIdx[d] + 1 // DropBorders shifted every axis by 1
				}
				return Pair[T, R]{First: u.At(fullIdx...), Second: neighbourSum(fullIdx)}
			},
		}},
	}
}

// identityField is a trivial Iterator[int] that returns its own index,
// used to drive WithNeighboursSum's per-position computation through
// MapIterator instead of hand-rolling a bespoke iterator type.
type identityField struct{}

func (identityField) At(k int) int { return k }
