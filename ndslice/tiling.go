package ndslice

// Blocks partitions the slice into non-overlapping tiles of shape rl:
// the outer slice has lengths[i] = Lengths[i]/rl[i] and strides[i] =
// Strides[i]*rl[i]; the inner (element) slice has lengths rl and the
// original strides.
func Blocks[T any, K Kind](s Slice[T, K], rl []int) Slice[Slice[T, Universal], Universal] {
	u := s.Universal()
	checkPrecond(len(rl) == len(u.Lengths), "Blocks", "rl must have one entry per dimension")
	n := len(u.Lengths)
	outerLengths := make([]int, n)
	outerStrides := make([]int, n)
	for d := 0; d < n; d++ {
		outerLengths[d] = u.Lengths[d] / rl[d]
		outerStrides[d] = u.Strides[d] * rl[d]
	}
	return Slice[Slice[T, Universal], Universal]{
		Lengths: outerLengths,
		Strides: outerStrides,
		It: roIterator[Slice[T, Universal]]{Iterator: PackIterator[T, Universal]{
			Base: u.It, OuterLengths: outerLengths, OuterStrides: outerStrides,
			InnerLengths: append([]int{}, rl...), InnerStrides: append([]int{}, u.Strides...),
		}},
	}
}

// Windows returns overlapping sliding blocks of shape rl: outer lengths
// max(Lengths[i]-rl[i]+1, 0), outer strides unchanged from the source,
// inner lengths rl.
func Windows[T any, K Kind](s Slice[T, K], rl []int) Slice[Slice[T, Universal], Universal] {
	u := s.Universal()
	checkPrecond(len(rl) == len(u.Lengths), "Windows", "rl must have one entry per dimension")
	n := len(u.Lengths)
	outerLengths := make([]int, n)
	for d := 0; d < n; d++ {
		l := u.Lengths[d] - rl[d] + 1
		if l < 0 {
			l = 0
		}
		outerLengths[d] = l
	}
	return Slice[Slice[T, Universal], Universal]{
		Lengths: outerLengths,
		Strides: append([]int{}, u.Strides...),
		It: roIterator[Slice[T, Universal]]{Iterator: PackIterator[T, Universal]{
			Base: u.It, OuterLengths: outerLengths, OuterStrides: u.Strides,
			InnerLengths: append([]int{}, rl...), InnerStrides: append([]int{}, u.Strides...),
		}},
	}
}
