package ndslice

// Diagonal returns the 1-d view along a slice's main diagonal: length
// min(Lengths...), stride equal to the sum of the original strides.
func Diagonal[T any, K Kind](s Slice[T, K]) Slice[T, Universal] {
	u := s.Universal()
	checkPrecond(len(u.Lengths) > 0, "Diagonal", "slice must have rank >= 1")
	minLen := u.Lengths[0]
	strideSum := 0
	for d := range u.Lengths {
		if u.Lengths[d] < minLen {
			minLen = u.Lengths[d]
		}
		strideSum += u.Strides[d]
	}
	return Slice[T, Universal]{Lengths: []int{minLen}, Strides: []int{strideSum}, It: u.It}
}

// Antidiagonal is only defined for rank 2: it inscribes the array to
// its leading m x m square (m = min(Lengths)), reverses the second axis
// within that square, then takes the diagonal.
func Antidiagonal[T any, K Kind](s Slice[T, K]) Slice[T, Universal] {
	checkPrecond(len(s.Lengths) == 2, "Antidiagonal", "only defined for rank 2")
	u := s.Universal()
	m := u.Lengths[0]
	if u.Lengths[1] < m {
		m = u.Lengths[1]
	}
	reversed := Slice[T, Universal]{
		Lengths: []int{m, m},
		Strides: []int{u.Strides[0], -u.Strides[1]},
		It:      shiftIterator[T]{Base: u.It, Base0: (m - 1) * u.Strides[1]},
	}
	return Diagonal(reversed)
}
