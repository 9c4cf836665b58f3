package ndslice

// ByDim returns a slice whose outer axes are the given dims (in order)
// and whose elements are slices over the remaining axes. Built exactly
// as spec.md §4.3 prescribes: transpose(dims ++ rest) then
// ipack<len(dims)>.
func ByDim[T any, K Kind](s Slice[T, K], dims []int) Slice[Slice[T, Universal], Universal] {
	checkDistinctDims("ByDim", dims, len(s.Lengths))
	perm := append(append([]int{}, dims...), remainingDims(dims, len(s.Lengths))...)
	transposed := Transpose(s, perm)
	return PackGeneric(transposed, len(dims), true)
}

// AlongDim is the dual of ByDim: the outer axes are the remaining ones,
// the element slice spans dims. Equivalent to ByDim(dims) then
// EvertPack.
func AlongDim[T any, K Kind](s Slice[T, K], dims []int) Slice[Slice[T, Universal], Universal] {
	return EvertPack(ByDim(s, dims))
}

func remainingDims(dims []int, rank int) []int {
	taken := make(map[int]bool, len(dims))
	for _, d := range dims {
		taken[d] = true
	}
	rest := make([]int, 0, rank-len(dims))
	for d := 0; d < rank; d++ {
		if !taken[d] {
			rest = append(rest, d)
		}
	}
	return rest
}

func checkDistinctDims(op string, dims []int, rank int) {
	if !DebugChecks {
		return
	}
	seen := make(map[int]bool, len(dims))
	for _, d := range dims {
		checkPrecond(d >= 0 && d < rank, op, "dimension out of range")
		checkPrecond(!seen[d], op, "duplicate dimension")
		seen[d] = true
	}
}
