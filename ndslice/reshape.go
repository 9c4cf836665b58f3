package ndslice

import "github.com/agbru/ndcore/internal/apperrors"

// Reshape constructs a new Contiguous view with possibly different
// rank. Exactly one length may be -1 (the library solves for it).
// Element count must match the source. Returns a zero-valued slice and
// a *apperrors.ReshapeError on failure; per spec.md §6 the slice
// returned on error must not be dereferenced.
func Reshape[T any](s Slice[T, Contiguous], lengths []int) (Slice[T, Contiguous], error) {
	if s.IsEmpty() {
		return Slice[T, Contiguous]{}, &apperrors.ReshapeError{Code: apperrors.Empty, From: s.Lengths, To: lengths}
	}
	resolved, err := resolveInferredLength(lengths, s.Len())
	if err != nil {
		return Slice[T, Contiguous]{}, err
	}
	return Slice[T, Contiguous]{Lengths: resolved, It: s.It}, nil
}

// ReshapeUniversal reshapes a Universal slice. It succeeds only when the
// existing stride pattern can be expressed as contiguous runs under the
// requested lengths (i.e. the slice is, in effect, contiguous up to a
// base offset and row-major strides); otherwise it reports
// apperrors.Incompatible.
func ReshapeUniversal[T any](s Slice[T, Universal], lengths []int) (Slice[T, Universal], error) {
	if s.IsEmpty() {
		return Slice[T, Universal]{}, &apperrors.ReshapeError{Code: apperrors.Empty, From: s.Lengths, To: lengths}
	}
	resolved, err := resolveInferredLength(lengths, s.Len())
	if err != nil {
		return Slice[T, Universal]{}, err
	}
	if !stridesAreRowMajor(s.Lengths, s.Strides) {
		return Slice[T, Universal]{}, &apperrors.ReshapeError{Code: apperrors.Incompatible, From: s.Lengths, To: resolved}
	}
	return Slice[T, Universal]{Lengths: resolved, Strides: contiguousStrides(resolved), It: s.It}, nil
}

// resolveInferredLength resolves a single -1 entry in lengths against
// total, and validates the element count otherwise.
func resolveInferredLength(lengths []int, total int) ([]int, error) {
	resolved := append([]int{}, lengths...)
	inferIdx, product := -1, 1
	for i, l := range resolved {
		if l == -1 {
			if inferIdx != -1 {
				return nil, &apperrors.ReshapeError{Code: apperrors.Total, To: lengths}
			}
			inferIdx = i
			continue
		}
		product *= l
	}
	if inferIdx != -1 {
		if product == 0 || total%product != 0 {
			return nil, &apperrors.ReshapeError{Code: apperrors.Total, To: lengths}
		}
		resolved[inferIdx] = total / product
		return resolved, nil
	}
	if product != total {
		return nil, &apperrors.ReshapeError{Code: apperrors.Total, To: lengths}
	}
	return resolved, nil
}

// stridesAreRowMajor reports whether strides exactly match the
// row-major layout implied by lengths (the only pattern a reshape to an
// arbitrary new shape can satisfy without copying).
func stridesAreRowMajor(lengths, strides []int) bool {
	want := contiguousStrides(lengths)
	if len(want) != len(strides) {
		return false
	}
	for i := range want {
		if want[i] != strides[i] {
			return false
		}
	}
	return true
}
