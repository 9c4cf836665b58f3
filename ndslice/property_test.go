package ndslice

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestKindConversionRoundTrip_PropertyBased verifies that converting a
// contiguous iota down to Universal and back up through
// CanonicalOf/ContiguousOf preserves every element, for any shape.
func TestKindConversionRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("contiguous -> universal -> contiguous preserves elements", prop.ForAll(
		func(a, b int) bool {
			lengths := []int{clampDim(a), clampDim(b)}
			s := Iota(lengths, 0, 1)
			roundTripped := ContiguousOf(s.Universal())
			for k := 0; k < s.Len(); k++ {
				if s.AtFlat(k) != roundTripped.AtFlat(k) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 6),
	))

	properties.TestingRun(t)
}

// TestRetroRetroIsIdentity_PropertyBased verifies retro.retro == s for
// any 1-d iota length.
func TestRetroRetroIsIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("retro(retro(s)) == s", prop.ForAll(
		func(n int) bool {
			s := Iota([]int{clampDim(n)}, 0, 1)
			rr := Retro(Retro(s))
			for k := 0; k < s.Len(); k++ {
				if s.AtFlat(k) != rr.AtFlat(k) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

// TestWindowsShapeIdentity_PropertyBased verifies Windows' outer length
// formula max(L-p+1, 0) for any 1-d length/width pair.
func TestWindowsShapeIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("windows(s, p).Len() == max(len(s)-p+1, 0)", prop.ForAll(
		func(n, p int) bool {
			s := Iota([]int{n}, 0, 1)
			w := Windows(s, []int{p})
			want := n - p + 1
			if want < 0 {
				want = 0
			}
			return w.Lengths[0] == want
		},
		gen.IntRange(1, 12),
		gen.IntRange(1, 12),
	))

	properties.TestingRun(t)
}

// TestDiagonalOfSquareIota_PropertyBased verifies diagonal(iota(n,n)) ==
// iota(n, 0, n+1) for any n.
func TestDiagonalOfSquareIota_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("diagonal(iota(n,n)) == iota(n, 0, n+1)", prop.ForAll(
		func(n int) bool {
			square := Iota([]int{n, n}, 0, 1)
			d := Diagonal(square)
			expected := Iota([]int{n}, 0, n+1)
			for k := 0; k < n; k++ {
				if d.AtFlat(k) != expected.AtFlat(k) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

// TestReshapeContiguousPreservesRowMajorOrder_PropertyBased verifies
// that reshaping a contiguous slice to any compatible total never
// changes the row-major element sequence.
func TestReshapeContiguousPreservesRowMajorOrder_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("reshape(s, any-compatible-shape) keeps the same flat sequence", prop.ForAll(
		func(a, b int) bool {
			total := clampDim(a) * clampDim(b)
			if total == 0 {
				return true
			}
			s := ContiguousOf(Iota([]int{total}, 0, 1))
			reshaped, err := Reshape(s, []int{clampDim(a), clampDim(b)})
			if err != nil {
				return false
			}
			for k := 0; k < total; k++ {
				if s.AtFlat(k) != reshaped.AtFlat(k) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 6),
	))

	properties.TestingRun(t)
}

func clampDim(n int) int {
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
