package bigint

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDecimalRoundTrip_PropertyBased verifies spec.md §8's invariant
// "for any BigInt b at capacity K with normalized state: b.toString parses
// back to a BigInt equal to b" over randomly generated int64 values, the
// same style of property the teacher's fibonacci package uses for
// Cassini's Identity.
func TestDecimalRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("decimal string round trips through FromDecimalString", prop.ForAll(
		func(v int64) bool {
			b := New(Words4)
			b.SetInt64(v)
			s := b.String()

			parsed, err := FromDecimalString(s, Words4)
			if err != nil {
				t.Logf("FromDecimalString(%q): %v", s, err)
				return false
			}
			return parsed.Cmp(b) == 0
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestHexRoundTrip_PropertyBased mirrors the decimal property for hex.
func TestHexRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("hex string round trips and equals strconv's own parse", prop.ForAll(
		func(v uint64) bool {
			b := New(Words4)
			b.SetUint64(v)
			s := b.ToHexString(false)

			if want := strconv.FormatUint(v, 16); s != want {
				t.Logf("ToHexString = %q, strconv = %q", s, want)
				return false
			}

			parsed, err := FromHexString(s, Words4, false)
			if err != nil {
				return false
			}
			got, exact := parsed.ToUint64()
			return exact && got == v
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestShiftInvariant_PropertyBased verifies spec.md §8: "(b << n) >> n == b
// whenever no high bits were lost."
func TestShiftInvariant_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("shift left then right recovers the original value when nothing is lost", prop.ForAll(
		func(v uint64, n uint8) bool {
			shift := uint(n % 40) // keep comfortably inside Words4's 256 bits
			b := New(Words4)
			b.SetUint64(v)
			if lost := b.CheckedShlAssign(shift); lost {
				return true // precondition of the invariant not met; skip
			}
			b.ShrAssign(shift)
			got, exact := b.ToUint64()
			return exact && got == v
		},
		gen.UInt64(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestMulPow5Additive_PropertyBased checks that multiplying by 5^(a+b) in
// one call equals multiplying by 5^a and then by 5^b.
func TestMulPow5Additive_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("mulPow5(a+b) == mulPow5(a) then mulPow5(b)", prop.ForAll(
		func(v uint64, a, b uint8) bool {
			ka, kb := uint(a%30), uint(b%30)

			lhs := New(Words64)
			lhs.SetUint64(v)
			lhs.MulPow5(ka + kb)

			rhs := New(Words64)
			rhs.SetUint64(v)
			rhs.MulPow5(ka)
			rhs.MulPow5(kb)

			return lhs.Cmp(rhs) == 0
		},
		gen.UInt64(),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
