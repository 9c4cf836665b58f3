package bigint

import "testing"

func TestSetUint64Int64(t *testing.T) {
	b := New(Words4)
	b.SetUint64(42)
	if got := b.String(); got != "42" {
		t.Fatalf("SetUint64(42).String() = %q, want 42", got)
	}
	b.SetInt64(-7)
	if got := b.String(); got != "-7" {
		t.Fatalf("SetInt64(-7).String() = %q, want -7", got)
	}
	b.SetInt64(0)
	if b.Sign() != 0 || b.IsZero() != true {
		t.Fatalf("SetInt64(0) not normalized to zero: sign=%d zero=%v", b.Sign(), b.IsZero())
	}
}

func TestNormalizedZeroSignInvariant(t *testing.T) {
	b := New(Words4)
	b.SetWords([]Word{0, 0, 0}, true)
	if b.Sign() != 0 {
		t.Fatalf("zero value with requested negative sign must normalize sign=false, got Sign()=%d", b.Sign())
	}
	if b.Length() != 0 {
		t.Fatalf("zero value must normalize to length 0, got %d", b.Length())
	}
}

func TestAddSub(t *testing.T) {
	a := New(Words4)
	a.SetInt64(100)
	b := New(Words4)
	b.SetInt64(-30)

	sum := New(Words4)
	if sum.Add(a.View(), b.View()) {
		t.Fatalf("unexpected overflow")
	}
	if sum.String() != "70" {
		t.Fatalf("100 + -30 = %s, want 70", sum.String())
	}

	diff := New(Words4)
	if diff.Sub(a.View(), b.View()) {
		t.Fatalf("unexpected overflow")
	}
	if diff.String() != "130" {
		t.Fatalf("100 - -30 = %s, want 130", diff.String())
	}

	// a - a == 0, and must normalize sign to false.
	zero := New(Words4)
	zero.Sub(a.View(), a.View())
	if !zero.IsZero() || zero.Sign() != 0 {
		t.Fatalf("a - a should be zero with sign 0, got %q sign=%d", zero.String(), zero.Sign())
	}
}

func TestMulAssignScalarCarryAppends(t *testing.T) {
	b := New(Words4)
	b.SetUint64(^uint64(0)) // max word
	carry := b.MulAssign(2, 0)
	if carry != 0 {
		t.Fatalf("expected carry to be absorbed (capacity available), got %d", carry)
	}
	if b.Length() != 2 {
		t.Fatalf("expected result to grow to 2 words, got %d", b.Length())
	}
}

func TestMulAssignOverflowReportedAtCapacity(t *testing.T) {
	b := New(1) // capacity 1 word
	b.SetUint64(^uint64(0))
	carry := b.MulAssign(2, 0)
	if carry == 0 {
		t.Fatalf("expected a nonzero overflow word when capacity is exhausted")
	}
}

func TestDivAssignRemainder(t *testing.T) {
	b := New(Words4)
	b.SetUint64(100)
	rem := b.DivAssign(7, 0)
	if b.String() != "14" || rem != 2 {
		t.Fatalf("100/7 = %s rem %d, want 14 rem 2", b.String(), rem)
	}
}

func TestShiftRoundTrip(t *testing.T) {
	b := New(Words4)
	b.SetUint64(0x1234)
	b.ShlAssign(20)
	b.ShrAssign(20)
	if b.String() != "4660" { // 0x1234 == 4660
		t.Fatalf("shift round trip lost bits: got %s, want 4660", b.String())
	}
}

func TestShlDropsHighBitsSilently(t *testing.T) {
	b := New(1)
	b.SetUint64(1)
	b.ShlAssign(WordBits) // shifts the single set bit out of the 1-word capacity
	if !b.IsZero() {
		t.Fatalf("ShlAssign should silently drop bits beyond capacity, got %s", b.String())
	}
}

func TestCheckedShlReportsLoss(t *testing.T) {
	b := New(1)
	b.SetUint64(1)
	if lost := b.CheckedShlAssign(WordBits); !lost {
		t.Fatalf("CheckedShlAssign should report bit loss")
	}
}

// TestMulPow5SpecScenario reproduces spec.md §8 scenario 5:
//
//	BigInt!4 d = 0xd; d.mulPow5(60); d.toHexString == "81704fcef32d3bd8117effd5c4389285b05d"
func TestMulPow5SpecScenario(t *testing.T) {
	d := New(Words4)
	d.SetUint64(0xd)
	overflowed := d.MulPow5(60)
	if overflowed {
		t.Fatalf("0xd * 5^60 fits in 4 words (144 bits), should not overflow")
	}
	want := "81704fcef32d3bd8117effd5c4389285b05d"
	if got := d.ToHexString(false); got != want {
		t.Fatalf("mulPow5(60) hex = %s, want %s", got, want)
	}
}

func TestMulPow5ReportsOverflowPastCapacity(t *testing.T) {
	d := New(1) // 64 bits of capacity
	d.SetUint64(0xd)
	if overflowed := d.MulPow5(60); !overflowed {
		t.Fatalf("0xd * 5^60 needs 144 bits, should overflow a 1-word BigInt")
	}
}

func TestCloneCopyIndependence(t *testing.T) {
	a := New(Words4)
	a.SetUint64(123)
	b := a.Clone()
	b.SetUint64(456)
	if a.String() != "123" {
		t.Fatalf("mutating the clone mutated the original: %s", a.String())
	}
}
