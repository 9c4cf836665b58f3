package ndslice

import "testing"

func flatten(s Slice[int, Universal]) []int {
	out := make([]int, s.Len())
	for k := range out {
		out[k] = s.AtFlat(k)
	}
	return out
}

func assertIntSlice(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got, want)
		}
	}
}

func TestIotaContiguousStrides(t *testing.T) {
	s := Iota([]int{4, 6}, 0, 1)
	if s.Rank() != 2 || s.Len() != 24 {
		t.Fatalf("unexpected shape: rank=%d len=%d", s.Rank(), s.Len())
	}
	if got := s.At(1, 2); got != 8 {
		t.Fatalf("iota(4,6).At(1,2) = %d, want 8", got)
	}
}

func TestDiagonalOfSquareIota(t *testing.T) {
	s := Iota([]int{3, 3}, 0, 1)
	d := Diagonal(s)
	assertIntSlice(t, flatten(d), []int{0, 4, 8})
}

func TestAntidiagonalInscribesLeadingSquare(t *testing.T) {
	// spec.md §8 scenario 2: iota(2,3).antidiagonal == [1,3]
	s := Iota([]int{2, 3}, 0, 1)
	ad := Antidiagonal(s)
	assertIntSlice(t, flatten(ad), []int{1, 3})
}

func TestWindowsOfLengthFiveIota(t *testing.T) {
	s := Iota([]int{5}, 0, 1)
	w := Windows(s, []int{3})
	if w.Len() != 3 {
		t.Fatalf("windows count = %d, want 3", w.Len())
	}
	got := flatten(w.AtFlat(2))
	assertIntSlice(t, got, []int{2, 3, 4})
}

func TestBlocksPartitionsDisjointTiles(t *testing.T) {
	s := Iota([]int{4}, 0, 1)
	b := Blocks(s, []int{2})
	if b.Len() != 2 {
		t.Fatalf("blocks count = %d, want 2", b.Len())
	}
	assertIntSlice(t, flatten(b.AtFlat(0)), []int{0, 1})
	assertIntSlice(t, flatten(b.AtFlat(1)), []int{2, 3})
}

func TestStrideAppliesToEveryAxis(t *testing.T) {
	// spec.md §8: iota(4,6).stride(2) == [[0,2,4],[12,14,16]]
	s := Iota([]int{4, 6}, 0, 1)
	st := Stride(s, 2)
	if st.Lengths[0] != 2 || st.Lengths[1] != 3 {
		t.Fatalf("stride(2) lengths = %v, want [2 3]", st.Lengths)
	}
	assertIntSlice(t, flatten(st), []int{0, 2, 4, 12, 14, 16})
}

func TestReshapeContiguousIdentity(t *testing.T) {
	s := ContiguousOf(Iota([]int{2, 3}, 0, 1))
	reshaped, err := Reshape(s, []int{3, 2})
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	assertIntSlice(t, flatten(reshaped.Universal()), flatten(s.Universal()))
}

func TestReshapeInfersMinusOne(t *testing.T) {
	s := ContiguousOf(Iota([]int{2, 3}, 0, 1))
	reshaped, err := Reshape(s, []int{-1, 2})
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	if reshaped.Lengths[0] != 3 {
		t.Fatalf("inferred length = %d, want 3", reshaped.Lengths[0])
	}
}

func TestReshapeRejectsMismatchedTotal(t *testing.T) {
	s := ContiguousOf(Iota([]int{2, 3}, 0, 1))
	if _, err := Reshape(s, []int{4, 4}); err == nil {
		t.Fatal("expected an error reshaping to a mismatched total element count")
	}
}

func TestTransposeSwapsAxes(t *testing.T) {
	s := Iota([]int{2, 3}, 0, 1)
	tr := Transpose(s, []int{1, 0})
	if tr.Lengths[0] != 3 || tr.Lengths[1] != 2 {
		t.Fatalf("transpose lengths = %v, want [3 2]", tr.Lengths)
	}
	if tr.At(2, 1) != s.At(1, 2) {
		t.Fatalf("transpose(2,1) = %d, want %d", tr.At(2, 1), s.At(1, 2))
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	s := Iota([]int{2, 3}, 0, 1)
	packed := PackGeneric(s.Universal(), 1, false)
	unpacked := Unpack(packed)
	assertIntSlice(t, flatten(unpacked.Universal()), flatten(s.Universal()))
}

func TestByDimLeadingAxisRecoversOriginalOrder(t *testing.T) {
	s := Iota([]int{2, 3}, 0, 1)
	bd := ByDim(s, []int{0})
	unpacked := Unpack(bd)
	assertIntSlice(t, flatten(unpacked.Universal()), flatten(s.Universal()))
}

func TestRetroRetroIsIdentity(t *testing.T) {
	s := Iota([]int{5}, 0, 1)
	rr := Retro(Retro(s))
	assertIntSlice(t, flatten(rr), flatten(s.Universal()))
}

func TestDropBordersRemovesOuterShell(t *testing.T) {
	s := Iota([]int{4, 4}, 0, 1)
	db := DropBorders(s)
	if db.Lengths[0] != 2 || db.Lengths[1] != 2 {
		t.Fatalf("dropBorders lengths = %v, want [2 2]", db.Lengths)
	}
	if db.At(0, 0) != s.At(1, 1) {
		t.Fatalf("dropBorders(0,0) = %d, want %d", db.At(0, 0), s.At(1, 1))
	}
}

func TestZipHomogeneousPairsElements(t *testing.T) {
	a := Iota([]int{3}, 0, 1)
	b := Iota([]int{3}, 10, 1)
	z, err := Zip(a.Universal(), b.Universal())
	if err != nil {
		t.Fatalf("Zip: %v", err)
	}
	got := z.AtFlat(1)
	if got[0] != 1 || got[1] != 11 {
		t.Fatalf("zip[1] = %v, want [1 11]", got)
	}
}

func TestZipRejectsLengthMismatch(t *testing.T) {
	a := Iota([]int{3}, 0, 1)
	b := Iota([]int{4}, 0, 1)
	if _, err := Zip(a.Universal(), b.Universal()); err == nil {
		t.Fatal("expected a length-mismatch error from Zip")
	}
}

func TestMapAppliesElementwise(t *testing.T) {
	s := Iota([]int{4}, 0, 1)
	doubled := Map(s, func(v int) int { return v * 2 })
	assertIntSlice(t, flatten(doubled), []int{0, 2, 4, 6})
}

func TestDiffComputesConsecutiveDeltas(t *testing.T) {
	s := Iota([]int{5}, 0, 2)
	d := DiffInt(s, 1)
	assertIntSlice(t, flatten(d), []int{2, 2, 2, 2})
}

func TestCachedReturnsSameValueOnRepeatedAccess(t *testing.T) {
	calls := 0
	s := Iota([]int{4}, 0, 1)
	mapped := Map(s, func(v int) int {
		calls++
		return v * v
	})
	cached := NewCachedSlice(mapped)
	first := cached.AtFlat(2)
	second := cached.AtFlat(2)
	if first != second || first != 4 {
		t.Fatalf("cached values = %d, %d, want 4, 4", first, second)
	}
}

func TestMagicSquareRowsColsDiagonalsSumEqual(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		m := Magic(n)
		want := n * (n*n + 1) / 2
		for r := 0; r < n; r++ {
			sum := 0
			for c := 0; c < n; c++ {
				sum += m.At(r, c)
			}
			if sum != want {
				t.Fatalf("magic(%d) row %d sums to %d, want %d", n, r, sum, want)
			}
		}
		for c := 0; c < n; c++ {
			sum := 0
			for r := 0; r < n; r++ {
				sum += m.At(r, c)
			}
			if sum != want {
				t.Fatalf("magic(%d) col %d sums to %d, want %d", n, c, sum, want)
			}
		}
		diag, anti := 0, 0
		for i := 0; i < n; i++ {
			diag += m.At(i, i)
			anti += m.At(i, n-1-i)
		}
		if diag != want || anti != want {
			t.Fatalf("magic(%d) diagonals sum to %d and %d, want %d", n, diag, anti, want)
		}
	}
}

func TestBitwiseExpandsWordsToBits(t *testing.T) {
	s := NewContiguous([]int{1}, []uint64{0b101})
	bits := Bitwise(s.Universal())
	if bits.Lengths[0] != wordBits {
		t.Fatalf("bitwise length = %d, want %d", bits.Lengths[0], wordBits)
	}
	if bits.At(0) != 1 || bits.At(1) != 0 || bits.At(2) != 1 {
		t.Fatalf("bitwise(0b101) low bits = [%d %d %d], want [1 0 1]", bits.At(0), bits.At(1), bits.At(2))
	}
}

func TestDebugChecksPanicsOnOutOfRangeIndex(t *testing.T) {
	DebugChecks = true
	defer func() { DebugChecks = false }()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a precondition panic with DebugChecks enabled")
		}
	}()
	s := Iota([]int{3}, 0, 1)
	s.At(5)
}
