//go:build cgo

// Cross-checks BigInt's Add and MulPow5 arithmetic against github.com/ncw/gmp,
// a cgo binding to GNU MP. This plays the same "independent oracle" role
// the teacher's internal/fibonacci strategy_oracle_test.go gives math/big
// when comparing two Fibonacci algorithms against each other — here the
// oracle is an entirely separate arbitrary-precision implementation rather
// than a second algorithm over the same type, which is a stronger check for
// a from-scratch BigInt.
package bigint

import (
	"testing"

	"github.com/ncw/gmp"
)

func TestAddAgainstGMPOracle(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{100, -30}, {-100, 30}, {-5, -7}, {0, 42}, {42, 0}, {1 << 40, -(1 << 39)},
	}
	for _, c := range cases {
		a := New(Words4)
		a.SetInt64(c.a)
		b := New(Words4)
		b.SetInt64(c.b)

		sum := New(Words4)
		sum.Add(a.View(), b.View())

		want := new(gmp.Int).Add(gmp.NewInt(c.a), gmp.NewInt(c.b))
		if sum.String() != want.String() {
			t.Errorf("%d + %d = %s, gmp oracle says %s", c.a, c.b, sum.String(), want.String())
		}
	}
}

func TestMulPow5AgainstGMPOracle(t *testing.T) {
	for _, k := range []uint{0, 1, 27, 28, 60} {
		b := New(Words64)
		b.SetUint64(123456789)
		b.MulPow5(k)

		want := new(gmp.Int).Mul(gmp.NewInt(123456789), new(gmp.Int).Exp(gmp.NewInt(5), gmp.NewInt(int64(k)), nil))
		if b.String() != want.String() {
			t.Errorf("123456789 * 5^%d = %s, gmp oracle says %s", k, b.String(), want.String())
		}
	}
}
