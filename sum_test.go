package frange

import (
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestSumPair(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, n := range []int64{0, 1, 2, 3, 9, 10, 10000, 1 << 40} {
		p1, p2 := sumPair(n)
		tt.MustAssert(p1 >= 0 && p2 >= 0, "sumPair(%d) = %d, %d", n, p1, p2)

		exp := new(big.Int).Mul(big.NewInt(n), big.NewInt(n+1))
		exp.Rsh(exp, 1)
		got := new(big.Int).Mul(big.NewInt(p1), big.NewInt(p2))
		tt.MustAssert(exp.Cmp(got) == 0, "sumPair(%d) = %d, %d", n, p1, p2)
	}
}

func TestDiffProd128(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < propIterations; i++ {
		a1 := globalRNG.Int63()
		a2 := globalRNG.Int63()
		b1 := globalRNG.Int63()
		b2 := globalRNG.Int63()

		hi, lo, neg := diffProd128(a1, a2, b1, b2)

		exp := new(big.Int).Mul(big.NewInt(a1), big.NewInt(a2))
		exp.Sub(exp, new(big.Int).Mul(big.NewInt(b1), big.NewInt(b2)))

		got := new(big.Int).SetUint64(hi)
		got.Lsh(got, 64)
		got.Or(got, new(big.Int).SetUint64(lo))
		if neg {
			got.Neg(got)
		}
		tt.MustAssert(exp.Cmp(got) == 0,
			"%d*%d - %d*%d = (%d, %d, %v)", a1, a2, b1, b2, hi, lo, neg)
	}
}

func TestTwicePrecisionFromUint128(t *testing.T) {
	tt := assert.WrapTB(t)

	// The pair must carry the full 128-bit value at better than 104 bits.
	// Words with bits set deep in the low half are the hard cases: any
	// chunking that rounds more than once in the tail loses them.
	check := func(hi, lo uint64, neg bool) {
		tp := twicePrecisionFromUint128(hi, lo, neg)

		exp := new(big.Int).SetUint64(hi)
		exp.Lsh(exp, 64)
		exp.Or(exp, new(big.Int).SetUint64(lo))
		if neg {
			exp.Neg(exp)
		}
		expf := new(big.Float).SetPrec(bigFloatPrec).SetInt(exp)
		tt.MustAssert(relErrWithin(expf, tp.AsBigFloat(), 0x1p-104),
			"fromUint128(%d, %d, %v) = %s", hi, lo, neg, tp)
	}

	check(0x8000000000001234, 0x9999999999999999, false)
	check(math.MaxUint64, math.MaxUint64, true)
	check(1, 0, false)
	check(1<<43, 1, true)

	for i := 0; i < propIterations; i++ {
		check(globalRNG.Uint64(), globalRNG.Uint64(), globalRNG.Intn(2) == 0)
	}

	tt.MustAssert(twicePrecisionFromUint128(0, 0, false).IsZero())
	tt.MustEqual(-1.0, twicePrecisionFromUint128(0, 1, true).Float64())
}
