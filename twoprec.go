package frange

import (
	"math"
	"math/big"
	"math/bits"
)

// TwicePrecision is a float64 head/tail pair representing hi+lo to roughly
// twice the precision of a single float64. When canonical, every
// significand bit of lo is less significant than every bit of hi.
//
// TwicePrecision is a value type; all operations return new values.
type TwicePrecision struct {
	hi, lo float64
}

// TwicePrecisionFromRaw creates a TwicePrecision directly from a head/tail
// pair. The pair is not canonicalized; see TwicePrecision.Canon().
func TwicePrecisionFromRaw(hi, lo float64) TwicePrecision {
	return TwicePrecision{hi: hi, lo: lo}
}

func TwicePrecisionFromFloat64(f float64) TwicePrecision {
	return TwicePrecision{hi: f}
}

// TwicePrecisionFromInt64 creates an exact TwicePrecision from an integer.
// Both words come out of the bit-level split, so the head multiplies
// exactly by half-precision integers.
func TwicePrecisionFromInt64(i int64) TwicePrecision {
	hi, lo := splitPrec(i)
	hi, lo = canonicalize2(hi, lo)
	return TwicePrecision{hi: hi, lo: lo}
}

// TwicePrecisionFromRatio computes n/d to twice precision via full
// head/tail division.
func TwicePrecisionFromRatio(n, d int64) TwicePrecision {
	return TwicePrecisionFromInt64(n).DivFloat64(float64(d))
}

// twicePrecisionRatioTrunc is TwicePrecisionFromRatio with the head
// truncated to nb trailing zero bits and the shaved bits folded into the
// tail. Steps built this way multiply exactly by index offsets of up to nb
// bits.
func twicePrecisionRatioTrunc(n, d int64, nb uint) TwicePrecision {
	return TwicePrecisionFromRatio(n, d).truncHi(nb)
}

func (t TwicePrecision) truncHi(nb uint) TwicePrecision {
	hi := truncbits(t.hi, nb)
	return TwicePrecision{hi: hi, lo: (t.hi - hi) + t.lo}
}

// Raw returns access to the TwicePrecision as its head/tail words. See
// TwicePrecisionFromRaw() for the counterpart.
func (t TwicePrecision) Raw() (hi, lo float64) { return t.hi, t.lo }

// Canon renormalizes the pair so the words do not overlap.
func (t TwicePrecision) Canon() TwicePrecision {
	hi, lo := canonicalize2(t.hi, t.lo)
	return TwicePrecision{hi: hi, lo: lo}
}

func (t TwicePrecision) IsZero() bool { return t.hi == 0 && t.lo == 0 }

func (t TwicePrecision) Equal(v TwicePrecision) bool { return t == v }

func (t TwicePrecision) Neg() TwicePrecision {
	return TwicePrecision{hi: -t.hi, lo: -t.lo}
}

// AddFloat64 adds a single-width value.
func (t TwicePrecision) AddFloat64(v float64) TwicePrecision {
	sHi, sLo := add12(t.hi, v)
	hi, lo := canonicalize2(sHi, sLo+t.lo)
	return TwicePrecision{hi: hi, lo: lo}
}

func (t TwicePrecision) SubFloat64(v float64) TwicePrecision {
	return t.AddFloat64(-v)
}

// Add adds two TwicePrecision values. The larger head is used as the pivot
// internally, so the result does not depend on operand order.
func (t TwicePrecision) Add(v TwicePrecision) TwicePrecision {
	r := t.hi + v.hi
	var s float64
	if math.Abs(t.hi) > math.Abs(v.hi) {
		s = (((t.hi - r) + v.hi) + v.lo) + t.lo
	} else {
		s = (((v.hi - r) + t.hi) + t.lo) + v.lo
	}
	hi, lo := canonicalize2(r, s)
	return TwicePrecision{hi: hi, lo: lo}
}

func (t TwicePrecision) Sub(v TwicePrecision) TwicePrecision {
	return t.Add(v.Neg())
}

// MulInt64 multiplies by an integer scalar. The head is pre-truncated to
// v's bit length, which keeps the head product exact; only the tail
// product can round.
func (t TwicePrecision) MulInt64(v int64) TwicePrecision {
	if v == 0 {
		// Multiply rather than return zero so NaN and signed zero
		// propagate.
		return TwicePrecision{hi: t.hi * 0, lo: t.lo * 0}
	}
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	nb := uint(bits.Len64(mag - 1))
	u := truncbits(t.hi, nb)
	hi, lo := canonicalize2(u*float64(v), ((t.hi-u)+t.lo)*float64(v))
	return TwicePrecision{hi: hi, lo: lo}
}

// MulFloat64 multiplies by a general single-width scalar at full head/tail
// precision.
func (t TwicePrecision) MulFloat64(v float64) TwicePrecision {
	return t.Mul(TwicePrecisionFromFloat64(v))
}

// Mul multiplies two TwicePrecision values. A zero or non-finite head
// product short-circuits to the degraded pair unmodified.
func (t TwicePrecision) Mul(v TwicePrecision) TwicePrecision {
	zh, zl := mul12(t.hi, v.hi)
	if zh == 0 || math.IsInf(zh, 0) || math.IsNaN(zh) {
		return TwicePrecision{hi: zh, lo: zh}
	}
	hi, lo := canonicalize2(zh, (t.hi*v.lo+t.lo*v.hi)+zl)
	return TwicePrecision{hi: hi, lo: lo}
}

// Div divides two TwicePrecision values: a first approximation from the
// heads, then a residual correction in the style of a Newton-Raphson step.
// The zero/non-finite short-circuit policy matches Mul.
func (t TwicePrecision) Div(v TwicePrecision) TwicePrecision {
	hi := t.hi / v.hi
	if hi == 0 || math.IsInf(hi, 0) || math.IsNaN(hi) {
		return TwicePrecision{hi: hi, lo: hi}
	}
	uh, ul := mul12(hi, v.hi)
	lo := ((((t.hi - uh) - ul) + t.lo) - hi*v.lo) / v.hi
	h, l := canonicalize2(hi, lo)
	return TwicePrecision{hi: h, lo: l}
}

func (t TwicePrecision) DivFloat64(v float64) TwicePrecision {
	return t.Div(TwicePrecisionFromFloat64(v))
}

// Float64 rounds the pair to a single float64.
func (t TwicePrecision) Float64() float64 { return t.hi + t.lo }

// Float32 rounds the pair to a single float32, rounding once: the float64
// sum carries more than enough precision for the narrower target.
func (t TwicePrecision) Float32() float32 { return float32(t.hi + t.lo) }

// AsBigFloat returns the exact value of the pair. The precision spans the
// full distance from the largest normal exponent down to the last
// subnormal bit, so the sum is exact for any pair of finite words.
func (t TwicePrecision) AsBigFloat() *big.Float {
	b := new(big.Float).SetPrec(bigFloatPrec).SetFloat64(t.hi)
	return b.Add(b, new(big.Float).SetPrec(bigFloatPrec).SetFloat64(t.lo))
}

func (t TwicePrecision) String() string {
	return t.AsBigFloat().Text('g', 35)
}

// bigFloatPrec spans the widest possible exponent spread between head and
// tail (about 2098 bits for float64).
const bigFloatPrec = 2200
