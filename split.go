package frange

import (
	"math"
	"math/bits"
)

// truncbits zeroes the low nb bits of x's raw IEEE-754 representation.
// This is a bit mask, not an arithmetic rounding: the result always lies
// between zero and x.
func truncbits(x float64, nb uint) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ (1<<nb - 1))
}

func truncbits32(x float32, nb uint) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1<<nb - 1))
}

// splitPrec splits i into head and tail float64s with hi truncated to the
// top half of the significand, so that hi survives exact multiplication by
// any half-precision integer. The sum hi+lo reproduces i exactly whenever
// i fits in 1.5x the significand width; at 79 bits for float64 that covers
// every int64.
func splitPrec(i int64) (hi, lo float64) {
	hi = truncbits(float64(i), halfPrec64)
	lo = float64(i - int64(hi))
	return hi, lo
}

func splitPrec32(i int64) (hi, lo float32) {
	hi = truncbits32(float32(i), halfPrec32)
	lo = float32(i - int64(hi))
	return hi, lo
}

// nbitslen is the number of trailing zero bits a step's head needs so that
// multiplying it by any index offset inside an n-element range anchored at
// offset (1-based) stays exact. Capped at half the significand so the head
// keeps at least half its precision.
func nbitslen(n, offset int) uint {
	if n < 2 {
		return 0
	}
	k := offset - 1
	if n-offset > k {
		k = n - offset
	}
	// +1 for safety: the leading significand bit is implicit, not stored.
	nb := uint(bits.Len(uint(k-1))) + 1
	if nb > halfPrec64 {
		nb = halfPrec64
	}
	return nb
}
