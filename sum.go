package frange

import "math/bits"

// Support for exact range summation. The sum of 1..n is n*(n+1)/2, kept as
// a factor pair so nothing overflows before the product is taken at 128
// bits.

// sumPair factors sum(1..n) into two non-negative integers whose product
// is the sum, halving the even factor up front.
func sumPair(n int64) (int64, int64) {
	if n&1 == 0 {
		return n + 1, n >> 1
	}
	return n, (n + 1) >> 1
}

// diffProd128 computes a1*a2 - b1*b2 in 128 bits. Inputs must be
// non-negative; the result is a magnitude pair plus sign.
func diffProd128(a1, a2, b1, b2 int64) (hi, lo uint64, neg bool) {
	phi, plo := bits.Mul64(uint64(a1), uint64(a2))
	nhi, nlo := bits.Mul64(uint64(b1), uint64(b2))
	if nhi > phi || (nhi == phi && nlo > plo) {
		phi, plo, nhi, nlo = nhi, nlo, phi, plo
		neg = true
	}
	var borrow uint64
	lo, borrow = bits.Sub64(plo, nlo, 0)
	hi, _ = bits.Sub64(phi, nhi, borrow)
	return hi, lo, neg
}

// twicePrecisionFromUint128 converts a 128-bit magnitude to twice
// precision. The value is cut into three chunks of at most 43 bits, each
// exactly representable; folding them back together rounds only once, in
// the pair's tail, so the result carries the full 128-bit value to better
// than 104 bits.
func twicePrecisionFromUint128(hi, lo uint64, neg bool) TwicePrecision {
	c2 := float64(hi>>22) * 0x1p86
	c1 := float64((hi&(1<<22-1))<<21|lo>>43) * 0x1p43
	c0 := float64(lo & (1<<43 - 1))
	t := TwicePrecisionFromFloat64(c2).AddFloat64(c1).AddFloat64(c0)
	if neg {
		t = t.Neg()
	}
	return t
}
