package frange

import "math"

// The kernels in this file are Dekker-style error-free transformations:
// each returns the rounded result of a float64 operation as a head word
// plus the exact (or FMA-exact) rounding error as a tail word.

// add12 returns x+y as a head/tail pair. By Dekker's theorem the pair is
// exact for any two finite operands under round-to-nearest.
func add12(x, y float64) (hi, lo float64) {
	if math.Abs(x) < math.Abs(y) {
		x, y = y, x
	}
	return canonicalize2(x, y)
}

// canonicalize2 renormalizes an approximate head/tail pair so that no
// significand bits overlap. The caller must ensure |big| >= |little|.
func canonicalize2(big, little float64) (hi, lo float64) {
	hi = big + little
	lo = (big - hi) + little
	return hi, lo
}

// mul12 returns x*y as a head/tail pair via an FMA two-product. A
// non-finite head degrades to (h, h) so downstream code can detect the
// failure from both words.
func mul12(x, y float64) (hi, lo float64) {
	h := x * y
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return h, h
	}
	return h, math.FMA(x, y, -h)
}

// div12 returns x/y as a head/tail pair. Both operands are brought to
// frexp form first so the FMA residual is never computed on subnormals;
// the exponent is re-applied at the end. A zero or non-finite quotient
// degrades to (r, r).
func div12(x, y float64) (hi, lo float64) {
	xs, xe := math.Frexp(x)
	ys, ye := math.Frexp(y)
	r := xs / ys
	if r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return r, r
	}
	rh, rl := canonicalize2(r, -math.FMA(r, ys, -xs)/ys)
	return math.Ldexp(rh, xe-ye), math.Ldexp(rl, xe-ye)
}
