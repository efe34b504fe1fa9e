package frange

import "math"

// ratApprox recovers an integer ratio num/den approximating x by the
// continued-fraction recurrence. Terms are bounded by ratBound64; when the
// next convergent would breach the bound the previous one is returned
// instead. den > 0 on success; den == 0 means no approximation was found
// (NaN, infinities, or magnitudes beyond the bound).
//
// The result is best-effort, never an error: callers must check
// float64(num)/float64(den) == x before treating it as exact.
func ratApprox(x float64) (num, den int64) {
	m := float64(ratBound64)
	y := x
	var (
		a, d int64 = 1, 1
		b, c int64 = 0, 0
	)
	for math.Abs(y) <= m {
		f := int64(y) // truncate toward zero
		y -= float64(f)
		a, c = f*a+c, a
		b, d = f*b+d, b
		if maxAbs64(a, b) > ratBound64 {
			return ratNorm(c, d)
		}
		if float64(a)/float64(b) == x {
			break
		}
		y = 1 / y
	}
	return ratNorm(a, b)
}

// ratApprox32 is ratApprox for float32 values, with the tighter bound and
// the exactness test performed at float32 width.
func ratApprox32(x float32) (num, den int64) {
	m := float32(ratBound32)
	y := x
	var (
		a, d int64 = 1, 1
		b, c int64 = 0, 0
	)
	for abs32(y) <= m {
		f := int64(y)
		y -= float32(f)
		a, c = f*a+c, a
		b, d = f*b+d, b
		if maxAbs64(a, b) > ratBound32 {
			return ratNorm(c, d)
		}
		if float32(a)/float32(b) == x {
			break
		}
		y = 1 / y
	}
	return ratNorm(a, b)
}

// ratNorm fixes the denominator sign so den >= 0, with den == 0 reserved
// for "no approximation".
func ratNorm(n, d int64) (int64, int64) {
	if d < 0 {
		return -n, -d
	}
	return n, d
}

func maxAbs64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
