package frange

import "math"

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isFinite32(f float32) bool {
	return isFinite(float64(f))
}

// isBetween reports whether x lies between a and b inclusive, in either
// direction.
func isBetween(a, x, b float64) bool {
	return (a <= x && x <= b) || (b <= x && x <= a)
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm64 is unchecked: it can overflow for large coprime inputs. Callers
// guard by re-verifying divisibility or the value reconstructed from the
// result.
func lcm64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd64(a, b) * b
}

// mul64Checked multiplies two int64s, reporting whether the product fit.
func mul64Checked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// add64Checked adds two int64s, reporting whether the sum fit.
func add64Checked(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}
