package frange

const (
	prec64 = 53 // float64 significand bits, implicit bit included
	prec32 = 24

	// Half the significand, rounded up. An integer of at most this many
	// bits multiplies a matching truncated head exactly.
	halfPrec64 = (prec64 + 1) / 2
	halfPrec32 = (prec32 + 1) / 2

	// Largest integers n such that every integer in [0, n] is exactly
	// representable at each width.
	maxIntFloat64 = float64(1 << prec64) // 9007199254740992
	maxIntFloat32 = float64(1 << prec32) // 16777216

	// Bounds for the continued-fraction recurrence. Capping the terms at
	// the largest exact integer of the next-narrower float width keeps the
	// recurrence far clear of int64 overflow and stops it from chasing
	// noise bits.
	ratBound64 = int64(1) << prec32
	ratBound32 = int64(1) << 11
)
