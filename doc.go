/*
Package frange builds uniformly spaced floating-point ranges
(start:step:stop sequences) that reproduce their endpoints exactly despite
intermediate rounding error.

The classic failure this package exists to avoid:

	0.1 + 0.1 + 0.1 == 0.3 // false in float64

A range built here recovers the exact rational form of its inputs where one
exists (0.1 is 1/10), carries the reference point and step at twice
precision, and rounds only once when an element is read:

	r, _ := frange.Range64FromStep(0.1, 0.1, 0.3)
	v, _ := r.At(2)
	fmt.Println(v == 0.3)
	// Output: true

Range64 and Range32 are value types; all operations return new values.

Ranges can be created from a variety of parameter triples:

	Range64FromStep(start, step, stop float64) (Range64, error)
	Range64FromStepLen(start, step float64, n int) (Range64, error)
	Linspace64(start, stop float64, n int) (Range64, error)
	Range32FromStep(start, step, stop float32) (Range32, error)
	Range32FromStepLen(start, step float32, n int) (Range32, error)
	Linspace32(start, stop float32, n int) (Range32, error)

The underlying TwicePrecision head/tail arithmetic (Dekker error-free
transforms) is exported for callers that need to chain high-precision
computations of their own.
*/
package frange
