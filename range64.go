package frange

import (
	"fmt"
	"math"
)

// Range64 is an immutable, uniformly spaced sequence of float64 values.
// The reference point and step are carried at twice precision so that
// indexed reads match direct computation to within one ulp and constructed
// endpoints are reproduced exactly.
//
// The zero value is an empty range.
type Range64 struct {
	ref    TwicePrecision
	step   TwicePrecision
	n      int
	offset int // 1-based index of the element ref stores exactly
}

// Range64FromStep builds the range start, start+step, ... ending at the
// last value not beyond stop. When start and step both have verified exact
// rational forms the range is built from the ratio form and every element
// whose true value is representable is reproduced exactly; otherwise start
// and step are taken literally.
func Range64FromStep(start, step, stop float64) (Range64, error) {
	if !isFinite(start) || !isFinite(step) || !isFinite(stop) {
		return Range64{}, fmt.Errorf("%w: range(%v:%v:%v)", ErrNotFinite, start, step, stop)
	}
	if step == 0 {
		return Range64{}, fmt.Errorf("%w: range(%v:%v:%v)", ErrZeroStep, start, step, stop)
	}

	if startN, stepN, den, ok := stepRatio64(start, step); ok {
		fn := math.Trunc((float64(den)*stop - float64(startN) + float64(stepN)) / float64(stepN))
		if fn > maxIntFloat64 {
			return Range64{}, fmt.Errorf("%w: range(%v:%v:%v)", ErrLenOverflow, start, step, stop)
		}
		n := int(fn)
		if n < 0 {
			n = 0
		}
		// The integer path could have overflowed somewhere; only trust it
		// if the implied endpoints still bracket stop.
		last := start + float64(n-1)*step
		past := start + float64(n)*step
		if isBetween(start, last, stop+step/2) && !isBetween(start, past, stop) {
			return floatRange64(startN, stepN, n, den), nil
		}
	}

	// Fallback: take start and step literally and infer the length.
	lf := (stop - start) / step
	var n int
	if lf < 0 {
		n = 0
	} else if lf == 0 {
		n = 1
	} else if lf > maxIntFloat64 {
		// Converting an oversized float to int is implementation-defined;
		// refuse rather than hand back a garbage length.
		return Range64{}, fmt.Errorf("%w: range(%v:%v:%v)", ErrLenOverflow, start, step, stop)
	} else {
		n = int(math.RoundToEven(lf)) + 1
		last := start + float64(n-1)*step
		// Rounding can overshoot stop by one element.
		if (start < stop && stop < last) || (start > stop && stop > last) {
			n--
		}
	}
	return stepRangeLen64(start, step, 0, n, 1), nil
}

// Range64FromStepLen builds a range from an explicit element count. A zero
// step is allowed here: the range is n copies of start.
func Range64FromStepLen(start, step float64, n int) (Range64, error) {
	if n < 0 {
		return Range64{}, fmt.Errorf("%w: length %d", ErrNegativeLen, n)
	}
	if !isFinite(start) || !isFinite(step) {
		return Range64{}, fmt.Errorf("%w: range(%v:%v:_), length %d", ErrNotFinite, start, step, n)
	}
	if startN, stepN, den, ok := stepRatio64(start, step); ok {
		return floatRange64(startN, stepN, n, den), nil
	}
	return stepRangeLen64(start, step, 0, n, 1), nil
}

// Linspace64 builds a range of n evenly spaced values from start to stop
// inclusive, reproducing both endpoints exactly.
func Linspace64(start, stop float64, n int) (Range64, error) {
	if n < 0 {
		return Range64{}, fmt.Errorf("%w: length %d", ErrNegativeLen, n)
	}
	if !isFinite(start) || !isFinite(stop) {
		return Range64{}, fmt.Errorf("%w: linspace(%v, %v)", ErrNotFinite, start, stop)
	}
	if n <= 1 {
		if n == 1 && start != stop {
			return Range64{}, fmt.Errorf("%w: linspace(%v, %v, 1)", ErrBoundsMismatch, start, stop)
		}
		return stepRangeLen64(start, 0, 0, n, 1), nil
	}
	if start == stop {
		return stepRangeLen64(start, 0, 0, n, 1), nil
	}

	// Prefer verified exact rational forms of both endpoints. Only the
	// denominators matter: the numerators are re-derived over the common
	// denominator below.
	_, sd := ratApprox(start)
	_, td := ratApprox(stop)
	if sd != 0 && td != 0 {
		den := lcm64(sd, td)
		if den != 0 {
			fstart, fstop := float64(den)*start, float64(den)*stop
			if math.Abs(fstart) <= maxIntFloat64 && math.Abs(fstop) <= maxIntFloat64 {
				startN := int64(math.RoundToEven(fstart))
				stopN := int64(math.RoundToEven(fstop))
				if float64(startN)/float64(den) == start && float64(stopN)/float64(den) == stop {
					if r, ok := linspaceRatio64(startN, stopN, n, den); ok {
						return r, nil
					}
				}
			}
		}
	}
	return linspace64(start, stop, n), nil
}

// stepRatio64 attempts the exact rational form of a step range: both start
// and step must reconstruct exactly and must scale to safe integers over
// the common denominator.
func stepRatio64(start, step float64) (startN, stepN, den int64, ok bool) {
	sn, sd := ratApprox(start)
	tn, td := ratApprox(step)
	if sd == 0 || td == 0 ||
		float64(sn)/float64(sd) != start || float64(tn)/float64(td) != step {
		return 0, 0, 0, false
	}
	den = lcm64(sd, td)
	// lcm is unchecked; divisibility failing means it overflowed.
	if den <= 0 || den%sd != 0 || den%td != 0 {
		return 0, 0, 0, false
	}
	fstart, fstep := float64(den)*start, float64(den)*step
	if math.Abs(fstart) > maxIntFloat64 || math.Abs(fstep) > maxIntFloat64 {
		return 0, 0, 0, false
	}
	return int64(math.RoundToEven(fstart)), int64(math.RoundToEven(fstep)), den, true
}

// floatRange64 builds the twice-precision range for the exact ratio form
// (start = b/den, step = s/den), anchored at the smallest-magnitude
// element to minimize absolute error across the range.
func floatRange64(b, s int64, n int, den int64) Range64 {
	if n < 2 || s == 0 {
		return Range64{
			ref:    TwicePrecisionFromRatio(b, den),
			step:   TwicePrecisionFromRatio(s, den),
			n:      n,
			offset: 1,
		}
	}
	imin := clampInt(int(math.RoundToEven(-float64(b)/float64(s)+1)), 1, n)
	// imin-1 is within |b/s| of zero, so refN stays near den*start and
	// inside the checked integer bound.
	refN := b + int64(imin-1)*s
	nb := nbitslen(n, imin)
	return Range64{
		ref:    TwicePrecisionFromRatio(refN, den),
		step:   twicePrecisionRatioTrunc(s, den, nb),
		n:      n,
		offset: imin,
	}
}

// stepRangeLen64 builds a range from literal float64 start/step values,
// with nb trailing zero bits shaved off the step's head.
func stepRangeLen64(ref, step float64, nb uint, n, offset int) Range64 {
	return Range64{
		ref:    TwicePrecisionFromFloat64(ref),
		step:   TwicePrecisionFromFloat64(step).truncHi(nb),
		n:      n,
		offset: offset,
	}
}

// linspaceRatio64 builds the twice-precision linspace from exact endpoint
// ratios start/den and stop/den. Reports false when the widened integer
// forms would overflow, in which case the caller falls back to the direct
// path.
func linspaceRatio64(start, stop int64, n int, den int64) (Range64, bool) {
	// n >= 2 and start != stop by the time we get here.
	tmin := -float64(start) / (float64(stop) - float64(start))
	imin := clampInt(int(math.RoundToEven(tmin*float64(n-1)+1)), 1, n)

	// ref = ((n-imin)*start + (imin-1)*stop) / (den*(n-1)), all exact.
	p1, ok1 := mul64Checked(int64(n-imin), start)
	p2, ok2 := mul64Checked(int64(imin-1), stop)
	refNum, ok3 := add64Checked(p1, p2)
	refDen, ok4 := mul64Checked(den, int64(n-1))
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Range64{}, false
	}
	nb := nbitslen(n, imin)
	return Range64{
		ref:    TwicePrecisionFromRatio(refNum, refDen),
		step:   twicePrecisionRatioTrunc(stop-start, refDen, nb),
		n:      n,
		offset: imin,
	}, true
}

// linspace64 is the direct-computation fallback: anchor at the interior
// element nearest zero, clamp the step away from overflow at the extreme
// index offsets, then recover the low-order step and reference words from
// the endpoint residuals.
func linspace64(start, stop float64, n int) Range64 {
	// n >= 2 and both endpoints finite by the time we get here.
	d, dfac := stop-start, 1.0
	if math.IsInf(d, 0) {
		// Endpoints too far apart to subtract directly: scale both down.
		d = stop/float64(n) - start/float64(n)
		dfac = float64(n)
	}
	tmin := -(start / d) / dfac // t such that (1-t)*start + t*stop == 0
	n1 := float64(n - 1)
	imin := int(math.RoundToEven(tmin*n1 + 1))

	var ref, step float64
	if 1 < imin && imin < n {
		// Smallest-magnitude element is interior.
		t := float64(imin-1) / n1
		ref = (1-t)*start + t*stop
		if imin-1 < n-imin {
			step = (ref - start) / float64(imin-1)
		} else {
			step = (stop - ref) / float64(n-imin)
		}
	} else if imin <= 1 {
		imin = 1
		ref = start
		step = (d / n1) * dfac
	} else {
		imin = n
		ref = stop
		step = (d / n1) * dfac
	}

	if n == 2 && math.IsInf(step, 0) {
		// The step itself overflows. Store it as the uncanonicalized pair
		// (-start, stop): each endpoint read then cancels exactly without
		// ever forming stop-start.
		return Range64{
			ref:    TwicePrecisionFromFloat64(start),
			step:   TwicePrecisionFromRaw(-start, stop),
			n:      2,
			offset: 1,
		}
	}

	// Clamp the step head so ref + (i-offset)*step stays finite at both
	// ends, then derive the low words that make the endpoints exact.
	m := math.Nextafter(math.MaxFloat64, 0)
	k := float64(max(imin-1, n-imin))
	stepHi := clampFloat(step, math.Max(-(m+ref)/k, (-m+ref)/k), math.Min((m-ref)/k, (m+ref)/k))
	stepHi = truncbits(stepHi, nbitslen(n, imin))
	x1Hi, x1Lo := add12(float64(1-imin)*stepHi, ref)
	x2Hi, x2Lo := add12(float64(n-imin)*stepHi, ref)
	a := (start - x1Hi) - x1Lo
	b := (stop - x2Hi) - x2Lo
	stepLo := (b - a) / n1
	refLo := a - float64(1-imin)*stepLo
	if imin == n {
		// The anchor is the stop endpoint and reads the reference words
		// directly; any residual left in the tail would shift it. The
		// whole correction lives in stepLo (b is zero here), and the
		// far endpoint is the large one, so it absorbs the sub-ulp
		// rounding of (1-n)*stepLo.
		refLo = 0
	}
	return Range64{
		ref:    TwicePrecisionFromRaw(ref, refLo),
		step:   TwicePrecisionFromRaw(stepHi, stepLo),
		n:      n,
		offset: imin,
	}
}

// Len returns the number of elements.
func (r Range64) Len() int { return r.n }

// Offset returns the 0-based index of the element whose value the range
// stores exactly as its reference point.
func (r Range64) Offset() int { return r.offset - 1 }

// Ref returns the reference point rounded to float64.
func (r Range64) Ref() float64 { return r.ref.Float64() }

// RefHiPrec returns the unrounded reference point.
func (r Range64) RefHiPrec() TwicePrecision { return r.ref }

// Step returns the step rounded to float64.
func (r Range64) Step() float64 { return r.step.Float64() }

// StepHiPrec returns the unrounded step.
func (r Range64) StepHiPrec() TwicePrecision { return r.step }

// At returns the i-th element (0-based). All intermediate math runs at
// twice precision; rounding to float64 happens once, at the end.
func (r Range64) At(i int) (float64, error) {
	if i < 0 || i >= r.n {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexRange, i, r.n)
	}
	return r.at(i), nil
}

func (r Range64) at(i int) float64 {
	u := float64(i + 1 - r.offset)
	shiftHi, shiftLo := u*r.step.hi, u*r.step.lo
	xHi, xLo := add12(r.ref.hi, shiftHi)
	return xHi + (xLo + (shiftLo + r.ref.lo))
}

// atHiPrec is at() without the final rounding, for internal chaining.
func (r Range64) atHiPrec(i int) TwicePrecision {
	return r.ref.Add(r.step.MulInt64(int64(i + 1 - r.offset)))
}

// Sum returns the sum of all elements, accumulated at twice precision with
// a single final rounding.
func (r Range64) Sum() float64 {
	if r.n == 0 {
		return 0
	}
	// Elements on either side of the anchor contribute step multiples of
	// opposite sign: step * (sum(1..np) - sum(1..nn)).
	np, nn := r.n-r.offset, r.offset-1
	p1, p2 := sumPair(int64(np))
	n1, n2 := sumPair(int64(nn))
	dhi, dlo, neg := diffProd128(p1, p2, n1, n2)
	s := r.step.Mul(twicePrecisionFromUint128(dhi, dlo, neg))
	return s.Add(r.ref.MulInt64(int64(r.n))).Float64()
}

// Slice returns the subrange [i, j). The high-precision anchor is kept
// when it stays inside the window; otherwise the first retained element is
// recomputed at high precision and becomes the new anchor.
func (r Range64) Slice(i, j int) (Range64, error) {
	if i < 0 || j < i || j > r.n {
		return Range64{}, fmt.Errorf("%w: slice [%d, %d), length %d", ErrIndexRange, i, j, r.n)
	}
	out := Range64{step: r.step, n: j - i}
	if out.n == 0 {
		out.ref = r.ref
		out.offset = 1
		return out, nil
	}
	if anchor := r.offset - 1 - i; anchor >= 0 && anchor < out.n {
		out.ref = r.ref
		out.offset = anchor + 1
	} else {
		out.ref = r.atHiPrec(i)
		out.offset = 1
	}
	return out, nil
}
