package frange

import (
	"fmt"
	"math"
)

// Range32 is the float32 counterpart of Range64. A single float64 already
// carries more than twice a float32's precision, so the reference point
// and step are plain float64s rather than head/tail pairs; everything else
// follows Range64.
type Range32 struct {
	ref    float64
	step   float64
	n      int
	offset int
}

// Range32FromStep builds the range start, start+step, ... ending at the
// last value not beyond stop. See Range64FromStep.
func Range32FromStep(start, step, stop float32) (Range32, error) {
	if !isFinite32(start) || !isFinite32(step) || !isFinite32(stop) {
		return Range32{}, fmt.Errorf("%w: range(%v:%v:%v)", ErrNotFinite, start, step, stop)
	}
	if step == 0 {
		return Range32{}, fmt.Errorf("%w: range(%v:%v:%v)", ErrZeroStep, start, step, stop)
	}

	if startN, stepN, den, ok := stepRatio32(start, step); ok {
		n := int(math.Trunc(float64((float32(den)*stop - float32(startN) + float32(stepN)) / float32(stepN))))
		if n < 0 {
			n = 0
		}
		last := start + float32(n-1)*step
		past := start + float32(n)*step
		if isBetween(float64(start), float64(last), float64(stop+step/2)) &&
			!isBetween(float64(start), float64(past), float64(stop)) {
			return floatRange32(startN, stepN, n, den), nil
		}
	}

	lf := (stop - start) / step
	var n int
	if lf < 0 {
		n = 0
	} else if lf == 0 {
		n = 1
	} else if float64(lf) > maxIntFloat64 {
		return Range32{}, fmt.Errorf("%w: range(%v:%v:%v)", ErrLenOverflow, start, step, stop)
	} else {
		n = int(math.RoundToEven(float64(lf))) + 1
		last := start + float32(n-1)*step
		if (start < stop && stop < last) || (start > stop && stop > last) {
			n--
		}
	}
	return Range32{ref: float64(start), step: float64(step), n: n, offset: 1}, nil
}

// Range32FromStepLen builds a range from an explicit element count. A zero
// step is allowed here: the range is n copies of start.
func Range32FromStepLen(start, step float32, n int) (Range32, error) {
	if n < 0 {
		return Range32{}, fmt.Errorf("%w: length %d", ErrNegativeLen, n)
	}
	if !isFinite32(start) || !isFinite32(step) {
		return Range32{}, fmt.Errorf("%w: range(%v:%v:_), length %d", ErrNotFinite, start, step, n)
	}
	if startN, stepN, den, ok := stepRatio32(start, step); ok {
		return floatRange32(startN, stepN, n, den), nil
	}
	return Range32{ref: float64(start), step: float64(step), n: n, offset: 1}, nil
}

// Linspace32 builds a range of n evenly spaced values from start to stop
// inclusive, reproducing both endpoints exactly.
func Linspace32(start, stop float32, n int) (Range32, error) {
	if n < 0 {
		return Range32{}, fmt.Errorf("%w: length %d", ErrNegativeLen, n)
	}
	if !isFinite32(start) || !isFinite32(stop) {
		return Range32{}, fmt.Errorf("%w: linspace(%v, %v)", ErrNotFinite, start, stop)
	}
	if n <= 1 {
		if n == 1 && start != stop {
			return Range32{}, fmt.Errorf("%w: linspace(%v, %v, 1)", ErrBoundsMismatch, start, stop)
		}
		return Range32{ref: float64(start), n: n, offset: 1}, nil
	}
	if start == stop {
		return Range32{ref: float64(start), n: n, offset: 1}, nil
	}

	_, sd := ratApprox32(start)
	_, td := ratApprox32(stop)
	if sd != 0 && td != 0 {
		den := lcm64(sd, td)
		if den > 0 {
			fstart, fstop := float32(den)*start, float32(den)*stop
			if math.Abs(float64(fstart)) <= maxIntFloat32 && math.Abs(float64(fstop)) <= maxIntFloat32 {
				startN := int64(math.RoundToEven(float64(fstart)))
				stopN := int64(math.RoundToEven(float64(fstop)))
				if float32(startN)/float32(den) == start && float32(stopN)/float32(den) == stop {
					if r, ok := linspaceRatio32(startN, stopN, n, den); ok {
						return r, nil
					}
				}
			}
		}
	}
	return linspace32(start, stop, n), nil
}

// stepRatio32 is stepRatio64 with the reconstruction verified at float32
// width.
func stepRatio32(start, step float32) (startN, stepN, den int64, ok bool) {
	sn, sd := ratApprox32(start)
	tn, td := ratApprox32(step)
	if sd == 0 || td == 0 ||
		float32(sn)/float32(sd) != start || float32(tn)/float32(td) != step {
		return 0, 0, 0, false
	}
	den = lcm64(sd, td)
	if den <= 0 || den%sd != 0 || den%td != 0 {
		return 0, 0, 0, false
	}
	fstart, fstep := float32(den)*start, float32(den)*step
	if math.Abs(float64(fstart)) > maxIntFloat32 || math.Abs(float64(fstep)) > maxIntFloat32 {
		return 0, 0, 0, false
	}
	return int64(math.RoundToEven(float64(fstart))), int64(math.RoundToEven(float64(fstep))), den, true
}

// floatRange32 builds the range for the exact ratio form. The float64
// divisions round once each and still carry double a float32's precision.
func floatRange32(b, s int64, n int, den int64) Range32 {
	if n < 2 || s == 0 {
		return Range32{ref: float64(b) / float64(den), step: float64(s) / float64(den), n: n, offset: 1}
	}
	imin := clampInt(int(math.RoundToEven(-float64(b)/float64(s)+1)), 1, n)
	refN := b + int64(imin-1)*s
	return Range32{
		ref:    float64(refN) / float64(den),
		step:   float64(s) / float64(den),
		n:      n,
		offset: imin,
	}
}

// linspaceRatio32 builds the linspace from exact endpoint ratios. Reports
// false on widened-form overflow.
func linspaceRatio32(start, stop int64, n int, den int64) (Range32, bool) {
	tmin := -float64(start) / (float64(stop) - float64(start))
	imin := clampInt(int(math.RoundToEven(tmin*float64(n-1)+1)), 1, n)
	p1, ok1 := mul64Checked(int64(n-imin), start)
	p2, ok2 := mul64Checked(int64(imin-1), stop)
	refNum, ok3 := add64Checked(p1, p2)
	refDen, ok4 := mul64Checked(den, int64(n-1))
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Range32{}, false
	}
	return Range32{
		ref:    float64(refNum) / float64(refDen),
		step:   float64(stop-start) / float64(refDen),
		n:      n,
		offset: imin,
	}, true
}

// linspace32 is the direct fallback, computed entirely in float64 where a
// float32 range cannot overflow.
func linspace32(start, stop float32, n int) Range32 {
	bot, top := float64(start), float64(stop)
	d := top - bot
	tmin := -bot / d
	imin := clampInt(int(math.RoundToEven(tmin*float64(n-1)+1)), 1, n)
	return Range32{
		ref:    (float64(n-imin)*bot + float64(imin-1)*top) / float64(n-1),
		step:   d / float64(n-1),
		n:      n,
		offset: imin,
	}
}

// Len returns the number of elements.
func (r Range32) Len() int { return r.n }

// Offset returns the 0-based index of the element whose value the range
// stores exactly as its reference point.
func (r Range32) Offset() int { return r.offset - 1 }

// Ref returns the reference point rounded to float32.
func (r Range32) Ref() float32 { return float32(r.ref) }

// Step returns the step rounded to float32.
func (r Range32) Step() float32 { return float32(r.step) }

// At returns the i-th element (0-based). The shift and add run in
// float64; rounding to float32 happens once, at the end.
func (r Range32) At(i int) (float32, error) {
	if i < 0 || i >= r.n {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexRange, i, r.n)
	}
	return r.at(i), nil
}

func (r Range32) at(i int) float32 {
	u := float64(i + 1 - r.offset)
	return float32(r.ref + u*r.step)
}

// Sum returns the sum of all elements, accumulated in float64 with a
// single final rounding.
func (r Range32) Sum() float32 {
	if r.n == 0 {
		return 0
	}
	np, nn := r.n-r.offset, r.offset-1
	p1, p2 := sumPair(int64(np))
	n1, n2 := sumPair(int64(nn))
	dn := float64(p1)*float64(p2) - float64(n1)*float64(n2)
	return float32(r.step*dn + r.ref*float64(r.n))
}

// Slice returns the subrange [i, j), keeping the anchor when it stays
// inside the window.
func (r Range32) Slice(i, j int) (Range32, error) {
	if i < 0 || j < i || j > r.n {
		return Range32{}, fmt.Errorf("%w: slice [%d, %d), length %d", ErrIndexRange, i, j, r.n)
	}
	out := Range32{step: r.step, n: j - i}
	if out.n == 0 {
		out.ref = r.ref
		out.offset = 1
		return out, nil
	}
	if anchor := r.offset - 1 - i; anchor >= 0 && anchor < out.n {
		out.ref = r.ref
		out.offset = anchor + 1
	} else {
		out.ref = r.ref + float64(i+1-r.offset)*r.step
		out.offset = 1
	}
	return out, nil
}
