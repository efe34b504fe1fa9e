package frange

import "golang.org/x/exp/constraints"

// Sequence is the capability set shared by the range representations:
// length, bounds-checked element access, summation, and the anchor/step
// pair rounded to the element type.
type Sequence[T constraints.Float] interface {
	Len() int
	At(i int) (T, error)
	Sum() T
	Ref() T
	Step() T
}

var (
	_ Sequence[float64] = Range64{}
	_ Sequence[float32] = Range32{}
)
