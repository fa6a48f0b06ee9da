package scalar

import (
	"errors"
	"math"
)

// ErrLengthMismatch is returned when two sequence-valued Scalars of different
// lengths are combined.
var ErrLengthMismatch = errors.New("value sequences have different lengths")

// combine applies op elementwise across two Scalars' values, broadcasting a
// single value against a sequence. Two sequences must have equal length.
func combine(l, r *Scalar, op func(a, b float64) float64) (values []float64, single bool, err error) {
	if !l.single && !r.single && len(l.values) != len(r.values) {
		return nil, false, ErrLengthMismatch
	}

	n := max(len(l.values), len(r.values))
	values = make([]float64, n)
	for i := range values {
		values[i] = op(elem(l, i), elem(r, i))
	}
	return values, l.single && r.single, nil
}

// elem returns the i-th element, broadcasting single values.
func elem(s *Scalar, i int) float64 {
	if s.single {
		return s.values[0]
	}
	return s.values[i]
}

// approxEqual compares two values with a relative floating tolerance, since
// converted values pass through scale-factor multiplication.
func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}
