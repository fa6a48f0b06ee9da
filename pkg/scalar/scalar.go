// Package scalar provides Scalar, a numeric quantity bound to a physical
// unit. A Scalar's value is a single number or a fixed-length sequence;
// arithmetic is elementwise with scalar↔sequence broadcast, and every
// operation carries the unit through so that differently scaled but
// dimensionally compatible quantities combine correctly.
package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/dimensional/pkg/parser"
	"github.com/leapstack-labs/dimensional/pkg/registry"
	"github.com/leapstack-labs/dimensional/pkg/unit"
)

// Scalar is a numeric value bound to a unit expression. The stored value is
// always interpreted in the Scalar's current unit; Convert rescales the value
// and swaps the unit so the physical quantity is preserved.
//
// Scalars are replaced, not mutated, by arithmetic operations. Convert and
// ToBase are the explicit in-place exceptions.
type Scalar struct {
	values []float64
	single bool
	unit   unit.Expression
	reg    *registry.Registry
}

// New creates a single-valued Scalar from a value and a unit string.
// A nil registry means the built-in SI registry.
func New(reg *registry.Registry, value float64, unitExpr string) (*Scalar, error) {
	return newScalar(reg, []float64{value}, true, unitExpr)
}

// NewVector creates a sequence-valued Scalar. The slice is copied.
// A nil registry means the built-in SI registry.
func NewVector(reg *registry.Registry, values []float64, unitExpr string) (*Scalar, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("scalar: empty value sequence")
	}
	vs := make([]float64, len(values))
	copy(vs, values)
	return newScalar(reg, vs, false, unitExpr)
}

func newScalar(reg *registry.Registry, values []float64, single bool, unitExpr string) (*Scalar, error) {
	if reg == nil {
		reg = registry.Default()
	}
	u, err := parser.Parse(unitExpr, reg)
	if err != nil {
		return nil, err
	}
	return &Scalar{values: values, single: single, unit: u, reg: reg}, nil
}

// Value returns the numeric value of a single-valued Scalar, or the first
// element of a sequence.
func (s *Scalar) Value() float64 {
	return s.values[0]
}

// Values returns a copy of the value sequence. Single-valued Scalars return
// a one-element slice.
func (s *Scalar) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// IsVector reports whether the Scalar holds a value sequence.
func (s *Scalar) IsVector() bool { return !s.single }

// Len returns the number of value elements.
func (s *Scalar) Len() int { return len(s.values) }

// Unit returns the Scalar's unit expression.
func (s *Scalar) Unit() unit.Expression { return s.unit }

// UnitString returns the canonical rendering of the Scalar's unit.
func (s *Scalar) UnitString() string { return s.unit.String() }

// Clone returns an independent copy of the Scalar.
func (s *Scalar) Clone() *Scalar {
	vs := make([]float64, len(s.values))
	copy(vs, s.values)
	return &Scalar{values: vs, single: s.single, unit: s.unit, reg: s.reg}
}

// Convert rescales the Scalar in place onto the target unit and returns it
// for chaining. Fails with *unit.IncompatibleUnitsError when the target has a
// different dimension, and with parse/lookup errors for bad unit strings.
func (s *Scalar) Convert(target string) (*Scalar, error) {
	tgt, err := parser.Parse(target, s.reg)
	if err != nil {
		return nil, err
	}
	factor, err := s.unit.ConversionFactor(tgt)
	if err != nil {
		return nil, err
	}
	for i := range s.values {
		s.values[i] *= factor
	}
	s.unit = tgt
	return s, nil
}

// ToBase rewrites the Scalar in place onto the canonical SI base units
// (kg, m, s, A, K, mol, cd) and returns it for chaining.
func (s *Scalar) ToBase() *Scalar {
	factor := s.unit.Scale()
	for i := range s.values {
		s.values[i] *= factor
	}
	s.unit = s.unit.Canonical()
	return s
}

// Add returns s + o. The right operand is converted to the left operand's
// unit first; the result carries the left operand's unit. Fails with
// *unit.IncompatibleUnitsError on dimension mismatch.
func (s *Scalar) Add(o *Scalar) (*Scalar, error) {
	return s.addSub(o, "add", 1)
}

// Sub returns s - o, with the same conversion rules as Add.
func (s *Scalar) Sub(o *Scalar) (*Scalar, error) {
	return s.addSub(o, "subtract", -1)
}

func (s *Scalar) addSub(o *Scalar, op string, sign float64) (*Scalar, error) {
	if !s.unit.SameDimension(o.unit) {
		return nil, &unit.IncompatibleUnitsError{Op: op, Left: s.unit.String(), Right: o.unit.String()}
	}
	factor := o.unit.Scale() / s.unit.Scale()
	values, single, err := combine(s, o, func(a, b float64) float64 {
		return a + sign*b*factor
	})
	if err != nil {
		return nil, err
	}
	return &Scalar{values: values, single: single, unit: s.unit, reg: s.reg}, nil
}

// Mul returns s · o: values multiply elementwise and the unit expressions'
// exponent vectors add, cancelling exponents that sum to zero.
func (s *Scalar) Mul(o *Scalar) (*Scalar, error) {
	values, single, err := combine(s, o, func(a, b float64) float64 { return a * b })
	if err != nil {
		return nil, err
	}
	return &Scalar{values: values, single: single, unit: s.unit.Mul(o.unit), reg: s.reg}, nil
}

// Div returns s / o: values divide elementwise and the unit expressions'
// exponent vectors subtract.
func (s *Scalar) Div(o *Scalar) (*Scalar, error) {
	values, single, err := combine(s, o, func(a, b float64) float64 { return a / b })
	if err != nil {
		return nil, err
	}
	return &Scalar{values: values, single: single, unit: s.unit.Div(o.unit), reg: s.reg}, nil
}

// Pow returns s raised to the integer power n, elementwise, with every unit
// exponent multiplied by n.
func (s *Scalar) Pow(n int) *Scalar {
	values := make([]float64, len(s.values))
	for i, v := range s.values {
		values[i] = math.Pow(v, float64(n))
	}
	return &Scalar{values: values, single: s.single, unit: s.unit.Pow(unit.R(int64(n))), reg: s.reg}
}

// Equal reports whether s and o represent the same physical quantity,
// comparing elementwise after implicit conversion to a common unit. Scalars
// of different sequence lengths are unequal. Fails with
// *unit.IncompatibleUnitsError when the dimensions differ.
func (s *Scalar) Equal(o *Scalar) (bool, error) {
	if !s.unit.SameDimension(o.unit) {
		return false, &unit.IncompatibleUnitsError{Op: "compare", Left: s.unit.String(), Right: o.unit.String()}
	}
	if len(s.values) != len(o.values) || s.single != o.single {
		return false, nil
	}
	factor := o.unit.Scale() / s.unit.Scale()
	for i := range s.values {
		if !approxEqual(s.values[i], o.values[i]*factor) {
			return false, nil
		}
	}
	return true, nil
}

// Cmp orders two single-valued Scalars after implicit conversion to a common
// unit: -1 if s < o, 0 if equal, +1 if s > o. Fails with
// *unit.IncompatibleUnitsError on dimension mismatch and with a plain error
// for sequence-valued operands, which have no total order.
func (s *Scalar) Cmp(o *Scalar) (int, error) {
	if !s.unit.SameDimension(o.unit) {
		return 0, &unit.IncompatibleUnitsError{Op: "compare", Left: s.unit.String(), Right: o.unit.String()}
	}
	if !s.single || !o.single {
		return 0, fmt.Errorf("scalar: ordering requires single-valued operands")
	}
	a := s.values[0]
	b := o.values[0] * o.unit.Scale() / s.unit.Scale()
	switch {
	case approxEqual(a, b):
		return 0, nil
	case a < b:
		return -1, nil
	default:
		return 1, nil
	}
}

// String renders the value followed by the canonical unit, e.g. "2 kg" or
// "[1 8 27] cm^3".
func (s *Scalar) String() string {
	var b strings.Builder
	if s.single {
		b.WriteString(formatFloat(s.values[0]))
	} else {
		b.WriteString("[")
		for i, v := range s.values {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(formatFloat(v))
		}
		b.WriteString("]")
	}
	b.WriteString(" ")
	b.WriteString(s.unit.String())
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
