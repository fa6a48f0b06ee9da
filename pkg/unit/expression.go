package unit

import (
	"maps"
	"math"
	"slices"
	"strings"
)

// Expression is an immutable unit expression: a product of unit atoms raised
// to rational exponents. It carries three views of the same unit:
//
//   - terms: the concrete atoms as written or combined ("cm" → 1, "J" → 1),
//     used for rendering, so that "cm" squared prints as "cm^2" rather than
//     being silently rewritten onto base units;
//   - dims: the dimensional exponent vector over the SI base dimensions,
//     used for compatibility checks;
//   - scale: the aggregate multiplicative factor relative to the canonical
//     SI base combination (e.g. 0.001 for "g", 1e-4 for "cm^2").
//
// All combining methods return a new Expression.
type Expression struct {
	terms map[string]Rational
	dims  [NumDimensions]Rational
	scale float64
}

// One returns the dimensionless unit expression, rendered as "1".
func One() Expression {
	return Expression{scale: 1}
}

// NewBase returns an expression for a single atom of a base dimension,
// e.g. NewBase("g", Mass, 1e-3) or NewBase("cm", Length, 1e-2).
func NewBase(name string, d Dimension, scale float64) Expression {
	e := Expression{scale: scale}
	if name != "" {
		e.terms = map[string]Rational{name: R(1)}
	}
	e.dims[d] = R(1)
	return e
}

// NewDerived returns an expression for a named derived atom whose dimensional
// signature comes from its expansion, e.g. NewDerived("kN", expansionOfNewton, 1e3).
// The expansion's own scale is folded into the result.
func NewDerived(name string, expansion Expression, scale float64) Expression {
	e := Expression{
		dims:  expansion.dims,
		scale: expansion.Scale() * scale,
	}
	if name != "" {
		e.terms = map[string]Rational{name: R(1)}
	}
	return e
}

// Scale returns the aggregate scale factor relative to the SI base
// combination.
func (e Expression) Scale() float64 {
	if e.scale == 0 {
		// zero value acts as the dimensionless unit
		return 1
	}
	return e.scale
}

// Exponent returns the exponent of the given base dimension.
func (e Expression) Exponent(d Dimension) Rational {
	return e.dims[d].normalized()
}

// IsDimensionless reports whether every dimension exponent is zero.
func (e Expression) IsDimensionless() bool {
	for _, x := range e.dims {
		if !x.IsZero() {
			return false
		}
	}
	return true
}

// SameDimension reports whether e and o have identical dimensional exponent
// vectors, i.e. measure the same physical quantity.
func (e Expression) SameDimension(o Expression) bool {
	for d := range NumDimensions {
		if !e.dims[d].Equal(o.dims[d]) {
			return false
		}
	}
	return true
}

// Mul returns the product e·o: term and dimension exponents add, scales
// multiply. Terms whose exponents cancel to zero are dropped.
func (e Expression) Mul(o Expression) Expression {
	out := Expression{scale: e.Scale() * o.Scale()}
	out.terms = mergeTerms(e.terms, o.terms, false)
	for d := range NumDimensions {
		out.dims[d] = e.dims[d].Add(o.dims[d])
	}
	return out
}

// Div returns the quotient e/o.
func (e Expression) Div(o Expression) Expression {
	out := Expression{scale: e.Scale() / o.Scale()}
	out.terms = mergeTerms(e.terms, o.terms, true)
	for d := range NumDimensions {
		out.dims[d] = e.dims[d].Sub(o.dims[d])
	}
	return out
}

// Pow returns e raised to the rational power r: every exponent is multiplied
// by r and the scale is raised to the corresponding floating power.
func (e Expression) Pow(r Rational) Expression {
	if r.IsZero() {
		return One()
	}
	out := Expression{scale: math.Pow(e.Scale(), r.Float64())}
	if len(e.terms) > 0 {
		out.terms = make(map[string]Rational, len(e.terms))
		for name, exp := range e.terms {
			out.terms[name] = exp.Mul(r)
		}
	}
	for d := range NumDimensions {
		out.dims[d] = e.dims[d].Mul(r)
	}
	return out
}

// Inverse returns 1/e.
func (e Expression) Inverse() Expression {
	return One().Div(e)
}

// ConversionFactor returns the factor by which a numeric value expressed in
// e must be multiplied to express it in target. Fails with
// *IncompatibleUnitsError when the two expressions differ in dimension.
func (e Expression) ConversionFactor(target Expression) (float64, error) {
	if !e.SameDimension(target) {
		return 0, &IncompatibleUnitsError{Op: "convert", Left: e.String(), Right: target.String()}
	}
	return e.Scale() / target.Scale(), nil
}

// Canonical returns the same physical unit rewritten onto the canonical SI
// base atoms (kg, m, s, A, K, mol, cd) with scale 1. A value in e becomes a
// value in e.Canonical() when multiplied by e.Scale().
func (e Expression) Canonical() Expression {
	out := Expression{scale: 1, dims: e.dims}
	for d := range NumDimensions {
		if !e.dims[d].IsZero() {
			if out.terms == nil {
				out.terms = make(map[string]Rational)
			}
			out.terms[d.Symbol()] = e.dims[d].normalized()
		}
	}
	return out
}

// Equal reports whether e and o are the same unit expression: identical
// terms, identical dimension vector and matching scale (within a relative
// floating tolerance).
func (e Expression) Equal(o Expression) bool {
	if !e.SameDimension(o) {
		return false
	}
	if !approxEqual(e.Scale(), o.Scale()) {
		return false
	}
	if len(e.terms) != len(o.terms) {
		return false
	}
	for name, exp := range e.terms {
		if oexp, ok := o.terms[name]; !ok || !exp.Equal(oexp) {
			return false
		}
	}
	return true
}

// String renders the canonical form: terms grouped into numerator and
// denominator, each sorted alphabetically by atom name, exponents other than
// one rendered as "^n". A dimensionless expression renders as "1" and a
// pure-denominator expression as "1/...".
func (e Expression) String() string {
	num, den := e.splitTerms()
	if len(num) == 0 && len(den) == 0 {
		return "1"
	}

	var b strings.Builder
	if len(num) == 0 {
		b.WriteString("1")
	} else {
		for i, t := range num {
			if i > 0 {
				b.WriteString("*")
			}
			writeTerm(&b, t.name, t.exp)
		}
	}
	if len(den) > 0 {
		b.WriteString("/")
		for i, t := range den {
			if i > 0 {
				b.WriteString("*")
			}
			writeTerm(&b, t.name, t.exp.Neg())
		}
	}
	return b.String()
}

// LaTeX renders the expression as a dot-separated product with braced
// exponents, denominator terms carrying negative exponents, e.g.
// "kg^{2}.m^{3}.A^{-1}". A dimensionless expression renders as "".
func (e Expression) LaTeX() string {
	num, den := e.splitTerms()
	terms := append(num, den...)
	if len(terms) == 0 {
		return ""
	}
	var b strings.Builder
	for i, t := range terms {
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(t.name)
		if !t.exp.IsOne() {
			b.WriteString("^{")
			b.WriteString(t.exp.String())
			b.WriteString("}")
		}
	}
	return b.String()
}

type term struct {
	name string
	exp  Rational
}

// splitTerms partitions terms into numerator and denominator, each sorted
// alphabetically by atom name.
func (e Expression) splitTerms() (num, den []term) {
	for _, name := range slices.Sorted(maps.Keys(e.terms)) {
		exp := e.terms[name]
		if exp.Sign() > 0 {
			num = append(num, term{name, exp})
		} else if exp.Sign() < 0 {
			den = append(den, term{name, exp})
		}
	}
	return num, den
}

func writeTerm(b *strings.Builder, name string, exp Rational) {
	b.WriteString(name)
	if !exp.IsOne() {
		b.WriteString("^")
		b.WriteString(exp.String())
	}
}

// mergeTerms adds (or, when invert is set, subtracts) the right term map into
// the left one, dropping entries that cancel to zero.
func mergeTerms(left, right map[string]Rational, invert bool) map[string]Rational {
	if len(left) == 0 && len(right) == 0 {
		return nil
	}
	out := make(map[string]Rational, len(left)+len(right))
	maps.Copy(out, left)
	for name, exp := range right {
		if invert {
			exp = exp.Neg()
		}
		sum := out[name].Add(exp)
		if sum.IsZero() {
			delete(out, name)
		} else {
			out[name] = sum
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// approxEqual compares scale factors with a relative tolerance, since equal
// units can be assembled through different multiplication orders.
func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}
