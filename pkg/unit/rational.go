package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// Rational is an exact rational exponent. The zero value is 0.
// Rationals are kept reduced with a positive denominator.
type Rational struct {
	num int64
	den int64 // > 0 once normalized; 0 is treated as 1
}

// R returns the integer n as a Rational.
func R(n int64) Rational {
	return Rational{num: n, den: 1}
}

// NewRational returns num/den reduced to lowest terms.
// A zero denominator panics: exponents never divide by zero.
func NewRational(num, den int64) Rational {
	if den == 0 {
		panic("unit: rational exponent with zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs64(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Rational{num: num, den: den}
}

// ParseRational parses an exponent literal: an integer ("2", "-2") or a
// decimal ("0.5", "-1.5"), reduced to an exact rational.
func ParseRational(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("empty exponent")
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart := s[:i], s[i+1:]
		if fracPart == "" {
			return Rational{}, fmt.Errorf("invalid exponent %q", s)
		}
		neg := strings.HasPrefix(intPart, "-")
		intPart = strings.TrimPrefix(strings.TrimPrefix(intPart, "-"), "+")
		if intPart == "" {
			intPart = "0"
		}
		whole, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return Rational{}, fmt.Errorf("invalid exponent %q", s)
		}
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil || frac < 0 {
			return Rational{}, fmt.Errorf("invalid exponent %q", s)
		}
		den := int64(1)
		for range len(fracPart) {
			den *= 10
		}
		num := whole*den + frac
		if neg {
			num = -num
		}
		return NewRational(num, den), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("invalid exponent %q", s)
	}
	return R(n), nil
}

func (r Rational) normalized() Rational {
	if r.den == 0 {
		return Rational{num: r.num, den: 1}
	}
	return r
}

// Num returns the numerator.
func (r Rational) Num() int64 { return r.normalized().num }

// Den returns the denominator (always positive).
func (r Rational) Den() int64 { return r.normalized().den }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	r, o = r.normalized(), o.normalized()
	return NewRational(r.num*o.den+o.num*r.den, r.den*o.den)
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	r, o = r.normalized(), o.normalized()
	return NewRational(r.num*o.num, r.den*o.den)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	r = r.normalized()
	return Rational{num: -r.num, den: r.den}
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.normalized().num == 0 }

// Sign returns -1, 0 or 1.
func (r Rational) Sign() int {
	switch n := r.normalized().num; {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// IsInteger reports whether r is a whole number.
func (r Rational) IsInteger() bool { return r.normalized().den == 1 }

// IsOne reports whether r == 1.
func (r Rational) IsOne() bool {
	r = r.normalized()
	return r.num == 1 && r.den == 1
}

// Equal reports whether r == o.
func (r Rational) Equal(o Rational) bool {
	r, o = r.normalized(), o.normalized()
	return r.num == o.num && r.den == o.den
}

// Float64 returns the rational as a float64.
func (r Rational) Float64() float64 {
	r = r.normalized()
	return float64(r.num) / float64(r.den)
}

// String renders the rational as "2", "-2" or "1/2".
func (r Rational) String() string {
	r = r.normalized()
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
