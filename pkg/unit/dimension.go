// Package unit provides the core value types for dimensional analysis:
// physical dimensions, exact rational exponents, and immutable unit
// expressions that carry a dimensional exponent vector together with an
// aggregate scale factor relative to the SI base units.
package unit

// Dimension is one of the seven SI base dimensions.
type Dimension int

const (
	Mass Dimension = iota
	Length
	Time
	Current
	Temperature
	Amount
	Luminosity

	// NumDimensions is the number of base dimensions; valid Dimension
	// values are in [0, NumDimensions).
	NumDimensions
)

// String returns the dimension name, e.g. "mass".
func (d Dimension) String() string {
	switch d {
	case Mass:
		return "mass"
	case Length:
		return "length"
	case Time:
		return "time"
	case Current:
		return "current"
	case Temperature:
		return "temperature"
	case Amount:
		return "amount"
	case Luminosity:
		return "luminosity"
	default:
		return "unknown"
	}
}

// Symbol returns the symbol of the canonical SI base unit for the dimension,
// e.g. "kg" for mass.
func (d Dimension) Symbol() string {
	switch d {
	case Mass:
		return "kg"
	case Length:
		return "m"
	case Time:
		return "s"
	case Current:
		return "A"
	case Temperature:
		return "K"
	case Amount:
		return "mol"
	case Luminosity:
		return "cd"
	default:
		return ""
	}
}

// DimensionFromName resolves a dimension by its name as used in registry
// definitions. Returns false for unknown names.
func DimensionFromName(name string) (Dimension, bool) {
	switch name {
	case "mass":
		return Mass, true
	case "length":
		return Length, true
	case "time":
		return Time, true
	case "current":
		return Current, true
	case "temperature":
		return Temperature, true
	case "amount":
		return Amount, true
	case "luminosity":
		return Luminosity, true
	default:
		return 0, false
	}
}
