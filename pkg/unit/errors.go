package unit

import "fmt"

// IncompatibleUnitsError reports an operation between two unit expressions
// that do not share a dimensional signature.
type IncompatibleUnitsError struct {
	Op    string // "add", "subtract", "convert", "compare"
	Left  string // canonical rendering of the left operand's unit
	Right string // canonical rendering of the right operand's unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("incompatible units: cannot %s %q and %q", e.Op, e.Left, e.Right)
}
