package token

// Position represents a location in a unit-expression string.
// Unit expressions are single-line, so there is no line component.
type Position struct {
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (column > 0).
func (p Position) IsValid() bool {
	return p.Column > 0
}
