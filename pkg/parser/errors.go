package parser

import (
	"fmt"

	"github.com/leapstack-labs/dimensional/pkg/token"
)

// MalformedExpressionError represents a unit-expression syntax error with
// position information.
type MalformedExpressionError struct {
	Pos     token.Position
	Message string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed unit expression at column %d: %s", e.Pos.Column, e.Message)
}
