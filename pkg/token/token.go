// Package token defines the token types for unit-expression parsing.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // unit atom name: m, kg, joule, Ω
	NUMBER // 2, -2, 0.5

	// Operators
	STAR  // *
	SLASH // /
	CARET // ^
)

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case IDENT:
		return "IDENT"
	case NUMBER:
		return "NUMBER"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case CARET:
		return "^"
	default:
		return fmt.Sprintf("TokenType(%d)", int32(t))
	}
}

// Token is a lexical token with its literal text and position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}
