// Package parser turns unit-expression strings into unit.Expression values.
//
// # Grammar Overview
//
//	expression → ['/'] term (('*' | '/') term)*
//	term       → atom ['^' exponent] | '1'
//	atom       → IDENT resolved through the registry
//	exponent   → integer or decimal literal, optionally negative
//
// A '/' inverts the sign applied to every subsequent term, so
// "kg*m^2/A*s^3" reads kg·m²/(A·s³). The empty string and "1" both parse to
// the dimensionless expression. Named derived atoms (J, N, Hz, ...) are
// expanded recursively through their registry expansion.
package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dimensional/pkg/registry"
	"github.com/leapstack-labs/dimensional/pkg/token"
	"github.com/leapstack-labs/dimensional/pkg/unit"
)

// maxExpansionDepth bounds recursive expansion of derived atoms.
const maxExpansionDepth = 8

// Parser parses one unit expression against a registry.
type Parser struct {
	lexer *Lexer
	token token.Token // current token
	peek  token.Token // lookahead token
	reg   *registry.Registry
	depth int // current derived-atom expansion depth
}

// NewParser creates a new parser for the given input, resolving atoms
// through reg.
func NewParser(input string, reg *registry.Registry) *Parser {
	return newParser(input, reg, 0)
}

func newParser(input string, reg *registry.Registry, depth int) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
		reg:   reg,
		depth: depth,
	}
	// Read two tokens to initialize current and peek
	p.next()
	p.next()
	return p
}

// Parse parses a unit-expression string into a unit.Expression, resolving
// atom names through reg. Fails with *MalformedExpressionError on syntax
// errors and *registry.UnknownUnitError on unregistered atoms.
func Parse(input string, reg *registry.Registry) (unit.Expression, error) {
	return parse(input, reg, 0)
}

func parse(input string, reg *registry.Registry, depth int) (unit.Expression, error) {
	if strings.TrimSpace(input) == "" {
		return unit.One(), nil
	}
	return newParser(input, reg, depth).parseExpression()
}

// next advances to the next token.
func (p *Parser) next() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) error {
	return &MalformedExpressionError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// parseExpression parses the full input and requires EOF at the end.
func (p *Parser) parseExpression() (unit.Expression, error) {
	expr := unit.One()
	sign := 1

	// A leading '/' puts the first group in the denominator ("/s").
	if p.check(token.SLASH) {
		sign = -sign
		p.next()
	}

	for {
		t, err := p.parseTerm()
		if err != nil {
			return unit.Expression{}, err
		}
		if sign > 0 {
			expr = expr.Mul(t)
		} else {
			expr = expr.Div(t)
		}

		switch p.token.Type {
		case token.EOF:
			return expr, nil
		case token.STAR:
			p.next()
		case token.SLASH:
			sign = -sign
			p.next()
		default:
			return unit.Expression{}, p.errorf(p.token.Pos, "unexpected token %s, expected * or /", p.token)
		}
	}
}

// parseTerm parses one atom with an optional exponent, or the literal "1".
func (p *Parser) parseTerm() (unit.Expression, error) {
	switch p.token.Type {
	case token.NUMBER:
		if p.token.Literal != "1" {
			return unit.Expression{}, p.errorf(p.token.Pos, "unexpected number %q, only the dimensionless literal 1 is allowed", p.token.Literal)
		}
		p.next()
		return unit.One(), nil

	case token.IDENT:
		name := p.token.Literal
		pos := p.token.Pos
		p.next()

		exp := unit.R(1)
		if p.check(token.CARET) {
			p.next()
			if !p.check(token.NUMBER) {
				return unit.Expression{}, p.errorf(p.token.Pos, "unexpected token %s, expected exponent after ^", p.token)
			}
			var err error
			exp, err = unit.ParseRational(p.token.Literal)
			if err != nil {
				return unit.Expression{}, p.errorf(p.token.Pos, "invalid exponent %q", p.token.Literal)
			}
			p.next()
		}

		atom, err := p.resolveAtom(name, pos)
		if err != nil {
			return unit.Expression{}, err
		}
		return atom.Pow(exp), nil

	default:
		return unit.Expression{}, p.errorf(p.token.Pos, "unexpected token %s, expected unit name", p.token)
	}
}

// resolveAtom resolves one atom name into an Expression with exponent 1,
// expanding derived atoms recursively.
func (p *Parser) resolveAtom(name string, pos token.Position) (unit.Expression, error) {
	res, err := p.reg.Resolve(name)
	if err != nil {
		return unit.Expression{}, err
	}
	if !res.Derived {
		return unit.NewBase(res.Name, res.Dimension, res.Scale), nil
	}
	if p.depth >= maxExpansionDepth {
		return unit.Expression{}, p.errorf(pos, "unit %q: derived-unit expansion exceeds depth %d", name, maxExpansionDepth)
	}
	expansion, err := parse(res.Expansion, p.reg, p.depth+1)
	if err != nil {
		return unit.Expression{}, fmt.Errorf("invalid expansion for unit %q: %w", res.Name, err)
	}
	return unit.NewDerived(res.Name, expansion, res.Scale), nil
}
