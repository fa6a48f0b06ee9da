package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/dimensional/pkg/token"
)

func TestLexer_NextToken(t *testing.T) {
	type tok struct {
		typ token.TokenType
		lit string
	}

	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "composite expression",
			input: "kg*m/s^2",
			want: []tok{
				{token.IDENT, "kg"},
				{token.STAR, "*"},
				{token.IDENT, "m"},
				{token.SLASH, "/"},
				{token.IDENT, "s"},
				{token.CARET, "^"},
				{token.NUMBER, "2"},
				{token.EOF, ""},
			},
		},
		{
			name:  "negative exponent",
			input: "s^-2",
			want: []tok{
				{token.IDENT, "s"},
				{token.CARET, "^"},
				{token.NUMBER, "-2"},
				{token.EOF, ""},
			},
		},
		{
			name:  "decimal exponent",
			input: "m^0.5",
			want: []tok{
				{token.IDENT, "m"},
				{token.CARET, "^"},
				{token.NUMBER, "0.5"},
				{token.EOF, ""},
			},
		},
		{
			name:  "whitespace is skipped",
			input: " kg * m ",
			want: []tok{
				{token.IDENT, "kg"},
				{token.STAR, "*"},
				{token.IDENT, "m"},
				{token.EOF, ""},
			},
		},
		{
			name:  "unicode atoms",
			input: "μm*Ω",
			want: []tok{
				{token.IDENT, "μm"},
				{token.STAR, "*"},
				{token.IDENT, "Ω"},
				{token.EOF, ""},
			},
		},
		{
			name:  "dimensionless literal",
			input: "1",
			want: []tok{
				{token.NUMBER, "1"},
				{token.EOF, ""},
			},
		},
		{
			name:  "bare minus is illegal",
			input: "m-s",
			want: []tok{
				{token.IDENT, "m"},
				{token.ILLEGAL, "-"},
				{token.IDENT, "s"},
				{token.EOF, ""},
			},
		},
		{
			name:  "stray punctuation is illegal",
			input: "m+s",
			want: []tok{
				{token.IDENT, "m"},
				{token.ILLEGAL, "+"},
				{token.IDENT, "s"},
				{token.EOF, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			for i, want := range tt.want {
				got := l.NextToken()
				assert.Equal(t, want.typ, got.Type, "token %d type", i)
				assert.Equal(t, want.lit, got.Literal, "token %d literal", i)
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	l := NewLexer("kg*m")

	kg := l.NextToken()
	assert.Equal(t, 1, kg.Pos.Column)
	assert.Equal(t, 0, kg.Pos.Offset)

	star := l.NextToken()
	assert.Equal(t, 3, star.Pos.Column)
	assert.Equal(t, 2, star.Pos.Offset)

	m := l.NextToken()
	assert.Equal(t, 4, m.Pos.Column)
	assert.Equal(t, 3, m.Pos.Offset)
}
