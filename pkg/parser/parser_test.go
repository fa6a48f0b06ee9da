package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dimensional/pkg/registry"
	"github.com/leapstack-labs/dimensional/pkg/unit"
)

func mustParse(t *testing.T, input string) unit.Expression {
	t.Helper()
	expr, err := Parse(input, registry.Default())
	require.NoError(t, err, "parse %q", input)
	return expr
}

func TestParse_Basic(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStr   string
		wantScale float64
		wantDims  map[unit.Dimension]unit.Rational
	}{
		{
			name:      "empty string is dimensionless",
			input:     "",
			wantStr:   "1",
			wantScale: 1,
		},
		{
			name:      "literal one is dimensionless",
			input:     "1",
			wantStr:   "1",
			wantScale: 1,
		},
		{
			name:      "single base atom",
			input:     "m",
			wantStr:   "m",
			wantScale: 1,
			wantDims:  map[unit.Dimension]unit.Rational{unit.Length: unit.R(1)},
		},
		{
			name:      "prefixed atom",
			input:     "cm",
			wantStr:   "cm",
			wantScale: 1e-2,
			wantDims:  map[unit.Dimension]unit.Rational{unit.Length: unit.R(1)},
		},
		{
			name:      "negative exponent",
			input:     "s^-2",
			wantStr:   "1/s^2",
			wantScale: 1,
			wantDims:  map[unit.Dimension]unit.Rational{unit.Time: unit.R(-2)},
		},
		{
			name:      "composite force",
			input:     "kg*m/s^2",
			wantStr:   "kg*m/s^2",
			wantScale: 1,
			wantDims: map[unit.Dimension]unit.Rational{
				unit.Mass:   unit.R(1),
				unit.Length: unit.R(1),
				unit.Time:   unit.R(-2),
			},
		},
		{
			name:      "slash inverts all subsequent terms",
			input:     "kg*m^2/A*s^3",
			wantStr:   "kg*m^2/A*s^3",
			wantScale: 1,
			wantDims: map[unit.Dimension]unit.Rational{
				unit.Mass:    unit.R(1),
				unit.Length:  unit.R(2),
				unit.Current: unit.R(-1),
				unit.Time:    unit.R(-3),
			},
		},
		{
			name:      "leading slash",
			input:     "/s",
			wantStr:   "1/s",
			wantScale: 1,
			wantDims:  map[unit.Dimension]unit.Rational{unit.Time: unit.R(-1)},
		},
		{
			name:      "one over unit",
			input:     "1/s",
			wantStr:   "1/s",
			wantScale: 1,
			wantDims:  map[unit.Dimension]unit.Rational{unit.Time: unit.R(-1)},
		},
		{
			name:      "decimal exponent becomes exact rational",
			input:     "m^0.5",
			wantStr:   "m^1/2",
			wantScale: 1,
			wantDims:  map[unit.Dimension]unit.Rational{unit.Length: unit.NewRational(1, 2)},
		},
		{
			name:      "cancellation renders dimensionless",
			input:     "m*m^-1",
			wantStr:   "1",
			wantScale: 1,
		},
		{
			name:      "spelled-out names",
			input:     "kilogram*metre/second^2",
			wantStr:   "kg*m/s^2",
			wantScale: 1,
			wantDims: map[unit.Dimension]unit.Rational{
				unit.Mass:   unit.R(1),
				unit.Length: unit.R(1),
				unit.Time:   unit.R(-2),
			},
		},
		{
			name:      "whitespace tolerated",
			input:     " kg * m / s^2 ",
			wantStr:   "kg*m/s^2",
			wantScale: 1,
			wantDims: map[unit.Dimension]unit.Rational{
				unit.Mass:   unit.R(1),
				unit.Length: unit.R(1),
				unit.Time:   unit.R(-2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := mustParse(t, tt.input)
			assert.Equal(t, tt.wantStr, expr.String())
			assert.InEpsilon(t, tt.wantScale, expr.Scale(), 1e-12)
			for d := range unit.NumDimensions {
				want, ok := tt.wantDims[d]
				if !ok {
					want = unit.R(0)
				}
				assert.True(t, expr.Exponent(d).Equal(want),
					"dimension %s: got %s, want %s", d, expr.Exponent(d), want)
			}
		})
	}
}

func TestParse_DerivedUnits(t *testing.T) {
	// J expands to kg*m^2/s^2 but keeps its own name in the rendering.
	j := mustParse(t, "J")
	assert.Equal(t, "J", j.String())
	assert.Equal(t, 1.0, j.Scale())
	assert.True(t, j.Exponent(unit.Mass).Equal(unit.R(1)))
	assert.True(t, j.Exponent(unit.Length).Equal(unit.R(2)))
	assert.True(t, j.Exponent(unit.Time).Equal(unit.R(-2)))

	// prefix factor folds into the scale and is squared with the exponent
	kn2 := mustParse(t, "kN^2")
	assert.Equal(t, "kN^2", kn2.String())
	assert.InEpsilon(t, 1e6, kn2.Scale(), 1e-12)

	// derived units compose with base atoms
	jm := mustParse(t, "J/m")
	assert.True(t, jm.SameDimension(mustParse(t, "kg*m/s^2")))

	// expansions that are themselves pure denominators
	hz := mustParse(t, "Hz")
	assert.True(t, hz.Exponent(unit.Time).Equal(unit.R(-1)))
	assert.True(t, mustParse(t, "becquerel").SameDimension(hz))
}

func TestParse_UnknownUnit(t *testing.T) {
	_, err := Parse("kg*furlong", registry.Default())
	require.Error(t, err)

	var unknown *registry.UnknownUnitError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "furlong", unknown.Name)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "trailing star", input: "kg*"},
		{name: "trailing slash", input: "kg/"},
		{name: "double star", input: "kg**m"},
		{name: "missing exponent", input: "kg^"},
		{name: "exponent without base", input: "^2"},
		{name: "non-one number", input: "2*m"},
		{name: "stray minus", input: "m-s"},
		{name: "number as exponent base", input: "m^s"},
		{name: "lone slash", input: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, registry.Default())
			require.Error(t, err)

			var malformed *MalformedExpressionError
			require.True(t, errors.As(err, &malformed), "want MalformedExpressionError, got %T: %v", err, err)
			assert.True(t, malformed.Pos.IsValid())
		})
	}
}

func TestParse_ExpansionDepthGuard(t *testing.T) {
	// a unit whose expansion refers to itself must not recurse forever
	cfg := registry.Config{
		Units: []registry.Definition{
			{Symbol: "loop", Expansion: "loop"},
		},
	}
	r, err := registry.New(cfg)
	require.NoError(t, err)

	_, err = Parse("loop", r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth")
}
