package registry

// DefaultConfig returns the built-in SI definitions: the seven base units,
// the named derived units, and the full prefix table from yotta to yocto.
//
// The canonical mass combination is the kilogram, so the gram atom carries
// scale 1e-3 and "kg" resolves through the kilo prefix back to scale 1.
// Expansions are written in base atoms only; "/" inverts the sign of every
// subsequent term, so "kg*m^2/A*s^3" reads kg·m²/(A·s³).
func DefaultConfig() Config {
	return Config{
		Units: []Definition{
			// Base units
			{Symbol: "m", Names: []string{"metre", "meter"}, Dimension: "length"},
			{Symbol: "g", Names: []string{"gram"}, Dimension: "mass", Scale: 1e-3},
			{Symbol: "s", Names: []string{"second"}, Dimension: "time"},
			{Symbol: "A", Names: []string{"ampere"}, Dimension: "current"},
			{Symbol: "K", Names: []string{"kelvin"}, Dimension: "temperature"},
			{Symbol: "mol", Names: []string{"mole"}, Dimension: "amount"},
			{Symbol: "cd", Names: []string{"candela"}, Dimension: "luminosity"},

			// Celsius converts by scale only; the affine offset is not modeled.
			{Symbol: "°C", Names: []string{"celsius"}, Dimension: "temperature"},

			// Named derived units
			{Symbol: "Hz", Names: []string{"hertz"}, Expansion: "1/s"},
			{Symbol: "N", Names: []string{"newton"}, Expansion: "kg*m/s^2"},
			{Symbol: "Pa", Names: []string{"pascal"}, Expansion: "kg/m*s^2"},
			{Symbol: "J", Names: []string{"joule"}, Expansion: "kg*m^2/s^2"},
			{Symbol: "W", Names: []string{"watt"}, Expansion: "kg*m^2/s^3"},
			{Symbol: "C", Names: []string{"coulomb"}, Expansion: "A*s"},
			{Symbol: "V", Names: []string{"volt"}, Expansion: "kg*m^2/A*s^3"},
			{Symbol: "F", Names: []string{"farad"}, Expansion: "A^2*s^4/kg*m^2"},
			{Symbol: "Ω", Names: []string{"ohm"}, Expansion: "kg*m^2/A^2*s^3"},
			{Symbol: "S", Names: []string{"siemens"}, Expansion: "A^2*s^3/kg*m^2"},
			{Symbol: "Wb", Names: []string{"weber"}, Expansion: "kg*m^2/A*s^2"},
			{Symbol: "T", Names: []string{"tesla"}, Expansion: "kg/A*s^2"},
			{Symbol: "H", Names: []string{"henry"}, Expansion: "kg*m^2/A^2*s^2"},
			{Symbol: "Bq", Names: []string{"becquerel"}, Expansion: "1/s"},
			{Symbol: "Sv", Names: []string{"sievert"}, Expansion: "m^2/s^2"},
			{Symbol: "kat", Names: []string{"katal"}, Expansion: "mol/s"},
		},
		Prefixes: []PrefixDefinition{
			{Symbol: "Y", Name: "yotta", Factor: 1e24},
			{Symbol: "Z", Name: "zetta", Factor: 1e21},
			{Symbol: "E", Name: "exa", Factor: 1e18},
			{Symbol: "P", Name: "peta", Factor: 1e15},
			{Symbol: "T", Name: "tera", Factor: 1e12},
			{Symbol: "G", Name: "giga", Factor: 1e9},
			{Symbol: "M", Name: "mega", Factor: 1e6},
			{Symbol: "k", Name: "kilo", Factor: 1e3},
			{Symbol: "h", Name: "hecto", Factor: 1e2},
			{Symbol: "da", Name: "deca", Factor: 1e1},
			{Symbol: "d", Name: "deci", Factor: 1e-1},
			{Symbol: "c", Name: "centi", Factor: 1e-2},
			{Symbol: "m", Name: "milli", Factor: 1e-3},
			{Symbol: "u", Name: "micro", Factor: 1e-6},
			{Symbol: "μ", Factor: 1e-6}, // rendered as μ, resolves same as "u"
			{Symbol: "n", Name: "nano", Factor: 1e-9},
			{Symbol: "p", Name: "pico", Factor: 1e-12},
			{Symbol: "f", Name: "femto", Factor: 1e-15},
			{Symbol: "a", Name: "atto", Factor: 1e-18},
			{Symbol: "z", Name: "zepto", Factor: 1e-21},
			{Symbol: "y", Name: "yocto", Factor: 1e-24},
		},
	}
}
