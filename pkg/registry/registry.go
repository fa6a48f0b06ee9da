// Package registry provides the process-wide unit table: it maps unit atom
// names (symbols and spelled-out names) to their base dimension and scale
// factor, or to a composite expansion for named derived units, and resolves
// SI-prefixed atoms like "mm" or "kilojoule".
//
// A Registry is built once, from the built-in SI definitions or from a YAML
// definitions file, and is read-only thereafter, so it is safe to share
// between goroutines without locking.
package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/leapstack-labs/dimensional/pkg/unit"
)

// Definition describes one unit atom. Exactly one of Dimension and Expansion
// must be set: base atoms name a dimension, derived atoms name a composite
// expansion in base atoms (e.g. "kg*m/s^2" for the newton).
type Definition struct {
	Symbol    string   `koanf:"symbol"`
	Names     []string `koanf:"names"`     // spelled-out aliases: "metre", "meter"
	Dimension string   `koanf:"dimension"` // base atoms: "mass", "length", ...
	Scale     float64  `koanf:"scale"`     // relative to the SI base combination; defaults to 1
	Expansion string   `koanf:"expansion"` // derived atoms: expansion in base atoms
}

// PrefixDefinition describes one SI prefix.
type PrefixDefinition struct {
	Symbol string  `koanf:"symbol"` // "k"
	Name   string  `koanf:"name"`   // "kilo", optional
	Factor float64 `koanf:"factor"` // 1e3
}

// Config is the full set of definitions a Registry is built from.
type Config struct {
	Units    []Definition       `koanf:"units"`
	Prefixes []PrefixDefinition `koanf:"prefixes"`
}

// atom is the resolved internal form of a Definition.
type atom struct {
	symbol    string
	dimension unit.Dimension
	scale     float64
	expansion string // non-empty for derived atoms
}

type prefix struct {
	symbol string
	factor float64
}

// Registry is the immutable unit lookup table.
type Registry struct {
	atoms    map[string]*atom  // keyed by symbol and every alias
	prefixes map[string]prefix // keyed by symbol and name
	logger   *slog.Logger
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger sets the logger used for construction diagnostics.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a Registry from the given definitions. Later definitions with
// the same symbol or alias override earlier ones, which lets callers layer
// custom definitions over DefaultConfig.
func New(cfg Config, opts ...Option) (*Registry, error) {
	r := &Registry{
		atoms:    make(map[string]*atom, 2*len(cfg.Units)),
		prefixes: make(map[string]prefix, 2*len(cfg.Prefixes)),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, def := range cfg.Prefixes {
		if def.Symbol == "" {
			return nil, fmt.Errorf("registry: prefix definition without symbol")
		}
		if def.Factor == 0 {
			return nil, fmt.Errorf("registry: prefix %q has zero factor", def.Symbol)
		}
		p := prefix{symbol: def.Symbol, factor: def.Factor}
		r.prefixes[def.Symbol] = p
		if def.Name != "" {
			r.prefixes[def.Name] = p
		}
	}

	for _, def := range cfg.Units {
		a, err := newAtom(def)
		if err != nil {
			return nil, err
		}
		r.atoms[def.Symbol] = a
		for _, name := range def.Names {
			r.atoms[name] = a
		}
	}

	r.logger.Debug("unit registry built",
		"units", len(r.atoms),
		"prefixes", len(r.prefixes))
	return r, nil
}

func newAtom(def Definition) (*atom, error) {
	if def.Symbol == "" {
		return nil, fmt.Errorf("registry: unit definition without symbol")
	}
	if (def.Dimension == "") == (def.Expansion == "") {
		return nil, fmt.Errorf("registry: unit %q must set exactly one of dimension and expansion", def.Symbol)
	}
	a := &atom{
		symbol:    def.Symbol,
		scale:     def.Scale,
		expansion: def.Expansion,
	}
	if a.scale == 0 {
		a.scale = 1
	}
	if def.Dimension != "" {
		d, ok := unit.DimensionFromName(def.Dimension)
		if !ok {
			return nil, fmt.Errorf("registry: unit %q has unknown dimension %q", def.Symbol, def.Dimension)
		}
		a.dimension = d
	}
	return a, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared Registry built from the built-in SI definitions.
// It is constructed on first use and never mutated.
func Default() *Registry {
	defaultOnce.Do(func() {
		var err error
		defaultReg, err = New(DefaultConfig())
		if err != nil {
			// the built-in table is validated by tests
			panic(fmt.Sprintf("registry: invalid built-in definitions: %v", err))
		}
	})
	return defaultReg
}

// Resolved is the result of looking up one unit atom name: the canonical
// name with any SI prefix applied, the combined scale factor, and either the
// base dimension or the composite expansion.
type Resolved struct {
	Name      string         // canonical atom name, prefix included: "km", "J"
	Scale     float64        // prefix factor × atom scale
	Dimension unit.Dimension // valid when Derived is false
	Derived   bool
	Expansion string // expansion in base atoms, set when Derived is true
}

// Resolve looks up an atom name. Exact matches (case-sensitive, symbol or
// spelled-out alias) win; otherwise every split point of the name is tried as
// prefix+atom ("mm" → milli+metre, "kilojoule" → kilo+joule). Unknown names
// fail with *UnknownUnitError.
func (r *Registry) Resolve(name string) (Resolved, error) {
	if a, ok := r.atoms[name]; ok {
		return resolved(a, prefix{factor: 1}), nil
	}
	for i := 1; i < len(name); i++ {
		p, ok := r.prefixes[name[:i]]
		if !ok {
			continue
		}
		if a, ok := r.atoms[name[i:]]; ok {
			return resolved(a, p), nil
		}
	}
	return Resolved{}, &UnknownUnitError{Name: name}
}

func resolved(a *atom, p prefix) Resolved {
	return Resolved{
		Name:      p.symbol + a.symbol,
		Scale:     p.factor * a.scale,
		Dimension: a.dimension,
		Derived:   a.expansion != "",
		Expansion: a.expansion,
	}
}

// Count returns the number of registered atom names, aliases included.
func (r *Registry) Count() int {
	return len(r.atoms)
}
