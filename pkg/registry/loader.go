package registry

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// fileConfig is the shape of a unit definitions YAML file.
type fileConfig struct {
	// ExtendDefaults layers the file's definitions over the built-in SI
	// table. When false the file must be self-contained.
	ExtendDefaults bool               `koanf:"extend_defaults"`
	Units          []Definition       `koanf:"units"`
	Prefixes       []PrefixDefinition `koanf:"prefixes"`
}

// Load builds a Registry from a YAML definitions file:
//
//	extend_defaults: true
//	units:
//	  - symbol: eV
//	    names: [electronvolt]
//	    expansion: kg*m^2/s^2
//	    scale: 1.602176634e-19
//	prefixes:
//	  - symbol: Ki
//	    factor: 1024
//
// With extend_defaults (the default) the file's definitions are appended
// after the built-in ones, so they can add new atoms or override existing
// symbols.
func Load(path string, opts ...Option) (*Registry, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]any{
		"extend_defaults": true,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load unit definitions from %s: %w", path, err)
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, fmt.Errorf("failed to parse unit definitions from %s: %w", path, err)
	}

	cfg := Config{Units: fc.Units, Prefixes: fc.Prefixes}
	if fc.ExtendDefaults {
		base := DefaultConfig()
		cfg.Units = append(base.Units, cfg.Units...)
		cfg.Prefixes = append(base.Prefixes, cfg.Prefixes...)
	}
	return New(cfg, opts...)
}
