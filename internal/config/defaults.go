package config

import (
	_ "embed"
)

//go:embed defaults/gemfall.yaml
var defaultGemfallYAML []byte

// Default returns the default gemfall configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows:   8,
			Cols:   6,
			Colors: 3,
		},
		Rules: RulesConfig{
			MoveBudget: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGemfallYAML
}
