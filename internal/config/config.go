// Package config loads the host-level tuning knobs the evaluation
// core deliberately leaves to its caller: the recursion ceiling must
// exist and be explicit, but its value is a deployment decision, not
// a language rule. Decoded with goccy/go-yaml.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the run-scoped configuration a `scopescript run --config`
// flag can supply.
type Config struct {
	// MaxCallDepth overrides interp.DefaultMaxCallDepth. Zero means
	// "use the default".
	MaxCallDepth int `yaml:"maxCallDepth"`
}

// Load reads and decodes a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
