// Package env reads nltkdata settings from the process environment.
package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
)

// Environment lists the variables nltkdata honours.
type Environment struct {
	// DataDir is the base data directory, shared with NLTK itself.
	DataDir string `env:"NLTK_DATA"`

	// ConfigDir overrides the directory holding config.toml.
	ConfigDir string `env:"NLTKDATA_CONFIG_DIR"`

	// IndexURL overrides the package index location.
	IndexURL string `env:"NLTKDATA_INDEX_URL"`

	// CABundle overrides the trust store with a PEM file.
	CABundle string `env:"NLTKDATA_CA_BUNDLE"`
}

// Load parses the environment.
func Load() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Overrides returns the settings overrides carried by the environment.
func (e Environment) Overrides() domain.EnvOverrides {
	return domain.EnvOverrides{
		DataDir:  e.DataDir,
		IndexURL: e.IndexURL,
		CABundle: e.CABundle,
	}
}
