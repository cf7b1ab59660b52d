package driving

import "github.com/custodia-labs/nltkdata/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: environment over config file
	// over defaults.
	Get() (*domain.Settings, error)

	// Set validates and persists a single config file key.
	// Returns ErrInvalidInput for unknown keys or malformed values.
	Set(key, value string) error

	// Keys returns the config file keys accepted by Set.
	Keys() []string

	// Path returns the configuration file path.
	Path() string
}
