package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driven"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyIndexURL          = "index.url"
	keyCABundle          = "tls.ca_bundle"
	keyTimeoutSeconds    = "network.timeout_seconds"
	keyRequestsPerSecond = "network.requests_per_second"
)

// SettingsService merges the config file and environment into Settings.
type SettingsService struct {
	configStore driven.ConfigStore
	env         domain.EnvOverrides
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, env domain.EnvOverrides) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		env:         env,
	}
}

// Get returns the effective settings.
// Precedence is environment, then config file, then defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if v := s.configStore.GetString(keyIndexURL); v != "" {
		settings.IndexURL = v
	}
	if v := s.configStore.GetString(keyCABundle); v != "" {
		settings.Trust.CABundle = v
	}
	if v := s.configStore.GetInt(keyTimeoutSeconds); v > 0 {
		settings.Network.Timeout = time.Duration(v) * time.Second
	}
	if _, ok := s.configStore.Get(keyRequestsPerSecond); ok {
		settings.Network.RequestsPerSecond = s.configStore.GetFloat(keyRequestsPerSecond)
	}

	// NLTK_DATA is environment-only.
	settings.DataDir = s.env.DataDir
	if s.env.IndexURL != "" {
		settings.IndexURL = s.env.IndexURL
	}
	if s.env.CABundle != "" {
		settings.Trust.CABundle = s.env.CABundle
	}

	return &settings, nil
}

// Set validates and persists a single config file key.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case keyIndexURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return fmt.Errorf("%w: %s must be an http(s) URL", domain.ErrInvalidInput, key)
		}
		return s.save(key, value)

	case keyCABundle:
		// Empty resets to the bundled roots.
		return s.save(key, value)

	case keyTimeoutSeconds:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		return s.save(key, n)

	case keyRequestsPerSecond:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		return s.save(key, f)

	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns the config file keys accepted by Set.
func (s *SettingsService) Keys() []string {
	return []string{keyIndexURL, keyCABundle, keyTimeoutSeconds, keyRequestsPerSecond}
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) save(key string, value any) error {
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
