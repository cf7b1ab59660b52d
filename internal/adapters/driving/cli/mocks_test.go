package cli

import (
	"context"
	"fmt"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driving"
)

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.Settings
	getErr   error
	setErr   error
	saved    map[string]string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultSettings(),
		saved:    make(map[string]string),
	}
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if key == "unknown.key" {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}
	m.saved[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"index.url", "tls.ca_bundle"}
}

func (m *mockSettingsService) Path() string {
	return "/home/u/.nltkdata/config.toml"
}

// mockDataDirService implements driving.DataDirService for testing.
type mockDataDirService struct {
	dir string
	err error
}

func (m *mockDataDirService) Resolve(_ *domain.Settings) (string, error) {
	return m.dir, m.err
}

// mockProvisioner replays fixed outcomes through the observer.
type mockProvisioner struct {
	outcomes map[string]domain.Outcome
	errs     map[string]error
	err      error
	progress string
	got      driving.ProvisionRequest
}

func (m *mockProvisioner) Provision(_ context.Context, req driving.ProvisionRequest) (*domain.Report, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}

	report := &domain.Report{BaseDir: req.BaseDir}
	for _, pkg := range domain.RequiredPackages() {
		if req.Observer != nil {
			req.Observer.PackageStarted(pkg)
		}
		if m.progress != "" && req.Output != nil {
			fmt.Fprintln(req.Output, m.progress)
		}

		outcome, ok := m.outcomes[pkg.Name]
		if !ok {
			outcome = domain.OutcomeVerified
		}
		res := domain.PackageResult{Package: pkg, Outcome: outcome, Err: m.errs[pkg.Name]}
		report.Add(res)

		if req.Observer != nil {
			req.Observer.PackageFinished(res)
		}
	}
	return report, nil
}
