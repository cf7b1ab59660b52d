package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driven"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driving"
)

// --- Mock implementations for provisioning tests ---

// mockBackend implements driven.PackageBackend.
// Fetch installs a package by marking it present unless fetchErrs or
// skipInstall says otherwise.
type mockBackend struct {
	out         io.Writer
	installed   map[string]bool
	fetchErrs   map[string]error
	skipInstall map[string]bool
	fetched     []domain.FetchRequest
	located     []string
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		installed:   make(map[string]bool),
		fetchErrs:   make(map[string]error),
		skipInstall: make(map[string]bool),
	}
}

func (m *mockBackend) Fetch(_ context.Context, req domain.FetchRequest) error {
	m.fetched = append(m.fetched, req)
	if err, ok := m.fetchErrs[req.Name]; ok {
		return err
	}
	if m.out != nil && !req.Quiet {
		fmt.Fprintf(m.out, "[nltk_data] Downloading package %s\n", req.Name)
	}
	if !m.skipInstall[req.Name] {
		m.installed[req.Name] = true
	}
	return nil
}

func (m *mockBackend) Locate(resourcePath string) (string, error) {
	m.located = append(m.located, resourcePath)
	name := filepath.Base(resourcePath)
	if m.installed[name] {
		return filepath.Join("/data", resourcePath), nil
	}
	return "", fmt.Errorf("resource %s: %w", resourcePath, domain.ErrNotFound)
}

// mockFactory implements driven.BackendFactory.
type mockFactory struct {
	backend   driven.PackageBackend
	createErr error
	opts      driven.BackendOptions
}

func (f *mockFactory) Create(opts driven.BackendOptions) (driven.PackageBackend, error) {
	f.opts = opts
	if f.createErr != nil {
		return nil, f.createErr
	}
	if mb, ok := f.backend.(*mockBackend); ok {
		mb.out = opts.Output
	}
	return f.backend, nil
}

// recordingObserver implements driving.ProvisionObserver.
type recordingObserver struct {
	events []string
}

func (o *recordingObserver) PackageStarted(pkg domain.Package) {
	o.events = append(o.events, "start:"+pkg.Name)
}

func (o *recordingObserver) PackageFinished(result domain.PackageResult) {
	o.events = append(o.events, result.Outcome.String()+":"+result.Package.Name)
}

func newTestProvisioner(backend *mockBackend) (*Provisioner, *mockFactory) {
	factory := &mockFactory{backend: backend}
	return NewProvisioner(factory, domain.RequiredPackages()), factory
}

// --- Tests ---

func TestProvisioner_AllVerified(t *testing.T) {
	backend := newMockBackend()
	provisioner, _ := newTestProvisioner(backend)

	report, err := provisioner.Provision(context.Background(), driving.ProvisionRequest{BaseDir: "/data"})

	require.NoError(t, err)
	assert.True(t, report.Success())
	assert.Equal(t, "/data", report.BaseDir)
	require.Len(t, report.Results, 6)
	for i, pkg := range domain.RequiredPackages() {
		assert.Equal(t, pkg, report.Results[i].Package)
		assert.Equal(t, domain.OutcomeVerified, report.Results[i].Outcome)
		assert.Equal(t, filepath.Join("/data", pkg.ResourcePath()), report.Results[i].Location)
	}
}

func TestProvisioner_FetchRequestsAreVerbose(t *testing.T) {
	backend := newMockBackend()
	provisioner, factory := newTestProvisioner(backend)
	var out bytes.Buffer

	_, err := provisioner.Provision(context.Background(), driving.ProvisionRequest{
		BaseDir:  "/data",
		Settings: domain.DefaultSettings(),
		Output:   &out,
	})

	require.NoError(t, err)
	require.Len(t, backend.fetched, 6)
	for _, req := range backend.fetched {
		assert.False(t, req.Quiet)
		assert.Equal(t, "/data", req.TargetDir)
	}
	assert.Equal(t, "/data", factory.opts.BaseDir)
	assert.Equal(t, domain.DefaultIndexURL, factory.opts.Settings.IndexURL)
	assert.Contains(t, out.String(), "[nltk_data] Downloading package wordnet")
}

func TestProvisioner_LocatesConventionalPaths(t *testing.T) {
	backend := newMockBackend()
	provisioner, _ := newTestProvisioner(backend)

	_, err := provisioner.Provision(context.Background(), driving.ProvisionRequest{BaseDir: "/data"})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"tokenizers/punkt",
		"tokenizers/punkt_tab",
		"corpora/stopwords",
		"corpora/wordnet",
		"taggers/averaged_perceptron_tagger",
		"taggers/averaged_perceptron_tagger_eng",
	}, backend.located)
}

func TestProvisioner_OneFetchErrorDoesNotStopLoop(t *testing.T) {
	backend := newMockBackend()
	backend.fetchErrs["wordnet"] = errors.New("ConnectionError: timed out")
	provisioner, _ := newTestProvisioner(backend)

	report, err := provisioner.Provision(context.Background(), driving.ProvisionRequest{BaseDir: "/tmp/nd"})

	require.NoError(t, err)
	assert.False(t, report.Success())
	assert.Len(t, backend.fetched, 6)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "wordnet", failed[0].Package.Name)
	assert.Equal(t, domain.OutcomeFetchFailed, failed[0].Outcome)
	assert.EqualError(t, failed[0].Err, "ConnectionError: timed out")

	// A failed fetch is not followed by a lookup.
	assert.NotContains(t, backend.located, "corpora/wordnet")
	assert.Len(t, backend.located, 5)
}

func TestProvisioner_FetchedButUnresolvable(t *testing.T) {
	backend := newMockBackend()
	backend.skipInstall["punkt_tab"] = true
	provisioner, _ := newTestProvisioner(backend)

	report, err := provisioner.Provision(context.Background(), driving.ProvisionRequest{BaseDir: "/data"})

	require.NoError(t, err)
	assert.False(t, report.Success())

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "punkt_tab", failed[0].Package.Name)
	assert.Equal(t, domain.OutcomeUnresolvable, failed[0].Outcome)
	assert.True(t, errors.Is(failed[0].Err, domain.ErrNotFound))
}

func TestProvisioner_EveryPackageFails(t *testing.T) {
	backend := newMockBackend()
	for _, pkg := range domain.RequiredPackages() {
		backend.fetchErrs[pkg.Name] = domain.ErrNetwork
	}
	provisioner, _ := newTestProvisioner(backend)

	report, err := provisioner.Provision(context.Background(), driving.ProvisionRequest{BaseDir: "/data"})

	require.NoError(t, err)
	assert.Len(t, report.Failed(), 6)
	assert.Len(t, backend.fetched, 6)
}

func TestProvisioner_NotifiesObserverInOrder(t *testing.T) {
	backend := newMockBackend()
	backend.fetchErrs["stopwords"] = errors.New("boom")
	provisioner := NewProvisioner(&mockFactory{backend: backend}, []domain.Package{
		{Category: domain.CategoryTokenizers, Name: "punkt"},
		{Category: domain.CategoryCorpora, Name: "stopwords"},
	})
	observer := &recordingObserver{}

	_, err := provisioner.Provision(context.Background(), driving.ProvisionRequest{
		BaseDir:  "/data",
		Observer: observer,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"start:punkt",
		"verified:punkt",
		"start:stopwords",
		"fetch_failed:stopwords",
	}, observer.events)
}

func TestProvisioner_FactoryErrorIsFatal(t *testing.T) {
	factory := &mockFactory{createErr: fmt.Errorf("load bundle: %w", domain.ErrTrustStore)}
	provisioner := NewProvisioner(factory, domain.RequiredPackages())

	report, err := provisioner.Provision(context.Background(), driving.ProvisionRequest{BaseDir: "/data"})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domain.ErrTrustStore))
}

func TestProvisioner_NilFactory(t *testing.T) {
	provisioner := NewProvisioner(nil, domain.RequiredPackages())

	_, err := provisioner.Provision(context.Background(), driving.ProvisionRequest{BaseDir: "/data"})

	assert.Error(t, err)
}

func TestProvisioner_CancelledContextRecordsFailures(t *testing.T) {
	backend := newMockBackend()
	provisioner := NewProvisioner(&mockFactory{backend: &ctxBackend{mockBackend: backend}}, domain.RequiredPackages())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := provisioner.Provision(ctx, driving.ProvisionRequest{BaseDir: "/data"})

	require.NoError(t, err)
	require.Len(t, report.Results, 6)
	for _, res := range report.Results {
		assert.Equal(t, domain.OutcomeFetchFailed, res.Outcome)
		assert.True(t, errors.Is(res.Err, context.Canceled))
	}
}

// ctxBackend fails fetches once the context is done.
type ctxBackend struct {
	*mockBackend
}

func (c *ctxBackend) Fetch(ctx context.Context, req domain.FetchRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.mockBackend.Fetch(ctx, req)
}
