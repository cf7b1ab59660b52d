package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driven"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driving"
	"github.com/custodia-labs/nltkdata/internal/logger"
)

// Ensure Provisioner implements the interface.
var _ driving.Provisioner = (*Provisioner)(nil)

// Provisioner fetches each required package and verifies it is resolvable.
type Provisioner struct {
	factory  driven.BackendFactory
	packages []domain.Package
}

// NewProvisioner creates a provisioner for the given package list.
// The list order is the attempt order.
func NewProvisioner(factory driven.BackendFactory, packages []domain.Package) *Provisioner {
	return &Provisioner{
		factory:  factory,
		packages: packages,
	}
}

// Provision attempts every package, never stopping early.
// Each package is fetched, then located independently of the fetch result.
// A fetch error and a failed lookup are recorded as different outcomes.
func (p *Provisioner) Provision(ctx context.Context, req driving.ProvisionRequest) (*domain.Report, error) {
	if p.factory == nil {
		return nil, errors.New("backend factory not configured")
	}

	out := req.Output
	if out == nil {
		out = io.Discard
	}

	backend, err := p.factory.Create(driven.BackendOptions{
		Settings: req.Settings,
		BaseDir:  req.BaseDir,
		Output:   out,
	})
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	report := &domain.Report{BaseDir: req.BaseDir}

	logger.Section("Provision")
	for _, pkg := range p.packages {
		if req.Observer != nil {
			req.Observer.PackageStarted(pkg)
		}

		result := p.provisionOne(ctx, backend, req.BaseDir, pkg)
		report.Add(result)

		if req.Observer != nil {
			req.Observer.PackageFinished(result)
		}
	}

	logger.Info("Provision complete: %d of %d verified",
		len(report.Results)-len(report.Failed()), len(report.Results))
	return report, nil
}

// provisionOne classifies a single package. It never returns an error;
// every failure is captured in the result.
func (p *Provisioner) provisionOne(
	ctx context.Context,
	backend driven.PackageBackend,
	baseDir string,
	pkg domain.Package,
) domain.PackageResult {
	result := domain.PackageResult{Package: pkg}

	err := backend.Fetch(ctx, domain.FetchRequest{
		Name:      pkg.Name,
		TargetDir: baseDir,
		Quiet:     false,
	})
	if err != nil {
		logger.Warn("Fetch %s failed: %v", pkg.Name, err)
		result.Outcome = domain.OutcomeFetchFailed
		result.Err = err
		return result
	}

	location, err := backend.Locate(pkg.ResourcePath())
	if err != nil {
		logger.Warn("Lookup %s failed after fetch: %v", pkg.ResourcePath(), err)
		result.Outcome = domain.OutcomeUnresolvable
		result.Err = err
		return result
	}

	logger.Debug("Verified %s at %s", pkg.ResourcePath(), location)
	result.Outcome = domain.OutcomeVerified
	result.Location = location
	return result
}
