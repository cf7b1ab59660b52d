package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
)

// Provisioner fetches and verifies the required packages.
type Provisioner interface {
	// Provision attempts every required package in order and returns the
	// accumulated report. Per-package failures are recorded in the report,
	// never returned. An error is returned only if no attempt could be
	// made at all, e.g. the trust store failed to load.
	Provision(ctx context.Context, req ProvisionRequest) (*domain.Report, error)
}

// ProvisionRequest carries the inputs of a provisioning run.
type ProvisionRequest struct {
	// BaseDir is the resolved data directory. It must already exist.
	BaseDir string

	// Settings configures the fetch backend.
	Settings domain.Settings

	// Output receives the fetch mechanism's verbose progress lines.
	Output io.Writer

	// Observer is notified as each package is attempted. May be nil.
	Observer ProvisionObserver
}

// ProvisionObserver receives per-package progress during a run.
type ProvisionObserver interface {
	// PackageStarted is called before a package is fetched.
	PackageStarted(pkg domain.Package)

	// PackageFinished is called once the package has been classified.
	PackageFinished(result domain.PackageResult)
}
