package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
)

// PackageBackend is the external fetch mechanism.
// It has exactly two capabilities: place a package's files under a
// directory, and check whether a resource is locally resolvable.
type PackageBackend interface {
	// Fetch installs the named package under req.TargetDir.
	// Returns nil if the package was installed or was already present.
	// Unless req.Quiet is set, progress lines are written to the
	// backend's output.
	Fetch(ctx context.Context, req domain.FetchRequest) error

	// Locate resolves a resource path such as "corpora/wordnet" against
	// the local data directories and returns where it was found.
	// Returns ErrNotFound if the resource is not resolvable.
	Locate(resourcePath string) (string, error)
}

// BackendOptions configures a PackageBackend for one run.
type BackendOptions struct {
	// Settings carries the index URL, trust store and network tuning.
	Settings domain.Settings

	// BaseDir is the resolved data directory searched by Locate.
	BaseDir string

	// Output receives the backend's progress lines.
	Output io.Writer
}

// BackendFactory builds a PackageBackend.
// Building the backend is where the TLS trust store is configured, so a
// factory error means no package can be fetched.
type BackendFactory interface {
	// Create returns a backend configured from opts.
	// Returns ErrTrustStore if the certificate bundle cannot be loaded.
	Create(opts BackendOptions) (PackageBackend, error)
}
