package driving

import "github.com/custodia-labs/nltkdata/internal/core/domain"

// DataDirService resolves and prepares the base data directory.
type DataDirService interface {
	// Resolve returns the base directory for the given settings and
	// creates it together with its category subdirectories.
	// Returns ErrStorage if a directory cannot be created.
	Resolve(settings *domain.Settings) (string, error)
}
