package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driving"
	"github.com/custodia-labs/nltkdata/internal/logger"
)

// Ensure DataDirService implements the interface.
var _ driving.DataDirService = (*DataDirService)(nil)

// DataDirService resolves the base data directory.
type DataDirService struct {
	homeDir func() (string, error)
}

// NewDataDirService creates a data directory service that falls back to
// the current user's home directory.
func NewDataDirService() *DataDirService {
	return &DataDirService{homeDir: os.UserHomeDir}
}

// Resolve returns settings.DataDir if set, otherwise <home>/nltk_data,
// after creating it and the category subdirectories.
// Creating an existing directory is a no-op.
func (s *DataDirService) Resolve(settings *domain.Settings) (string, error) {
	base := settings.DataDir
	if base == "" {
		home, err := s.homeDir()
		if err != nil {
			return "", fmt.Errorf("%w: locate home directory: %v", domain.ErrStorage, err)
		}
		base = filepath.Join(home, domain.DefaultDataDirName)
	}

	logger.Debug("Data directory: %s", base)

	if err := os.MkdirAll(base, 0755); err != nil {
		return "", fmt.Errorf("%w: create %s: %v", domain.ErrStorage, base, err)
	}
	for _, sub := range Subdirectories() {
		dir := filepath.Join(base, sub)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("%w: create %s: %v", domain.ErrStorage, dir, err)
		}
	}

	return base, nil
}

// Subdirectories returns the category directories created under the base.
func Subdirectories() []string {
	cats := domain.Categories()
	dirs := make([]string, 0, len(cats))
	for _, c := range cats {
		dirs = append(dirs, c.String())
	}
	return dirs
}
