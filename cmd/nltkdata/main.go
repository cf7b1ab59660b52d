// Command nltkdata downloads the NLTK data packages required for text
// processing into a user-writable directory and verifies each one.
//
// Configuration is loaded from environment variables:
//   - NLTK_DATA: data directory (optional, defaults to ~/nltk_data)
//   - NLTKDATA_INDEX_URL: package index URL (optional)
//   - NLTKDATA_CA_BUNDLE: PEM bundle of trusted roots (optional)
//   - NLTKDATA_CONFIG_DIR: directory holding config.toml (optional)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/nltkdata/internal/adapters/driven/config/env"
	"github.com/custodia-labs/nltkdata/internal/adapters/driven/config/file"
	"github.com/custodia-labs/nltkdata/internal/adapters/driven/nltk"
	"github.com/custodia-labs/nltkdata/internal/adapters/driving/cli"
	"github.com/custodia-labs/nltkdata/internal/core/domain"
	"github.com/custodia-labs/nltkdata/internal/core/services"
	"github.com/custodia-labs/nltkdata/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// CLI exit codes.
const (
	// ExitSuccess indicates every package was verified.
	ExitSuccess = 0

	// ExitFailure indicates a package failed or the run could not start.
	ExitFailure = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	reportError(err)
	os.Exit(exitCodeFromError(err))
}

// run wires the adapters into the services and executes the CLI.
func run(ctx context.Context) error {
	environment, err := env.Load()
	if err != nil {
		return err
	}

	configStore, err := file.NewConfigStore(environment.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cli.SetVersion(version)
	cli.SetServices(
		services.NewSettingsService(configStore, environment.Overrides()),
		services.NewDataDirService(),
		services.NewProvisioner(nltk.NewFactory(), domain.RequiredPackages()),
	)

	return cli.Execute(ctx)
}

// reportError prints err to stderr. An incomplete run has already been
// summarised on stdout and is not repeated.
func reportError(err error) {
	if err == nil || errors.Is(err, domain.ErrIncomplete) {
		return
	}
	logger.Error("%v", err)
}

// exitCodeFromError maps errors to exit codes.
func exitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
