// Package cli provides the cobra command tree for nltkdata.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nltkdata/internal/core/ports/driving"
	"github.com/custodia-labs/nltkdata/internal/logger"
)

var (
	version = "dev"
	verbose bool

	// Services, injected by main via SetServices.
	settingsService driving.SettingsService
	dataDirService  driving.DataDirService
	provisioner     driving.Provisioner
)

var rootCmd = &cobra.Command{
	Use:   "nltkdata",
	Short: "Download the NLTK data packages required for text processing",
	Long: `Downloads the required NLTK data packages into a user-writable directory
and verifies that each one can be found afterwards.

The directory is taken from $NLTK_DATA, or ~/nltk_data when unset.
Tokenizers, corpora and taggers are placed in matching subdirectories.

Exits 0 when every package is verified and 1 otherwise.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runProvision,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic logging to stderr")
}

// SetServices injects the services used by the commands.
func SetServices(settings driving.SettingsService, dataDir driving.DataDirService, prov driving.Provisioner) {
	settingsService = settings
	dataDirService = dataDir
	provisioner = prov
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Output goes to stdout.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
