package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the settings stored in the configuration file.

Environment variables take precedence over the file:
  NLTK_DATA            data directory
  NLTKDATA_INDEX_URL   package index URL
  NLTKDATA_CA_BUNDLE   PEM bundle of trusted root certificates
  NLTKDATA_CONFIG_DIR  directory holding config.toml`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the configuration file.

Available keys:
  index.url                    package index URL (http or https)
  tls.ca_bundle                PEM bundle path, empty for the bundled roots
  network.timeout_seconds      per-request timeout in seconds
  network.requests_per_second  request pacing, 0 disables it`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("  Config file: %s\n", settingsService.Path())
	cmd.Println()

	cmd.Println("[Data]")
	if settings.DataDir != "" {
		cmd.Printf("  Directory: %s (NLTK_DATA)\n", settings.DataDir)
	} else {
		cmd.Printf("  Directory: ~/%s (default)\n", domain.DefaultDataDirName)
	}
	cmd.Println()

	cmd.Println("[Index]")
	cmd.Printf("  URL: %s\n", settings.IndexURL)
	cmd.Println()

	cmd.Println("[TLS]")
	cmd.Printf("  Trust store: %s\n", settings.Trust.Description())
	cmd.Println()

	cmd.Println("[Network]")
	cmd.Printf("  Timeout: %s\n", settings.Network.Timeout)
	if settings.Network.RequestsPerSecond > 0 {
		cmd.Printf("  Requests per second: %g\n", settings.Network.RequestsPerSecond)
	} else {
		cmd.Println("  Requests per second: unlimited")
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
