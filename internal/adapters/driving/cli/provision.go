package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
	"github.com/custodia-labs/nltkdata/internal/core/ports/driving"
)

func runProvision(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || dataDirService == nil || provisioner == nil {
		return errors.New("services not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	baseDir, err := dataDirService.Resolve(settings)
	if err != nil {
		return fmt.Errorf("failed to prepare data directory: %w", err)
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)

	cmd.Printf("NLTK data directory: %s\n", baseDir)

	report, err := provisioner.Provision(cmd.Context(), driving.ProvisionRequest{
		BaseDir:  baseDir,
		Settings: *settings,
		Output:   out,
		Observer: &statusPrinter{cmd: cmd, styles: st},
	})
	if err != nil {
		return err
	}

	printSummary(cmd, st, report)

	if !report.Success() {
		return domain.ErrIncomplete
	}
	return nil
}

// statusPrinter prints one status line per package.
type statusPrinter struct {
	cmd    *cobra.Command
	styles styles
}

func (p *statusPrinter) PackageStarted(pkg domain.Package) {
	p.cmd.Printf("→ Downloading %s (%s)… ", pkg.Name, pkg.Category)
}

func (p *statusPrinter) PackageFinished(result domain.PackageResult) {
	switch result.Outcome {
	case domain.OutcomeVerified:
		p.cmd.Println(p.styles.Success.Render("✓"))
	case domain.OutcomeUnresolvable:
		p.cmd.Println(p.styles.Warning.Render("⚠ not found after download"))
	default:
		p.cmd.Println(p.styles.Error.Render(fmt.Sprintf("✗ error: %v", result.Err)))
	}
}

// printSummary prints the verdict, and the manual download fallback when
// any package failed.
func printSummary(cmd *cobra.Command, st styles, report *domain.Report) {
	cmd.Println()
	cmd.Println(st.Heading.Render("Summary:"))
	cmd.Printf("  NLTK_DATA=%s\n", report.BaseDir)

	if report.Success() {
		cmd.Printf("  Success: %s\n", st.Success.Render("YES"))
		return
	}
	cmd.Printf("  Success: %s\n", st.Error.Render("PARTIAL/NO"))

	// Every package is listed, including the verified ones.
	cmd.Println()
	cmd.Println("If downloads failed due to network/SSL, you can manually fetch ZIPs:")
	for _, res := range report.Results {
		cmd.Printf("  %s\n", st.Muted.Render(res.Package.FallbackURL()))
	}
	cmd.Printf("Then unzip into %s/<subdir> accordingly.\n", report.BaseDir)
}
