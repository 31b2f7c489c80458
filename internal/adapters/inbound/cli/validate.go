package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/tubeharvest/shipkit/internal/adapters/outbound/config"
	"github.com/tubeharvest/shipkit/internal/adapters/outbound/project"
	"github.com/tubeharvest/shipkit/internal/adapters/outbound/tui"
	"github.com/tubeharvest/shipkit/internal/application"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		path       string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the package is properly configured for publishing",
		Long: "Run the full pre-release checklist: metadata fields, package " +
			"structure, required files, version consistency, critical " +
			"dependencies, entry points, and the packaging manifest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configAdapter.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc := application.NewValidateService(project.New(), cfg)
			report := svc.Validate(absPath)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !report.AllPassed() {
				return fmt.Errorf("validation failed: %d of %d checks did not pass",
					report.Failed(), report.Total())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Project path")

	return cmd
}
