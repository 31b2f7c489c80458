package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/tubeharvest/shipkit/internal/adapters/outbound/config"
	"github.com/tubeharvest/shipkit/internal/adapters/outbound/gitinfo"
	"github.com/tubeharvest/shipkit/internal/adapters/outbound/runner"
	"github.com/tubeharvest/shipkit/internal/adapters/outbound/tui"
	"github.com/tubeharvest/shipkit/internal/application"
	"github.com/tubeharvest/shipkit/internal/domain"
)

func newPublishCmd() *cobra.Command {
	var (
		toTest     bool
		toProd     bool
		skipTests  bool
		skipChecks bool
		verifyOnly bool
		path       string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build and publish the package to a package index",
		Long: "Run the release pipeline: tests, quality gate, clean, build, " +
			"artifact and integrity checks, upload to the selected index, and " +
			"installation verification in an ephemeral environment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !toTest && !toProd && !verifyOnly {
				_ = cmd.Help()
				return fmt.Errorf("specify --test, --prod, or --verify-only")
			}
			if toTest && toProd {
				return fmt.Errorf("--test and --prod are mutually exclusive")
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configAdapter.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			target := application.TargetProd
			targetName := "production PyPI"
			if toTest {
				target = application.TargetTest
				targetName = "Test PyPI"
			}
			if verifyOnly && !toTest && !toProd {
				targetName = "production PyPI (verify only)"
			}

			out := cmd.OutOrStdout()
			svc := application.NewPublishService(
				runner.New(),
				gitinfo.New(),
				cfg,
				absPath,
				out,
				cmd.ErrOrStderr(),
				cmd.InOrStdin(),
			)

			fmt.Fprintln(out, tui.RenderHeader(targetName))

			opts := application.PublishOptions{
				Target:     target,
				SkipTests:  skipTests,
				SkipChecks: skipChecks,
				VerifyOnly: verifyOnly,
			}
			runErr := svc.Run(cmd.Context(), opts, func(r domain.StepResult) {
				fmt.Fprint(out, tui.RenderStepResult(r))
			})

			fmt.Fprint(out, tui.RenderOutcome(runErr))
			return runErr
		},
	}

	cmd.Flags().BoolVar(&toTest, "test", false, "Publish to the test index")
	cmd.Flags().BoolVar(&toProd, "prod", false, "Publish to the production index")
	cmd.Flags().BoolVar(&skipTests, "skip-tests", false, "Skip running the test suite")
	cmd.Flags().BoolVar(&skipChecks, "skip-checks", false, "Skip the code quality gate")
	cmd.Flags().BoolVar(&verifyOnly, "verify-only", false, "Only verify installation from the index")
	cmd.Flags().StringVar(&path, "path", ".", "Project path")

	return cmd
}
