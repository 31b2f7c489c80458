package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tubeharvest/shipkit/internal/domain"
)

// Target selects the package index artifacts are uploaded to.
type Target int

const (
	TargetNone Target = iota
	TargetTest
	TargetProd
)

// PublishOptions are the flag-controlled knobs of a publish run.
type PublishOptions struct {
	Target     Target
	SkipTests  bool
	SkipChecks bool
	VerifyOnly bool
}

// PublishService drives the release pipeline: tests, quality gate,
// clean, build, artifact and integrity checks, upload, and install
// verification. Steps run strictly in order and the first failure of a
// non-best-effort step aborts the whole run.
type PublishService struct {
	runner      domain.CommandRunner
	repo        domain.RepoInspector
	cfg         domain.Config
	projectPath string

	out  io.Writer
	errW io.Writer
	in   io.Reader
}

// NewPublishService creates a PublishService. out and errW receive the
// narrated progress and the external tools' output; in supplies the
// production-upload confirmation.
func NewPublishService(
	runner domain.CommandRunner,
	repo domain.RepoInspector,
	cfg domain.Config,
	projectPath string,
	out, errW io.Writer,
	in io.Reader,
) *PublishService {
	return &PublishService{
		runner: runner, repo: repo, cfg: cfg, projectPath: projectPath,
		out: out, errW: errW, in: in,
	}
}

// Run executes the pipeline selected by opts, reporting each step to
// observe as it completes.
func (s *PublishService) Run(ctx context.Context, opts PublishOptions, observe func(domain.StepResult)) error {
	return s.pipeline(opts).Execute(ctx, observe)
}

func (s *PublishService) pipeline(opts PublishOptions) domain.Pipeline {
	if opts.VerifyOnly {
		return domain.Pipeline{Steps: []domain.Step{s.verifyStep(opts.Target)}}
	}

	var steps []domain.Step

	if !opts.SkipTests {
		steps = append(steps, domain.Step{Name: "tests", Run: s.runTests})
	}
	if !opts.SkipChecks {
		steps = append(steps,
			domain.Step{Name: "format check", Run: s.runFormatCheck},
			domain.Step{Name: "lint", Run: s.runLint},
			domain.Step{Name: "working tree", Run: s.checkWorkingTree},
		)
	}

	steps = append(steps,
		domain.Step{Name: "clean", Run: s.clean, BestEffort: true},
		domain.Step{Name: "build", Run: s.build},
		domain.Step{Name: "artifacts", Run: s.checkArtifacts},
		domain.Step{Name: "package check", Run: s.checkIntegrity},
	)

	switch opts.Target {
	case TargetTest:
		steps = append(steps,
			domain.Step{Name: "upload", Run: s.uploadToTestIndex},
			s.verifyStep(TargetTest),
		)
	case TargetProd:
		steps = append(steps,
			domain.Step{Name: "upload", Run: s.uploadToProdIndex},
			s.verifyStep(TargetProd),
		)
	}

	return domain.Pipeline{Steps: steps}
}

func (s *PublishService) verifyStep(target Target) domain.Step {
	return domain.Step{
		Name: "install verification",
		Run: func(ctx context.Context) error {
			return s.verifyInstall(ctx, target)
		},
	}
}

// run invokes one external command rooted at the project path.
func (s *PublishService) run(ctx context.Context, name string, args ...string) error {
	return s.runner.Run(ctx, domain.CommandSpec{
		Name:   name,
		Args:   args,
		Dir:    s.projectPath,
		Stdout: s.out,
		Stderr: s.errW,
	})
}

func (s *PublishService) runTests(ctx context.Context) error {
	return s.run(ctx, s.cfg.Python, "-m", "pytest", s.cfg.TestsDir, "-v")
}

func (s *PublishService) runFormatCheck(ctx context.Context) error {
	if err := s.run(ctx, s.cfg.Python, "-m", "black", "--check", s.cfg.PackageDir); err != nil {
		return fmt.Errorf("formatting issues found, run: black %s: %w", s.cfg.PackageDir, err)
	}
	return nil
}

func (s *PublishService) runLint(ctx context.Context) error {
	return s.run(ctx, s.cfg.Python, "-m", "flake8", s.cfg.PackageDir)
}

func (s *PublishService) checkWorkingTree(context.Context) error {
	if !s.repo.IsRepo(s.projectPath) {
		fmt.Fprintln(s.out, "not a git repository, skipping working tree check")
		return nil
	}
	clean, err := s.repo.IsClean(s.projectPath)
	if err != nil {
		return err
	}
	if !clean {
		return errors.New("working tree has uncommitted changes")
	}
	return nil
}

// clean removes prior build output. Best-effort: a leftover directory
// never blocks a release on its own.
func (s *PublishService) clean(context.Context) error {
	targets := []string{
		filepath.Join(s.projectPath, "build"),
		filepath.Join(s.projectPath, s.cfg.DistDir),
	}
	if eggs, err := filepath.Glob(filepath.Join(s.projectPath, "*.egg-info")); err == nil {
		targets = append(targets, eggs...)
	}

	for _, target := range targets {
		if err := os.RemoveAll(target); err != nil {
			return err
		}
	}
	return nil
}

func (s *PublishService) build(ctx context.Context) error {
	return s.run(ctx, s.cfg.Python, "-m", "build")
}

// distFiles lists the built artifacts by kind.
func (s *PublishService) distFiles() (wheels, sdists []string) {
	distDir := filepath.Join(s.projectPath, s.cfg.DistDir)
	wheels, _ = filepath.Glob(filepath.Join(distDir, "*.whl"))
	sdists, _ = filepath.Glob(filepath.Join(distDir, "*.tar.gz"))
	return wheels, sdists
}

// checkArtifacts requires both a wheel and a source distribution.
func (s *PublishService) checkArtifacts(context.Context) error {
	wheels, sdists := s.distFiles()
	if len(wheels) == 0 {
		return fmt.Errorf("no wheel produced under %s/", s.cfg.DistDir)
	}
	if len(sdists) == 0 {
		return fmt.Errorf("no source distribution produced under %s/", s.cfg.DistDir)
	}
	for _, file := range append(wheels, sdists...) {
		fmt.Fprintf(s.out, "  - %s\n", filepath.Base(file))
	}
	return nil
}

func (s *PublishService) checkIntegrity(ctx context.Context) error {
	wheels, sdists := s.distFiles()
	args := append([]string{"-m", "twine", "check"}, append(wheels, sdists...)...)
	return s.run(ctx, s.cfg.Python, args...)
}

func (s *PublishService) uploadToTestIndex(ctx context.Context) error {
	wheels, sdists := s.distFiles()
	args := []string{"-m", "twine", "upload", "--repository", s.cfg.TestIndex.Repository}
	args = append(args, append(wheels, sdists...)...)
	if err := s.run(ctx, s.cfg.Python, args...); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "uploaded, check the package at %s\n", s.cfg.TestIndex.ProjectURL)
	fmt.Fprintf(s.out, "test installation with: pip install --index-url %s %s\n",
		s.cfg.TestIndex.SimpleURL, s.cfg.PackageName)
	return nil
}

// uploadToProdIndex asks for an explicit "yes" before anything leaves
// the machine. Any other answer aborts the run.
func (s *PublishService) uploadToProdIndex(ctx context.Context) error {
	fmt.Fprint(s.out, "Are you sure you want to publish to production PyPI? (yes/no): ")
	if !s.confirmed() {
		return errors.New("upload cancelled")
	}

	args := []string{"-m", "twine", "upload"}
	if s.cfg.ProdIndex.Repository != "" {
		args = append(args, "--repository", s.cfg.ProdIndex.Repository)
	}
	wheels, sdists := s.distFiles()
	args = append(args, append(wheels, sdists...)...)
	if err := s.run(ctx, s.cfg.Python, args...); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "uploaded, check the package at %s\n", s.cfg.ProdIndex.ProjectURL)
	fmt.Fprintf(s.out, "install with: pip install %s\n", s.cfg.PackageName)
	return nil
}

func (s *PublishService) confirmed() bool {
	if s.in == nil {
		return false
	}
	line, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}

// verifyInstall creates an ephemeral virtual environment, installs the
// package from the chosen index, imports it, and runs the CLI's --help.
// The environment is removed on every exit path.
func (s *PublishService) verifyInstall(ctx context.Context, target Target) error {
	envDir, err := os.MkdirTemp("", s.cfg.PackageName+"-verify-")
	if err != nil {
		return fmt.Errorf("creating verification env dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(envDir); rmErr != nil {
			fmt.Fprintf(s.errW, "could not remove verification env %s: %v\n", envDir, rmErr)
		}
	}()

	if err := s.run(ctx, s.cfg.Python, "-m", "venv", envDir); err != nil {
		return fmt.Errorf("creating virtualenv: %w", err)
	}

	installArgs := []string{"install"}
	if target == TargetTest {
		installArgs = append(installArgs,
			"--index-url", s.cfg.TestIndex.SimpleURL,
			"--extra-index-url", "https://pypi.org/simple/",
		)
	}
	installArgs = append(installArgs, s.cfg.PackageName)
	if err := s.run(ctx, filepath.Join(envDir, "bin", "pip"), installArgs...); err != nil {
		return fmt.Errorf("installing %s: %w", s.cfg.PackageName, err)
	}

	importStmt := fmt.Sprintf("import %s", strings.ReplaceAll(s.cfg.PackageName, "-", "_"))
	if err := s.run(ctx, filepath.Join(envDir, "bin", "python"), "-c", importStmt); err != nil {
		return fmt.Errorf("importing %s: %w", s.cfg.PackageName, err)
	}

	if err := s.run(ctx, filepath.Join(envDir, "bin", s.cfg.EntryPoint), "--help"); err != nil {
		return fmt.Errorf("running %s --help: %w", s.cfg.EntryPoint, err)
	}

	return nil
}
