// Package runner executes the external tools the release pipeline
// depends on (pytest, black, flake8, build, twine, venv, pip). The
// tools are opaque; their exit status is the only success signal.
package runner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tubeharvest/shipkit/internal/domain"
)

// ExecRunner implements domain.CommandRunner with os/exec.
type ExecRunner struct{}

// New creates an ExecRunner.
func New() *ExecRunner { return &ExecRunner{} }

// Run starts the command and blocks until it exits. The command line is
// echoed to the spec's stdout writer before execution so every run is
// narrated to the console.
func (r *ExecRunner) Run(ctx context.Context, spec domain.CommandSpec) error {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	if spec.Stdout != nil {
		fmt.Fprintf(spec.Stdout, "$ %s %s\n", spec.Name, strings.Join(spec.Args, " "))
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", spec.Name, err)
	}
	return nil
}
