package domain

import (
	"context"
	"fmt"
)

// Step is one named stage of a release pipeline.
type Step struct {
	Name string
	Run  func(ctx context.Context) error

	// BestEffort steps may fail without stopping the pipeline
	// (cleanup of build directories, removal of the ephemeral env).
	BestEffort bool
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	Name       string `json:"name"`
	Err        error  `json:"-"`
	BestEffort bool   `json:"best_effort,omitempty"`
}

// OK reports whether the step succeeded.
func (r StepResult) OK() bool { return r.Err == nil }

// Pipeline is an ordered list of steps executed sequentially.
type Pipeline struct {
	Steps []Step
}

// Execute runs the steps in order, invoking observe after each one.
// The first failure of a non-best-effort step stops the run and is
// returned wrapped with the step name. Best-effort failures are
// reported to the observer and never escalate.
func (p Pipeline) Execute(ctx context.Context, observe func(StepResult)) error {
	for _, step := range p.Steps {
		err := step.Run(ctx)
		if observe != nil {
			observe(StepResult{Name: step.Name, Err: err, BestEffort: step.BestEffort})
		}
		if err != nil && !step.BestEffort {
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}
	return nil
}
