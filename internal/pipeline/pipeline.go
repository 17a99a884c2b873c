// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs an ordered list of resumable steps with an operator
// checkpoint between steps. Steps persist their own results, so a pipeline
// stopped midway picks up where it left off on the next run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/pdiddy/venture-advisor/internal/console"
	"github.com/pdiddy/venture-advisor/internal/logging"
)

// Step is one named unit of pipeline work. Next labels the step that follows
// in the continuation prompt; New fills it from the step order when empty.
type Step struct {
	Name string
	Next string
	Run  func(ctx context.Context) error
}

// Runner executes steps in order, confirming continuation with the operator
// after each one.
type Runner struct {
	name    string
	console *console.Console
	log     *logging.Logger
	steps   []Step
}

// New builds a runner for the named pipeline.
func New(name string, con *console.Console, log *logging.Logger, steps ...Step) *Runner {
	for i := range steps {
		if steps[i].Next == "" && i+1 < len(steps) {
			steps[i].Next = steps[i+1].Name
		}
	}
	return &Runner{name: name, console: con, log: log, steps: steps}
}

// Run executes the steps. A step error aborts the pipeline; declining the
// continuation prompt stops it cleanly with a summary of completed steps.
func (r *Runner) Run(ctx context.Context) error {
	r.console.Header(r.name)

	for i, step := range r.steps {
		r.console.SubHeader(fmt.Sprintf("Step %d/%d: %s", i+1, len(r.steps), step.Name))
		r.log.Debug("running pipeline step", "pipeline", r.name, "step", step.Name)

		if err := step.Run(ctx); err != nil {
			r.console.Error(fmt.Sprintf("Step %q failed: %v", step.Name, err))
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
		r.console.Success(fmt.Sprintf("Step %d/%d completed: %s", i+1, len(r.steps), step.Name))

		if i == len(r.steps)-1 {
			break
		}
		cont, err := r.console.Confirm(fmt.Sprintf("Do you want to continue to %s?", step.Next), true)
		if err != nil {
			return fmt.Errorf("reading continuation answer: %w", err)
		}
		if !cont {
			r.summarize(i + 1)
			return nil
		}
	}

	r.console.Success(r.name + " finished.")
	return nil
}

// summarize lists the completed steps after an early exit.
func (r *Runner) summarize(completed int) {
	r.console.SubHeader("Stopped early")
	r.console.Info("Completed steps:")
	for i := 0; i < completed; i++ {
		r.console.Println("  ✔ " + r.steps[i].Name)
	}
	r.console.Info("Run the pipeline again to resume from here.")
}
