package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/EdJoPaTo/edc/internal/logging"
	"github.com/EdJoPaTo/edc/internal/plan"
)

// StepResult holds the outcome of a single executed step
type StepResult struct {
	Index     int // 1-based position in the plan
	Step      plan.Step
	Line      string
	Success   bool
	ExitCode  int
	Error     string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// ExecutionResult holds the outcome of running a plan
type ExecutionResult struct {
	Success     bool
	Total       int
	StepResults []StepResult
	StartTime   time.Time
	Duration    time.Duration
}

// Completed returns how many steps finished successfully
func (r *ExecutionResult) Completed() int {
	n := 0
	for _, step := range r.StepResults {
		if step.Success {
			n++
		}
	}
	return n
}

// StepError reports the step that aborted a run
type StepError struct {
	Index    int
	Total    int
	Line     string
	ExitCode int
	Err      error
}

func (e *StepError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("step %d/%d failed with exit code %d: %s", e.Index, e.Total, e.ExitCode, e.Line)
	}
	return fmt.Sprintf("step %d/%d failed: %s: %v", e.Index, e.Total, e.Line, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Executor prints or runs plans one command at a time
type Executor struct {
	runner Runner
	out    io.Writer
	log    *logging.Logger
}

// NewExecutor creates an executor printing to out
func NewExecutor(runner Runner, out io.Writer, logger *logging.Logger) *Executor {
	return &Executor{runner: runner, out: out, log: logger}
}

// DryRun prints every planned command line without running anything
func (e *Executor) DryRun(p *plan.Plan) {
	for _, cmd := range p.Commands() {
		fmt.Fprintln(e.out, cmd.String())
	}
}

// Execute runs all steps in order and stops at the first failing one.
// The returned result covers every step attempted so far, also on error.
func (e *Executor) Execute(ctx context.Context, p *plan.Plan) (*ExecutionResult, error) {
	startTime := time.Now()
	steps := p.Steps()
	result := &ExecutionResult{
		Total:       len(steps),
		StepResults: make([]StepResult, 0, len(steps)),
		StartTime:   startTime,
	}

	for i, step := range steps {
		line := step.Command.String()
		fmt.Fprintf(e.out, "Run (%4d/%d): %s\n", i+1, len(steps), line)

		stepResult, err := e.executeStep(ctx, i+1, step)
		result.StepResults = append(result.StepResults, stepResult)

		if !stepResult.Success {
			e.log.Error("Step %d/%d failed after %v: %s", i+1, len(steps), stepResult.Duration, stepResult.Error)
			result.Duration = time.Since(startTime)
			return result, &StepError{
				Index:    i + 1,
				Total:    len(steps),
				Line:     line,
				ExitCode: stepResult.ExitCode,
				Err:      err,
			}
		}
		e.log.Debug("Step %d/%d completed in %v", i+1, len(steps), stepResult.Duration)
	}

	result.Success = true
	result.Duration = time.Since(startTime)
	e.log.Info("Completed %d commands in %v", len(steps), result.Duration.Truncate(time.Millisecond))
	return result, nil
}

func (e *Executor) executeStep(ctx context.Context, index int, step plan.Step) (StepResult, error) {
	result := StepResult{
		Index:     index,
		Step:      step,
		Line:      step.Command.String(),
		StartTime: time.Now(),
	}

	err := e.runner.Run(ctx, step.Command)
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	if err != nil {
		result.Error = err.Error()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		return result, err
	}

	result.Success = true
	return result, nil
}
