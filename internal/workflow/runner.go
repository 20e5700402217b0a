package workflow

import (
	"context"
	"io"
	"os"

	"github.com/EdJoPaTo/edc/internal/command"
)

// Runner starts a command and waits for it to finish.
// A nil error means the process exited successfully.
type Runner interface {
	Run(ctx context.Context, cmd *command.Command) error
}

// ExecRunner runs commands as child processes sharing the given streams
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner attached to the terminal of this process
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, cmd *command.Command) error {
	c := cmd.Exec(ctx)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	return c.Run()
}
