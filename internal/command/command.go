package command

import (
	"context"
	"os/exec"
	"slices"
	"strings"
)

// Command is a single planned program invocation.
// Argument order is significant and kept exactly as appended.
type Command struct {
	program string
	args    []string
}

// New creates a command for program with no arguments
func New(program string) *Command {
	return &Command{program: program}
}

// Arg appends a single argument
func (c *Command) Arg(arg string) *Command {
	c.args = append(c.args, arg)
	return c
}

// Args appends the given arguments in order
func (c *Command) Args(args ...string) *Command {
	c.args = append(c.args, args...)
	return c
}

// Program returns the program name
func (c *Command) Program() string {
	return c.program
}

// Arguments returns a copy of the argument list
func (c *Command) Arguments() []string {
	return slices.Clone(c.args)
}

// String renders the command line for humans. Arguments containing a space are
// wrapped in double quotes; nothing else is escaped, so the result is not a
// safe shell command.
func (c *Command) String() string {
	var builder strings.Builder
	builder.WriteString(c.program)

	for _, arg := range c.args {
		builder.WriteByte(' ')
		if strings.Contains(arg, " ") {
			builder.WriteByte('"')
			builder.WriteString(arg)
			builder.WriteByte('"')
		} else {
			builder.WriteString(arg)
		}
	}

	return builder.String()
}

// Exec returns the process specification for this command.
// Program and arguments are passed as-is, no shell is involved.
func (c *Command) Exec(ctx context.Context) *exec.Cmd {
	return exec.CommandContext(ctx, c.program, c.args...)
}

// Equal reports whether both commands have the same program and arguments
func (c *Command) Equal(other *Command) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.program == other.program && slices.Equal(c.args, other.args)
}

// Key returns a string that is equal for structurally equal commands
func (c *Command) Key() string {
	return c.program + "\x00" + strings.Join(c.args, "\x00")
}
