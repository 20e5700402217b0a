// Package tools reports which external programs are installed.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"unicode/utf8"

	"github.com/EdJoPaTo/edc/internal/command"
	"github.com/EdJoPaTo/edc/internal/converter"
)

// VersionCommands returns the version query of every program a recipe may run
func VersionCommands(t converter.Tools) []*command.Command {
	return []*command.Command{
		command.New(t.Convert).Arg("--version"),
		command.New(t.FFmpeg).Arg("-version"),
		command.New("mkdir").Arg("--version"),
		command.New(t.Oxipng).Arg("--version"),
	}
}

// CheckVersions runs every command and prints what it reported. Failures are
// printed, never returned.
func CheckVersions(ctx context.Context, w io.Writer, commands []*command.Command) {
	fmt.Fprintln(w, "Check versions of all tools used...")
	for _, cmd := range commands {
		checkVersion(ctx, w, cmd)
	}
}

func checkVersion(ctx context.Context, w io.Writer, cmd *command.Command) {
	fmt.Fprintf(w, "\n\ncheck %s...\n", cmd.Program())

	var stdout, stderr bytes.Buffer
	c := cmd.Exec(ctx)
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(w, "Failed to check version: %v\n", err)
		return
	}
	if exitErr != nil {
		fmt.Fprintf(w, "Statuscode: %s\n", exitErr.ProcessState)
	}

	printStream(w, "stdout", stdout.Bytes())
	printStream(w, "stderr", stderr.Bytes())
}

func printStream(w io.Writer, name string, data []byte) {
	if len(data) == 0 {
		return
	}
	if !utf8.Valid(data) {
		fmt.Fprintf(w, "Error parsing %s: invalid utf-8\n", name)
		return
	}
	fmt.Fprintln(w, string(data))
}
