// Package plan assembles the ordered list of commands for one invocation:
// every needed output directory first, then one conversion per input file.
package plan

import (
	"fmt"
	"path"

	"github.com/EdJoPaTo/edc/internal/command"
	"github.com/EdJoPaTo/edc/internal/converter"
	"github.com/EdJoPaTo/edc/internal/outputpath"
)

// Step is a planned command together with the files it touches
type Step struct {
	Command *command.Command
	Input   string // empty for directory creation
	Output  string
}

// Plan holds directory creation steps followed by conversion steps
type Plan struct {
	Recipe      converter.Recipe
	Dirs        []Step
	Conversions []Step

	seen map[string]struct{}
}

// New creates an empty plan for recipe
func New(recipe converter.Recipe) *Plan {
	return &Plan{Recipe: recipe, seen: make(map[string]struct{})}
}

// Build plans the conversion of every input in order
func Build(recipe converter.Recipe, inputs []converter.Input) (*Plan, error) {
	p := New(recipe)
	for _, in := range inputs {
		if err := p.Add(in); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Add plans the conversion of a single input. The directory creation for its
// output is only added when no equal command is planned yet.
func (p *Plan) Add(in converter.Input) error {
	output, err := outputpath.Derive(in.Path, p.Recipe.Extension())
	if err != nil {
		return fmt.Errorf("failed to create output path: %w", err)
	}

	if mkdir := outputpath.MkdirCommand(output); mkdir != nil {
		key := mkdir.Key()
		if _, ok := p.seen[key]; !ok {
			p.seen[key] = struct{}{}
			p.Dirs = append(p.Dirs, Step{Command: mkdir, Output: path.Dir(output)})
		}
	}

	p.Conversions = append(p.Conversions, Step{
		Command: p.Recipe.Build(in, output),
		Input:   in.Path,
		Output:  output,
	})
	return nil
}

// Steps returns all steps in execution order
func (p *Plan) Steps() []Step {
	steps := make([]Step, 0, p.Len())
	steps = append(steps, p.Dirs...)
	return append(steps, p.Conversions...)
}

// Commands returns the commands of all steps in execution order
func (p *Plan) Commands() []*command.Command {
	steps := p.Steps()
	commands := make([]*command.Command, len(steps))
	for i, step := range steps {
		commands[i] = step.Command
	}
	return commands
}

// Len returns the number of planned commands
func (p *Plan) Len() int {
	return len(p.Dirs) + len(p.Conversions)
}
