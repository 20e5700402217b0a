package plan

import (
	"errors"
	"testing"

	"github.com/EdJoPaTo/edc/internal/converter"
	"github.com/EdJoPaTo/edc/internal/outputpath"
)

func inputs(paths ...string) []converter.Input {
	result := make([]converter.Input, len(paths))
	for i, p := range paths {
		result[i] = converter.Input{Path: p}
	}
	return result
}

func lines(p *Plan) []string {
	var result []string
	for _, cmd := range p.Commands() {
		result = append(result, cmd.String())
	}
	return result
}

func TestBuildDeduplicatesDirectories(t *testing.T) {
	recipe := converter.NewRecipe(converter.Photo, converter.Options{})
	p, err := Build(recipe, inputs("a.png", "b.png", "c.png"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := []string{
		"mkdir -p converted",
		"convert a.png -background black -alpha remove -sampling-factor 4:2:0 -quality 85 converted/a.jpg",
		"convert b.png -background black -alpha remove -sampling-factor 4:2:0 -quality 85 converted/b.jpg",
		"convert c.png -background black -alpha remove -sampling-factor 4:2:0 -quality 85 converted/c.jpg",
	}
	got := lines(p)
	if len(got) != len(expected) {
		t.Fatalf("Expected %d commands, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("command %d:\n got      %s\n expected %s", i, got[i], expected[i])
		}
	}
}

func TestBuildDirectoriesFirstInFirstSeenOrder(t *testing.T) {
	recipe := converter.NewRecipe(converter.Sound, converter.Options{})
	p, err := Build(recipe, inputs("b/1.wav", "a/2.wav", "b/3.wav", "a/x/4.wav", "5.wav"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expectedDirs := []string{
		"mkdir -p converted/b",
		"mkdir -p converted/a",
		"mkdir -p converted/a/x",
		"mkdir -p converted",
	}
	if len(p.Dirs) != len(expectedDirs) {
		t.Fatalf("Expected %d directory steps, got %d", len(expectedDirs), len(p.Dirs))
	}
	for i, want := range expectedDirs {
		if got := p.Dirs[i].Command.String(); got != want {
			t.Errorf("dir %d = %s, expected %s", i, got, want)
		}
	}

	if len(p.Conversions) != 5 {
		t.Fatalf("Expected 5 conversions, got %d", len(p.Conversions))
	}
	for i, in := range []string{"b/1.wav", "a/2.wav", "b/3.wav", "a/x/4.wav", "5.wav"} {
		if p.Conversions[i].Input != in {
			t.Errorf("conversion %d input = %s, expected %s", i, p.Conversions[i].Input, in)
		}
	}
	if p.Conversions[3].Output != "converted/a/x/4.mp3" {
		t.Errorf("Unexpected output path %s", p.Conversions[3].Output)
	}

	steps := p.Steps()
	if len(steps) != p.Len() || p.Len() != 9 {
		t.Fatalf("Expected 9 steps, got %d (Len %d)", len(steps), p.Len())
	}
	for i, step := range steps[:4] {
		if step.Input != "" {
			t.Errorf("step %d should be a directory step", i)
		}
	}
	if steps[0].Output != "converted/b" {
		t.Errorf("Directory step output = %s, expected converted/b", steps[0].Output)
	}
}

func TestBuildSameFileTwice(t *testing.T) {
	recipe := converter.NewRecipe(converter.Video, converter.Options{})
	p, err := Build(recipe, inputs("clip.mov", "clip.mov"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(p.Dirs) != 1 || len(p.Conversions) != 2 {
		t.Errorf("Expected 1 directory and 2 conversions, got %d and %d", len(p.Dirs), len(p.Conversions))
	}
}

func TestBuildPathError(t *testing.T) {
	recipe := converter.NewRecipe(converter.Video, converter.Options{})
	_, err := Build(recipe, inputs("ok.mov", "."))
	if !errors.Is(err, outputpath.ErrNoFileStem) {
		t.Errorf("Expected ErrNoFileStem, got %v", err)
	}
}

func TestBuildEmpty(t *testing.T) {
	p, err := Build(converter.NewRecipe(converter.Opus, converter.Options{}), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if p.Len() != 0 || len(p.Commands()) != 0 {
		t.Errorf("Expected empty plan, got %d steps", p.Len())
	}
}
