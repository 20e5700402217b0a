// Package outputpath derives where converted files are written.
//
// Outputs mirror the relative directory of their input below a fixed root:
//
//	photos/2021/img.png -> converted/photos/2021/img.jpg
//	img.png             -> converted/img.jpg
package outputpath

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/EdJoPaTo/edc/internal/command"
)

// Root is the directory all outputs are placed in
const Root = "converted"

var (
	ErrNoFileStem = errors.New("input has no file stem")
	ErrNotText    = errors.New("input path is not valid utf8")
)

// Derive returns converted/<input dir>/<input stem>.<extension>.
// The extension of the input is dropped.
func Derive(input, extension string) (string, error) {
	if !utf8.ValidString(input) {
		return "", fmt.Errorf("%w: %q", ErrNotText, input)
	}

	slashed := filepath.ToSlash(input)
	stem := fileStem(slashed)
	if stem == "" {
		return "", fmt.Errorf("%w: %s", ErrNoFileStem, input)
	}

	dir := path.Dir(strings.TrimSuffix(slashed, "/"))
	outDir := Root
	if dir != "." && dir != "" {
		outDir = Root + "/" + dir
	}

	return fmt.Sprintf("%s/%s.%s", outDir, stem, extension), nil
}

// MkdirCommand returns the command creating the parent directory of output.
// It returns nil when output has no parent directory.
func MkdirCommand(output string) *command.Command {
	dir := path.Dir(filepath.ToSlash(output))
	if dir == "." || dir == "" || dir == "/" {
		return nil
	}
	return command.New("mkdir").Args("-p", dir)
}

// fileStem returns the final path element without its extension.
// A name with only a leading dot (".profile") is its own stem.
func fileStem(p string) string {
	base := path.Base(p)
	if base == "." || base == ".." || base == "/" {
		return ""
	}

	ext := path.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
