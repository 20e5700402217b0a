package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrAbsolutePath    = errors.New("absolute path is not supported")
	ErrNotRegularFile  = errors.New("a file needs to be a valid existing file")
	ErrNotText         = errors.New("only valid utf8 paths are supported")
	ErrParentTraversal = errors.New("paths need to be relative below the work directory")
)

// InputError names the input file that failed validation and the rule it broke
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *InputError) Unwrap() error { return e.Err }

// ValidateInputs checks every input before anything is planned and returns the
// first violation.
func ValidateInputs(paths []string) error {
	for _, p := range paths {
		if err := ValidateInput(p); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInput requires p to be a relative, utf8, existing regular file that
// does not climb out of the working directory.
func ValidateInput(p string) error {
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return &InputError{Path: p, Err: ErrAbsolutePath}
	}

	fi, err := os.Stat(p)
	if err != nil || !fi.Mode().IsRegular() {
		return &InputError{Path: p, Err: ErrNotRegularFile}
	}

	if !utf8.ValidString(p) {
		return &InputError{Path: p, Err: ErrNotText}
	}

	if strings.Contains(filepath.ToSlash(p), "../") {
		return &InputError{Path: p, Err: ErrParentTraversal}
	}

	return nil
}
