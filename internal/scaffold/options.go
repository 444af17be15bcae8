package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Options describes one scaffold run. It is not modified once built.
type Options struct {
	Name   string // Project directory, relative to the working directory or absolute.
	Input  string // Optional input file name, created inside Name.
	Output string // Optional output file name, created inside Name.
	Git    bool   // Initialize a git repository in Name.
	Branch string // Initial git branch; empty leaves git's default.
}

// Validate rejects options that cannot describe a project.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return errors.New("project name must not be empty")
	}
	if o.Input != "" && o.Input == o.Output {
		return fmt.Errorf("input and output must be different files, both are %q", o.Input)
	}
	for _, f := range []struct{ flag, name string }{{"input", o.Input}, {"output", o.Output}} {
		if f.name == "" {
			continue
		}
		switch filepath.Clean(f.name) {
		case mainFileName, makefileFileName:
			return fmt.Errorf("%s file %q would be overwritten by the generated %s", f.flag, f.name, filepath.Clean(f.name))
		}
	}
	return nil
}
