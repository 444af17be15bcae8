package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// TotalSteps is the number of progress entries every run reports.
const TotalSteps = 8

// FileSystem is the subset of filesystem operations a run needs.
type FileSystem interface {
	// CreateDir creates a directory and its parents. It returns an error
	// when the directory already exists.
	CreateDir(path string) error
	// Create creates or truncates a file.
	Create(path string) (io.WriteCloser, error)
}

// GitInitializer creates a repository in dir.
type GitInitializer interface {
	Init(ctx context.Context, dir, branch string) error
}

// Scaffolder runs the fixed project generation sequence.
type Scaffolder struct {
	fs       FileSystem
	git      GitInitializer
	reporter Reporter

	// Getwd resolves the directory the project name is relative to when
	// initializing git. Defaults to os.Getwd.
	Getwd func() (string, error)
}

// New returns a Scaffolder using the given collaborators.
func New(fsys FileSystem, git GitInitializer, reporter Reporter) *Scaffolder {
	return &Scaffolder{
		fs:       fsys,
		git:      git,
		reporter: reporter,
		Getwd:    os.Getwd,
	}
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Root  string
	Steps []Step
	Files []string // Files written successfully, relative to Root.
	Build BuildContext
}

// Failed returns the steps that ended in error.
func (r *Result) Failed() []Step {
	var failed []Step
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Err summarizes failed steps, or returns nil if every step succeeded or
// was skipped.
func (r *Result) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	if len(failed) == 1 {
		return fmt.Errorf("1 of %d steps failed: %s", TotalSteps, failed[0].Message())
	}
	return fmt.Errorf("%d of %d steps failed", len(failed), TotalSteps)
}

// run carries the per-invocation step counter.
type run struct {
	s      *Scaffolder
	index  int
	result *Result
}

func (r *run) report(status Status, err error, format string, args ...any) {
	r.index++
	step := Step{
		Index:  r.index,
		Total:  TotalSteps,
		Status: status,
		Err:    err,
		format: format,
		args:   args,
	}
	r.result.Steps = append(r.result.Steps, step)
	if r.s.reporter != nil {
		r.s.reporter.Report(step)
	}
}

// Run performs every step in order. Failures are reported and the run moves
// on; inspect Result.Err for an overall verdict.
func (s *Scaffolder) Run(ctx context.Context, opts Options) *Result {
	root := opts.Name
	r := &run{s: s, result: &Result{Root: root}}

	if err := s.fs.CreateDir(root); err != nil {
		r.report(StatusFailed, err, "Failed to create main folder: %v", err)
	} else {
		r.report(StatusOK, nil, "Successfully created main folder: %s", Name(root))
	}

	var build BuildContext
	build.HasInput = r.createIOFile(root, opts.Input, "input")
	if build.HasInput {
		build.Input = opts.Input
	}
	build.HasOutput = r.createIOFile(root, opts.Output, "output")
	if build.HasOutput {
		build.Output = opts.Output
	}
	r.result.Build = build

	mainSource, mainErr := build.MainSource()
	r.writeFile(root, mainFileName, mainSource, mainErr)

	makefile, makeErr := build.Makefile()
	r.writeFile(root, makefileFileName, makefile, makeErr)

	r.initGit(ctx, root, opts)

	return r.result
}

// createIOFile touches an empty I/O file and reports whether it now exists.
func (r *run) createIOFile(root, name, kind string) bool {
	if name == "" {
		r.report(StatusSkipped, nil, "No %s file provided", kind)
		return false
	}

	f, err := r.s.fs.Create(filepath.Join(root, name))
	if err == nil {
		err = f.Close()
	}
	if err != nil {
		r.report(StatusFailed, err, "Failed to create %s file %s: %v", kind, Name(name), err)
		return false
	}

	r.result.Files = append(r.result.Files, name)
	r.report(StatusOK, nil, "Successfully created %s file: %s", kind, Name(name))
	return true
}

// writeFile reports two steps: creating the file, then writing its content.
// When creation fails the write step is reported as skipped so numbering
// still ends at TotalSteps.
func (r *run) writeFile(root, name, content string, renderErr error) {
	if renderErr != nil {
		r.report(StatusFailed, renderErr, "Failed to create %s: %v", Name(name), renderErr)
		r.report(StatusSkipped, nil, "Skipped initializing %s", Name(name))
		return
	}

	f, err := r.s.fs.Create(filepath.Join(root, name))
	if err != nil {
		r.report(StatusFailed, err, "Failed to create %s: %v", Name(name), err)
		r.report(StatusSkipped, nil, "Skipped initializing %s", Name(name))
		return
	}
	r.report(StatusOK, nil, "Successfully created: %s", Name(name))

	_, err = io.WriteString(f, content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		r.report(StatusFailed, err, "Failed to initialize %s: %v", Name(name), err)
		return
	}

	r.result.Files = append(r.result.Files, name)
	r.report(StatusOK, nil, "Successfully initialized: %s", Name(name))
}

func (r *run) initGit(ctx context.Context, root string, opts Options) {
	if !opts.Git {
		r.report(StatusSkipped, nil, "%s was not initialized", Name("git"))
		return
	}
	if r.s.git == nil {
		err := fmt.Errorf("no git support configured")
		r.report(StatusFailed, err, "Failed to initialize %s: %v", Name("git"), err)
		return
	}

	dir := root
	if !filepath.IsAbs(dir) {
		wd, err := r.s.Getwd()
		if err != nil {
			r.report(StatusFailed, err, "Failed to initialize %s: %v", Name("git"), err)
			return
		}
		dir = filepath.Join(wd, root)
	}

	if err := r.s.git.Init(ctx, dir, opts.Branch); err != nil {
		r.report(StatusFailed, err, "Failed to initialize %s: %v", Name("git"), err)
		return
	}
	r.report(StatusOK, nil, "Successfully initialized %s", Name("git"))
}
