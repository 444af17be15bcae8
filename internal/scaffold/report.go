package scaffold

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Status is the outcome of a single step.
type Status int

const (
	StatusOK      Status = iota // the step did its work
	StatusSkipped               // the step was not requested or could not apply
	StatusFailed                // the step hit an error
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Name marks a message argument as the subject of a step (a file name, a
// directory, "git"). Reporters may highlight it.
type Name string

// Step is one numbered progress entry.
type Step struct {
	Index  int
	Total  int
	Status Status
	Err    error

	format string
	args   []any
}

// Message renders the step text without styling or the [i/N] prefix.
func (s Step) Message() string {
	args := make([]any, len(s.args))
	for i, a := range s.args {
		if n, ok := a.(Name); ok {
			args[i] = string(n)
		} else {
			args[i] = a
		}
	}
	return fmt.Sprintf(s.format, args...)
}

// String renders the step as "[i/N] message".
func (s Step) String() string {
	return fmt.Sprintf("[%d/%d] %s", s.Index, s.Total, s.Message())
}

// Reporter receives each step as soon as it completes.
type Reporter interface {
	Report(step Step)
}

// ConsoleReporter prints colored progress lines: a bold [i/N] prefix in
// green, yellow or red by status, and italic magenta step subjects.
type ConsoleReporter struct {
	w    io.Writer
	ok   *color.Color
	skip *color.Color
	fail *color.Color
	name *color.Color
}

// NewConsoleReporter writes progress to w. When noColor is set styling is
// disabled regardless of terminal detection.
func NewConsoleReporter(w io.Writer, noColor bool) *ConsoleReporter {
	r := &ConsoleReporter{
		w:    w,
		ok:   color.New(color.Bold, color.FgHiGreen),
		skip: color.New(color.Bold, color.FgHiYellow),
		fail: color.New(color.Bold, color.FgRed),
		name: color.New(color.Italic, color.FgMagenta),
	}
	if noColor {
		for _, c := range []*color.Color{r.ok, r.skip, r.fail, r.name} {
			c.DisableColor()
		}
	}
	return r
}

// Report implements Reporter.
func (r *ConsoleReporter) Report(step Step) {
	prefix := r.ok
	switch step.Status {
	case StatusSkipped:
		prefix = r.skip
	case StatusFailed:
		prefix = r.fail
	}

	args := make([]any, len(step.args))
	for i, a := range step.args {
		if n, ok := a.(Name); ok {
			args[i] = r.name.Sprint(string(n))
		} else {
			args[i] = a
		}
	}

	fmt.Fprintf(r.w, "%s %s\n",
		prefix.Sprintf("[%d/%d]", step.Index, step.Total),
		fmt.Sprintf(step.format, args...))
}
