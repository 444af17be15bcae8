package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed scaffolds/cpp/*.tmpl
var scaffoldFS embed.FS

const (
	mainFileName     = "main.cpp"
	makefileFileName = "Makefile"
)

var templates = template.Must(template.ParseFS(scaffoldFS, "scaffolds/cpp/*.tmpl"))

// BuildContext records which I/O files were actually created and drives the
// content of main.cpp and the Makefile.
type BuildContext struct {
	HasInput  bool
	HasOutput bool
	Input     string
	Output    string
}

// HasIO reports whether any I/O file is present.
func (b BuildContext) HasIO() bool {
	return b.HasInput || b.HasOutput
}

// TouchTargets returns the argument list of the Makefile io target.
func (b BuildContext) TouchTargets() string {
	switch {
	case b.HasInput && b.HasOutput:
		return "$(INPUTFILE) && $(OUTPUTFILE)"
	case b.HasInput:
		return "$(INPUTFILE)"
	case b.HasOutput:
		return "$(OUTPUTFILE)"
	default:
		return ""
	}
}

// MainSource renders main.cpp.
func (b BuildContext) MainSource() (string, error) {
	return b.render(mainFileName)
}

// Makefile renders the Makefile.
func (b BuildContext) Makefile() (string, error) {
	return b.render(makefileFileName)
}

func (b BuildContext) render(name string) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".tmpl", b); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
