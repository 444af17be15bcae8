package platform

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// minInitialBranch is the first git release that understands
// `git init --initial-branch`.
var minInitialBranch = semver.MustParse("2.28.0")

// Git runs the git binary found on PATH. The zero value is ready to use.
type Git struct {
	// Bin overrides the binary looked up on PATH. Used by tests.
	Bin string
}

func (g Git) binary() (string, error) {
	if g.Bin != "" {
		return g.Bin, nil
	}
	path, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("git is required but not found in PATH: %w", err)
	}
	return path, nil
}

// Version returns the installed git version.
func (g Git) Version(ctx context.Context) (*semver.Version, error) {
	bin, err := g.binary()
	if err != nil {
		return nil, err
	}
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("running git --version: %w", err)
	}
	return ParseGitVersion(string(out))
}

// Init creates an empty repository in dir. When branch is non-empty and the
// installed git supports it, the repository starts on that branch.
func (g Git) Init(ctx context.Context, dir, branch string) error {
	bin, err := g.binary()
	if err != nil {
		return err
	}

	args := []string{"init", "--quiet"}
	if branch != "" {
		if v, err := g.Version(ctx); err == nil && SupportsInitialBranch(v) {
			args = append(args, "--initial-branch="+branch)
		}
	}
	args = append(args, dir)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git init %s: %w: %s", dir, err, msg)
		}
		return fmt.Errorf("git init %s: %w", dir, err)
	}
	return nil
}

// ParseGitVersion extracts a semantic version from `git --version` output.
// Vendor suffixes such as "(Apple Git-146)" or ".windows.1" are ignored.
func ParseGitVersion(output string) (*semver.Version, error) {
	fields := strings.Fields(output)
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return nil, fmt.Errorf("unexpected git version output %q", strings.TrimSpace(output))
	}

	parts := strings.Split(fields[2], ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	v, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return nil, fmt.Errorf("parsing git version %q: %w", fields[2], err)
	}
	return v, nil
}

// SupportsInitialBranch reports whether v accepts --initial-branch.
func SupportsInitialBranch(v *semver.Version) bool {
	return v != nil && !v.LessThan(minInitialBranch)
}
