package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"

	"github.com/cppinit/cppinit/internal/config"
	"github.com/cppinit/cppinit/internal/platform"
	"github.com/spf13/cobra"
)

// requiredTools are the binaries a generated project needs.
var requiredTools = []string{"g++", "make", "git"}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the toolchain and configuration",
		Long:  `Verify that the compiler, make and git are available and that the config file is valid.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			missing := runToolCheck(out, exec.LookPath)
			runGitCheck(cmd, platform.Git{})
			configOK := runConfigCheck(out)

			if missing > 0 || !configOK {
				return fmt.Errorf("doctor found problems")
			}
			return nil
		},
	}
}

// runToolCheck reports each required binary and returns how many are missing.
func runToolCheck(w io.Writer, lookPath func(string) (string, error)) int {
	fmt.Fprintln(w, "Toolchain check:")
	missing := 0
	for _, name := range requiredTools {
		path, err := lookPath(name)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s not found\n", name)
			missing++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
	}
	return missing
}

func runGitCheck(cmd *cobra.Command, git platform.Git) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Git check:")

	v, err := git.Version(cmd.Context())
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] git %s\n", v)

	branch := config.Get(config.KeyDefaultBranch)
	switch {
	case branch == "":
		fmt.Fprintln(w, "  [INFO] default_branch not set, git chooses the initial branch")
	case platform.SupportsInitialBranch(v):
		fmt.Fprintf(w, "  [ OK ] new repositories start on %q\n", branch)
	default:
		fmt.Fprintf(w, "  [WARN] git %s ignores default_branch %q (needs 2.28.0 or later)\n", v, branch)
	}
}

// runConfigCheck reports config file validity. A missing file is fine.
func runConfigCheck(w io.Writer) bool {
	fmt.Fprintln(w, "Config check:")
	path := config.FilePath()

	result, err := config.ValidateFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "  [INFO] no config file at %s\n", path)
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
		return true
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return false
}
