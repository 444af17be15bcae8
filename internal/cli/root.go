package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cppinit/cppinit/internal/branding"
	"github.com/cppinit/cppinit/internal/config"
	"github.com/cppinit/cppinit/internal/platform"
	"github.com/cppinit/cppinit/internal/scaffold"
	"github.com/spf13/cobra"
)

// BuildInfo carries values injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// scaffoldFlags holds the root command's own flags.
type scaffoldFlags struct {
	input   string
	output  string
	git     bool
	noColor bool
}

// NewRootCmd builds the full command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	var flags scaffoldFlags

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a directory holding a "Hello World" main.cpp and a Makefile.
Optional input/output files are created alongside and wired into both, and the
directory can be initialized as a git repository.

Examples:
  ` + branding.CLIName() + ` hello
  ` + branding.CLIName() + ` day01 --input in.txt --output out.txt --git`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input file to create and open in main.cpp")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file to create and open in main.cpp")
	cmd.Flags().BoolVar(&flags.git, "git", false, "Initialize a git repository (default from config key \"git\")")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newVersionCmd(info))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

func runScaffold(cmd *cobra.Command, name string, flags scaffoldFlags) error {
	opts := scaffold.Options{
		Name:   name,
		Input:  flags.input,
		Output: flags.output,
		Git:    flags.git,
		Branch: config.Get(config.KeyDefaultBranch),
	}
	if !cmd.Flags().Changed("git") {
		opts.Git = config.GetBool(config.KeyGit)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	noColor := flags.noColor || !config.GetBool(config.KeyColor)
	reporter := scaffold.NewConsoleReporter(cmd.OutOrStdout(), noColor)

	s := scaffold.New(platform.OSFileSystem{}, platform.Git{}, reporter)
	result := s.Run(cmd.Context(), opts)
	return result.Err()
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the command context.
func Execute(version, commit, date string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd(BuildInfo{Version: version, Commit: commit, Date: date})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
