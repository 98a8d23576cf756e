// Package cli provides the Cobra command structure for rubyfmt.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shkm/rubyfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root rubyfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string
	flags := &formatFlags{}

	rootCmd := &cobra.Command{
		Use:   "rubyfmt [paths...]",
		Short: "A Ruby source formatter",
		Long: `rubyfmt formats Ruby source files.

It normalizes vertical whitespace: collapsing runs of blank lines, and
inserting blank lines after require blocks, before class and module
definitions, and around other structural boundaries.

With no arguments, rubyfmt reads Ruby source from standard input and
writes the formatted result to standard output. With a single file
argument it prints the formatted file. Use --write to rewrite files in
place, or --check to report files that need formatting without touching
them.`,
		Example: `  cat foo.rb | rubyfmt         # Format stdin to stdout
  rubyfmt foo.rb               # Print formatted file
  rubyfmt --write lib/ app/    # Rewrite files in place
  rubyfmt --check .            # List files needing formatting
  rubyfmt --diff foo.rb        # Show what would change`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addFormatFlags(rootCmd, flags)

	// Add subcommands.
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

func addFormatFlags(cmd *cobra.Command, flags *formatFlags) {
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.check, "check", false, "report files that need formatting without rewriting")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print unified diffs instead of listing files")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "create a backup before each in-place rewrite")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "traverse directory symlinks")
	cmd.Flags().BoolVar(&flags.detect, "detect", false, "classify extensionless files by content")
}
