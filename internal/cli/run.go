package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shkm/rubyfmt/internal/configloader"
	"github.com/shkm/rubyfmt/internal/logging"
	"github.com/shkm/rubyfmt/pkg/config"
	"github.com/shkm/rubyfmt/pkg/format"
	"github.com/shkm/rubyfmt/pkg/reporter"
	"github.com/shkm/rubyfmt/pkg/runner"
)

// ErrNeedsFormatting signals that check mode found files whose formatting
// differs. It carries no message for the user; main maps it to an exit code.
var ErrNeedsFormatting = errors.New("files need formatting")

// ErrFilesFailed signals that one or more files could not be processed.
var ErrFilesFailed = errors.New("some files failed to format")

type formatFlags struct {
	write          bool
	check          bool
	diff           bool
	jobs           int
	ignore         []string
	backup         bool
	followSymlinks bool
	detect         bool
	configPath     string
}

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	if flags.write && flags.check {
		return fmt.Errorf("%w: --write and --check are mutually exclusive", ErrInvalidUsage)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(cmd, flags, workDir)
	if err != nil {
		return err
	}

	logging.SetLevel(cfg.LogLevel)
	logger := logging.Default()
	logger.Debug("configuration loaded",
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldWrite, flags.write,
		logging.FieldCheck, flags.check,
	)

	// With no paths and piped stdin, act as a filter.
	if len(args) == 0 && !term.IsTerminal(int(os.Stdin.Fd())) {
		return formatStdin(cmd, flags)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no paths given and stdin is a terminal", ErrInvalidUsage)
	}

	// A single regular file with no mode flag prints to stdout, like a
	// filter over that file.
	if !flags.write && !flags.check && !flags.diff && len(args) == 1 {
		if info, statErr := os.Stat(args[0]); statErr == nil && info.Mode().IsRegular() {
			return formatSingleFile(ctx, cmd, args[0])
		}
	}

	return runMultiFile(ctx, cmd, args, flags, cfg, workDir)
}

// loadConfig resolves the configuration and layers set CLI flags on top.
func loadConfig(cmd *cobra.Command, flags *formatFlags, workDir string) (*config.Config, error) {
	loadResult, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	logger := logging.Default()
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config

	// Only flags the user actually set override config file values.
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("backup") {
		cfg.Backup = flags.backup
	}
	if cmd.Flags().Changed("follow-symlinks") {
		cfg.FollowSymlinks = flags.followSymlinks
	}
	if cmd.Flags().Changed("detect") {
		cfg.DetectRuby = flags.detect
	}
	if cmd.Flags().Changed("color") {
		colorMode, _ := cmd.Flags().GetString("color")
		cfg.Color = config.Color(colorMode)
		if !cfg.Color.IsValid() {
			return nil, fmt.Errorf("%w: invalid color mode %q", ErrInvalidUsage, colorMode)
		}
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	return cfg, nil
}

// formatStdin reads all of stdin, formats it, and writes the result to
// stdout. In check or diff mode nothing is printed except the diff, and
// a nonzero exit signals a needed change.
func formatStdin(cmd *cobra.Command, flags *formatFlags) error {
	if flags.write {
		return fmt.Errorf("%w: --write requires file paths", ErrInvalidUsage)
	}

	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return errors.Join(ErrIO, fmt.Errorf("read stdin: %w", err))
	}

	res := format.Bytes(src, "<stdin>")

	switch {
	case flags.diff:
		if res.Changed {
			printStdinDiff(cmd, flags, res)
			return ErrNeedsFormatting
		}
	case flags.check:
		if res.Changed {
			return ErrNeedsFormatting
		}
	default:
		if _, err := cmd.OutOrStdout().Write(res.Formatted); err != nil {
			return errors.Join(ErrIO, fmt.Errorf("write stdout: %w", err))
		}
	}

	return nil
}

func printStdinDiff(cmd *cobra.Command, flags *formatFlags, res format.Result) {
	colorMode, _ := cmd.Flags().GetString("color")
	rep := reporter.NewDiffReporter(reporter.Options{
		Writer: cmd.OutOrStdout(),
		Color:  colorMode,
	})
	result := &runner.Result{}
	result.Files = append(result.Files, runner.FileOutcome{Path: res.Path, Result: &res})
	result.Stats.FilesDiscovered = 1
	result.Stats.FilesProcessed = 1
	result.Stats.FilesChanged = 1
	_, _ = rep.Report(cmd.Context(), result)
}

// formatSingleFile prints the formatted content of one file to stdout.
func formatSingleFile(ctx context.Context, cmd *cobra.Command, path string) error {
	res, err := format.File(ctx, path)
	if err != nil {
		return errors.Join(ErrIO, err)
	}
	if _, err := cmd.OutOrStdout().Write(res.Formatted); err != nil {
		return errors.Join(ErrIO, fmt.Errorf("write stdout: %w", err))
	}
	return nil
}

// runMultiFile formats paths with the worker-pool runner and reports the
// outcome.
func runMultiFile(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	flags *formatFlags,
	cfg *config.Config,
	workDir string,
) error {
	logger := logging.Default()

	mode := runner.ModeCheck
	if flags.write {
		mode = runner.ModeWrite
	}

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Mode:           mode,
		Extensions:     cfg.Extensions,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: cfg.FollowSymlinks,
		DetectRuby:     cfg.DetectRuby,
		Backup:         cfg.Backup,
		Jobs:           cfg.Jobs,
		Config:         cfg,
	}

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("run failed"), err)
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
	)

	reportFormat := "text"
	if flags.diff {
		reportFormat = "diff"
	}
	rep := reporter.New(reportFormat, reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Color:      string(cfg.Color),
		WorkingDir: workDir,
	})
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return ErrFilesFailed
	}
	if mode == runner.ModeCheck && result.NeedsFormatting() {
		return ErrNeedsFormatting
	}

	return nil
}
