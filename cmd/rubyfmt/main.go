// Package main is the entry point for the rubyfmt CLI.
package main

import (
	"errors"
	"os"

	"github.com/shkm/rubyfmt/internal/cli"
	"github.com/shkm/rubyfmt/internal/logging"
)

// Build-time variables set by the release pipeline via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrNeedsFormatting) {
		// ErrNeedsFormatting is just an exit-code signal; everything else
		// deserves a message.
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCodeForError(err)
}
