// Package reporter renders runner results for the CLI: a plain listing of
// files that need formatting, or colored unified diffs.
package reporter

import (
	"context"
	"io"
	"os"

	"github.com/shkm/rubyfmt/pkg/runner"
)

// Reporter formats a runner result to an output writer.
type Reporter interface {
	// Report renders the result. It returns the number of files reported
	// as needing formatting.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Options configures reporter output.
type Options struct {
	// Writer receives the rendered output. Defaults to os.Stdout.
	Writer io.Writer

	// Color controls colorization: auto, always, never.
	Color string

	// WorkingDir, when set, is used to shorten absolute paths for display.
	WorkingDir string
}

func (o Options) writer() io.Writer {
	if o.Writer == nil {
		return os.Stdout
	}
	return o.Writer
}

// New creates a reporter for the given format: "text" or "diff".
func New(format string, opts Options) Reporter {
	if format == "diff" {
		return NewDiffReporter(opts)
	}
	return NewTextReporter(opts)
}
