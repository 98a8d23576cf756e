package reporter

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/shkm/rubyfmt/internal/ui/pretty"
	"github.com/shkm/rubyfmt/pkg/runner"
)

// TextReporter lists the files whose formatting differs from rubyfmt's
// output, one per line, followed by a summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	out := opts.writer()
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, out)),
		out:    out,
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var changed int
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.out, "%s: %s\n",
				r.styles.FilePath.Render(r.displayPath(file.Path)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil || !file.Result.Changed {
			continue
		}
		changed++

		switch {
		case file.Written:
			fmt.Fprintf(r.out, "%s\n", r.styles.FilePath.Render(r.displayPath(file.Path)))
		case file.Skipped:
			fmt.Fprintf(r.out, "%s %s\n",
				r.styles.FilePath.Render(r.displayPath(file.Path)),
				r.styles.Dim.Render("(skipped: modified during run)"),
			)
		default:
			fmt.Fprintf(r.out, "%s %s\n",
				r.styles.FilePath.Render(r.displayPath(file.Path)),
				r.styles.Dim.Render("(needs formatting)"),
			)
		}
	}

	r.summarize(result, changed)

	return changed, nil
}

func (r *TextReporter) summarize(result *runner.Result, changed int) {
	stats := result.Stats

	switch {
	case stats.FilesErrored > 0:
		fmt.Fprintf(r.out, "%s %d of %d files errored\n",
			r.styles.Failure.Render("✗"), stats.FilesErrored, stats.FilesDiscovered)
	case changed == 0:
		fmt.Fprintf(r.out, "%s %d files already formatted\n",
			r.styles.Success.Render("✓"), stats.FilesProcessed)
	case stats.FilesWritten > 0:
		fmt.Fprintf(r.out, "%s reformatted %d of %d files\n",
			r.styles.Success.Render("✓"), stats.FilesWritten, stats.FilesProcessed)
	default:
		fmt.Fprintf(r.out, "%s %d of %d files need formatting\n",
			r.styles.Failure.Render("✗"), changed, stats.FilesProcessed)
	}
}

func (r *TextReporter) displayPath(path string) string {
	return displayPath(path, r.opts.WorkingDir)
}

// displayPath shortens an absolute path relative to the working directory
// when that yields something more readable.
func displayPath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
