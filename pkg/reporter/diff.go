package reporter

import (
	"context"
	"fmt"
	"io"
	"strings"

	diff "github.com/shogoki/gotextdiff"

	"github.com/shkm/rubyfmt/internal/ui/pretty"
	"github.com/shkm/rubyfmt/pkg/runner"
)

// DiffReporter prints a unified diff for every file that needs formatting.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	out := opts.writer()
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, out)),
		out:    out,
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var changed int
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.out, "%s: %s\n",
				r.styles.FilePath.Render(displayPath(file.Path, r.opts.WorkingDir)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil || !file.Result.Changed {
			continue
		}
		changed++

		name := displayPath(file.Path, r.opts.WorkingDir)
		unified := diff.Diff(name, file.Result.Original, name, file.Result.Formatted)
		r.printDiff(string(unified))
	}

	if changed == 0 {
		fmt.Fprintf(r.out, "%s nothing to change\n", r.styles.Success.Render("✓"))
	}

	return changed, nil
}

// printDiff colorizes a unified diff line by line.
func (r *DiffReporter) printDiff(unified string) {
	for _, line := range strings.Split(strings.TrimRight(unified, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "diff "):
			fmt.Fprintln(r.out, r.styles.DiffHeader.Render(line))
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			fmt.Fprintln(r.out, r.styles.DiffHeader.Render(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(r.out, r.styles.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(r.out, r.styles.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(r.out, r.styles.DiffRemove.Render(line))
		default:
			fmt.Fprintln(r.out, r.styles.DiffContext.Render(line))
		}
	}
}
