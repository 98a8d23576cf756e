package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/shkm/rubyfmt/pkg/format"
	"github.com/shkm/rubyfmt/pkg/fsutil"
)

// Runner orchestrates formatting across many files with a worker pool.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Formats files concurrently using a worker pool
//   - Rewrites changed files in place when opts.Mode is ModeWrite
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; collect into a map and rebuild in
	// discovery order for deterministic output.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile formats a single file and, in write mode, rewrites it in
// place unless it was modified on disk since being read.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	res := format.Bytes(content, path)
	outcome.Result = &res

	if !res.Changed || opts.Mode != ModeWrite {
		return outcome
	}

	// Refuse to clobber files that changed under us between read and write.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Error = fmt.Errorf("check modified %s: %w", path, err)
		return outcome
	}
	if modified {
		outcome.Skipped = true
		return outcome
	}

	if opts.Backup {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			outcome.Error = fmt.Errorf("backup %s: %w", path, err)
			return outcome
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, res.Formatted, info.Mode); err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", path, err)
		return outcome
	}
	outcome.Written = true

	return outcome
}
