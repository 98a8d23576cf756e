package runner

import "github.com/shkm/rubyfmt/pkg/format"

// FileOutcome is the per-file result of a formatting run.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result holds the formatting result. Nil if the file errored.
	Result *format.Result

	// Written is true when the file was rewritten in place.
	Written bool

	// Skipped is true when an in-place write was skipped because the file
	// changed on disk between read and write.
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesChanged is the number of files whose formatted output differs
	// from their current content.
	FilesChanged int

	// FilesWritten is the number of files rewritten in place.
	FilesWritten int

	// FilesSkipped is the number of files skipped due to concurrent
	// modification.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered
	// deterministically by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// NeedsFormatting reports whether any file's output differs from its
// content on disk. Used for check-mode exit codes.
func (r *Result) NeedsFormatting() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Result != nil && outcome.Result.Changed {
		r.Stats.FilesChanged++
	}
}
