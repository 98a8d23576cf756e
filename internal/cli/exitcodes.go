package cli

import "errors"

// Exit codes for rubyfmt.
const (
	// ExitSuccess indicates all files were already formatted (or were
	// successfully rewritten).
	ExitSuccess = 0

	// ExitNeedsFormatting indicates check mode found files whose
	// formatting differs.
	ExitNeedsFormatting = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors used to map command failures to exit codes in main.
var (
	// ErrInvalidUsage marks command-line usage errors.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig marks configuration loading or validation errors.
	ErrConfig = errors.New("configuration error")

	// ErrIO marks file input/output errors.
	ErrIO = errors.New("io error")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNeedsFormatting):
		return ExitNeedsFormatting
	case errors.Is(err, ErrFilesFailed):
		return ExitNeedsFormatting
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
