package cli

import "errors"

// Exit codes for gomdless.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a generic failure.
	ExitError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors used to pick the exit code.
var (
	errConfig = errors.New("config error")
	errIO     = errors.New("io error")
)

// ExitCodeForError maps an error returned by command execution to a
// process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, errIO):
		return ExitIOError
	default:
		return ExitError
	}
}
