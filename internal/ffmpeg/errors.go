package ffmpeg

import "errors"

// Error kinds surfaced by the manager. Lower-level filesystem, HTTP, and
// archive errors are wrapped into one of these at the package boundary so
// callers can classify failures with errors.Is instead of matching message
// strings. Unsupported-platform failures carry platform.ErrUnsupported.
var (
	// ErrNotFound is returned by Execute when no binary is installed.
	ErrNotFound = errors.New("ffmpeg not found")

	// ErrDownload covers transport failures and non-success HTTP status.
	ErrDownload = errors.New("download error")

	// ErrExtraction covers archive open failures and a configured
	// executable path that matches no archive entry.
	ErrExtraction = errors.New("extraction error")

	// ErrCommandExecution is a spawn-level failure: the installed binary
	// could not be launched at all. A launched binary exiting non-zero
	// is not an error.
	ErrCommandExecution = errors.New("command execution error")
)
