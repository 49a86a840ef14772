package pipeline

import "errors"

// Error classes for pipeline stage failures. The CLI collapses them to a
// binary exit code; errors.Is lets tests and callers tell them apart.
var (
	// ErrInputNotFound means the input surface file does not exist or is
	// not a regular file.
	ErrInputNotFound = errors.New("input not found")
	// ErrExternalTool means a child process exited nonzero.
	ErrExternalTool = errors.New("external tool failure")
	// ErrOutputMissing means an expected artifact is absent after a stage.
	ErrOutputMissing = errors.New("output missing")
	// ErrFileSystem means a rename or remove failed.
	ErrFileSystem = errors.New("filesystem error")
)
