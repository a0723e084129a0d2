package job

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidInput indicates a constructor or setter argument of the wrong shape
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexOutOfRange indicates a body insertion position outside [1, len+1]
	ErrIndexOutOfRange = errors.New("body position out of range")

	// ErrConflictingOptions indicates a mutually exclusive directive pair is set
	ErrConflictingOptions = errors.New("conflicting options")

	// ErrNilJob indicates an operation was invoked on a nil Job
	ErrNilJob = errors.New("nil job")

	// ErrScriptNotFound indicates the script file was not found
	ErrScriptNotFound = errors.New("script file not found")
)

// ConflictError reports a mutually exclusive option pair that is set simultaneously.
type ConflictError struct {
	First  string // First option name
	Second string // Second option name
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting options: %q and %q are mutually exclusive", e.First, e.Second)
}

// Unwrap allows errors.Is(err, ErrConflictingOptions) to match.
func (e *ConflictError) Unwrap() error {
	return ErrConflictingOptions
}

// WriteError represents a filesystem failure while writing a script.
type WriteError struct {
	Path string // Destination path
	Err  error  // Underlying error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write script to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewConflictError creates a new ConflictError
func NewConflictError(first, second string) *ConflictError {
	return &ConflictError{First: first, Second: second}
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}

// IsConflictError checks if an error is a ConflictError
func IsConflictError(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsWriteError checks if an error is a WriteError
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}
