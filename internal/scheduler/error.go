package scheduler

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrSchedulerNotFound indicates the sbatch binary was not found
	ErrSchedulerNotFound = errors.New("sbatch binary not found in PATH")

	// ErrSchedulerNotAvailable indicates the scheduler is not available for submission
	ErrSchedulerNotAvailable = errors.New("scheduler is not available")

	// ErrAlreadyInJob indicates we're already inside a scheduled job
	ErrAlreadyInJob = errors.New("already inside a scheduler job")
)

// SubmissionError represents a failure to hand a script to sbatch: the
// binary could not be executed or exited non-zero. Output carries whatever
// the tool printed, verbatim.
type SubmissionError struct {
	ScriptPath string // Script handed to sbatch
	Output     string // Combined stdout/stderr from sbatch
	Err        error  // Underlying error
}

func (e *SubmissionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("submission failed for %s: %v\nOutput: %s",
			e.ScriptPath, e.Err, e.Output)
	}
	return fmt.Sprintf("submission failed for %s: %v", e.ScriptPath, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// NewSubmissionError creates a new SubmissionError
func NewSubmissionError(scriptPath, output string, err error) *SubmissionError {
	return &SubmissionError{
		ScriptPath: scriptPath,
		Output:     output,
		Err:        err,
	}
}

// IsSubmissionError checks if an error is a SubmissionError
func IsSubmissionError(err error) bool {
	var se *SubmissionError
	return errors.As(err, &se)
}
