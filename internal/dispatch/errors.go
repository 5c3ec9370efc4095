package dispatch

import (
	"errors"
	"fmt"
)

// ErrNoDependants is returned when no workspace depends on the target package.
var ErrNoDependants = errors.New("no dependant workspaces found")

// ExitError carries the exit code the process should terminate with.
// Err, when set, is the diagnostic to print before exiting.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError wraps err with an exit code.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}
