package cli

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	ExitInvalid = 1 // the submission failed validation
	ExitFailure = 2 // the command could not run
)

// errInvalid is reported when a submission fails validation. The
// failures themselves were already printed.
var errInvalid = errors.New("submission is invalid")

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
