package wifiscan

import (
	"errors"
	"fmt"
)

// ErrNoValue is returned when a required marker or terminator is absent,
// eg. no wireless device name could be found in a device-list report.
var ErrNoValue = errors.New("no value found")

// CommandNotFoundError means the utility binary is not installed or not
// on PATH. Raised by the runner, never by the parsers.
type CommandNotFoundError struct {
	Command string
	Err     error
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command %q not found: %v", e.Command, e.Err)
}

func (e *CommandNotFoundError) Unwrap() error {
	return e.Err
}

// CommandFailedError means the utility ran but exited non-zero. Carries
// the exit code and whatever the tool wrote to stderr.
type CommandFailedError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command %q exited %d: %s", e.Command, e.ExitCode, e.Stderr)
}
