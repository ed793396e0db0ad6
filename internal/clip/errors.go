package clip

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is wrapped by ClipError when end is not greater than start
// or a bound is missing or negative. The transcoder is not started.
var ErrInvalidRange = errors.New("invalid clip range")

// ClipError reports a failed clip. Output holds the tail of the
// transcoder's diagnostic output when the process ran.
type ClipError struct {
	Input    string
	ExitCode int // -1 when the process did not exit normally or never started
	Output   string
	Err      error
}

func (e *ClipError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("clip %s: exit status %d: %v", e.Input, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("clip %s: %v", e.Input, e.Err)
}

func (e *ClipError) Unwrap() error {
	return e.Err
}
