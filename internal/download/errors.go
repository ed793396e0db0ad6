package download

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus is wrapped by FetchError when the server answers with a
// non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// FetchError reports a failed download. Err carries the underlying cause.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
