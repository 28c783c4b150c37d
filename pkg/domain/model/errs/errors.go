package errs

import (
	"errors"
	"fmt"
)

// ErrReadmeUnavailable is returned when a repository README could not be
// retrieved, whether the repository has none or the request failed.
var ErrReadmeUnavailable = errors.New("readme is not available")

// UpstreamError is a non-success answer of the GitHub API. StatusCode is
// zero when the request failed before any response was received.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (x *UpstreamError) Error() string {
	if x.StatusCode == 0 {
		return fmt.Sprintf("GitHub API request failed without response: %v", x.Err)
	}
	return fmt.Sprintf("GitHub API responded with status %d: %v", x.StatusCode, x.Err)
}

func (x *UpstreamError) Unwrap() error { return x.Err }
