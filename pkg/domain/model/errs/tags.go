package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Client errors (4xx)
	TagValidation = goerr.NewTag("validation") // 400
	TagNotFound   = goerr.NewTag("not_found")  // 404

	// Server errors (5xx)
	TagInternal = goerr.NewTag("internal") // 500

	// TagUpstream marks a non-success answer of the GitHub API. The error
	// carries errutil.HTTPStatusKey when an upstream status is known.
	TagUpstream = goerr.NewTag("upstream")

	// TagInvalidUpstream marks a successful GitHub answer that could not be
	// mapped (malformed body, missing required field). 502
	TagInvalidUpstream = goerr.NewTag("invalid_upstream")
)
