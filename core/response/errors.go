package response

import "errors"

// ErrMissingHeader indicates a response-construction step required a header
// that was never set. Recoverable by the caller.
var ErrMissingHeader = errors.New("missing header")
