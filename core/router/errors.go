package router

import "errors"

// ErrNotFound indicates no registered route matched the (method, path) pair.
// The app converts it into a terminal not-found response, never a crash.
var ErrNotFound = errors.New("not found")
