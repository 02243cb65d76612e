package request

import "errors"

var (
	// ErrBodyTooLarge indicates the body stream exceeded MaxBodySize during
	// accumulation. The request is rejected before chain execution.
	ErrBodyTooLarge = errors.New("body too large")

	// ErrInvalidUTF8 indicates the body bytes are not valid UTF-8 under the
	// declared parse path. The request is rejected before chain execution.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

	// ErrInvalidJSON indicates a JSON-classified body failed to parse. The
	// request is rejected before chain execution.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrWrongBodyType indicates a typed accessor was invoked against a
	// mismatched body classification. Recoverable by the caller.
	ErrWrongBodyType = errors.New("wrong body type")

	// ErrDeserializeFailed indicates the JSON body parsed but does not fit
	// the requested shape. Recoverable by the caller.
	ErrDeserializeFailed = errors.New("failed to deserialize JSON")
)
