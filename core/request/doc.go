// Package request provides the immutable per-request snapshot handed to
// handlers and middlewares: route params, query parameters, headers, cookies,
// client IP, and a typed body classified as JSON, plain text, or form data.
//
// A Context is built exactly once per inbound request from transport
// primitives and is never mutated afterwards. Body bytes are read up front
// with a hard size cap, validated according to the declared content type, and
// rejected before any handler runs if malformed.
//
// Lookups are byte-exact: header names are matched exactly as stored, query
// strings are split on '&' and '=' without percent-decoding, and duplicate
// cookies resolve to the last value seen.
//
// For tests that do not go through a transport, NewFixture returns a mutable
// context with Set* helpers:
//
//	req := request.NewFixture()
//	req.SetQuery("page", "2")
//	req.SetJSON(map[string]string{"name": "john"})
package request
