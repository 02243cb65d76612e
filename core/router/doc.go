// Package router provides the route registry, the dispatch rule, and the
// middleware chain executed for every request.
//
// The registry is an append-only ordered list of (method, path, handler)
// registrations. Dispatch scans it in registration order and returns the
// first entry whose method and literal path match; duplicate registrations
// are permitted and the first one wins.
//
// A chain is the ordered list of middlewares resolved for a request plus one
// terminal handler. Each middleware receives a single-use Next continuation
// representing the remainder of the chain; it may short-circuit by returning
// without invoking it, forward and post-process the downstream result, or
// just forward. The terminal handler runs outside the Next protocol.
//
// Registries and chains are populated during application setup and treated as
// immutable while serving, so concurrent requests share them safely.
package router
