// Package middleware provides built-in middlewares for the chain protocol:
// request logging and request-ID tagging. Each middleware receives the
// request snapshot, the current response builder, and a single-use
// continuation for the remainder of the chain.
//
//	a := app.New()
//	a.Use("", middleware.RequestID())
//	a.Use("", middleware.Logging())
package middleware
