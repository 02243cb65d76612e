package router

import (
	"github.com/gopress/gopress/core/request"
	"github.com/gopress/gopress/core/response"
)

// Chain is the resolved execution pipeline for one request: the middlewares
// whose registered prefix matched the request path, in registration order,
// terminated by the dispatched handler. The middleware slice is shared
// read-only between concurrent requests; per-request state lives in the Next
// cursors created during Run.
type Chain struct {
	middlewares []Middleware
	terminal    Handler
}

// NewChain builds a chain over the given middlewares and terminal handler.
func NewChain(middlewares []Middleware, terminal Handler) Chain {
	return Chain{middlewares: middlewares, terminal: terminal}
}

// Run executes the chain from the head and returns the final response value.
func (c Chain) Run(req *request.Context, res response.Response) response.Response {
	next := &Next{middlewares: c.middlewares, terminal: c.terminal}
	return next.run(req, res)
}

// Next is a single-use continuation representing the remainder of the chain
// plus the terminal handler. Each middleware invocation receives its own Next
// bound one position further down; invoking the same Next twice is a
// programmer error and panics.
type Next struct {
	middlewares []Middleware
	terminal    Handler
	cursor      int
	used        bool
}

// Run invokes the rest of the pipeline and returns its response. Once the
// cursor is past the last middleware the terminal handler runs directly; no
// continuation is offered to it.
func (n *Next) Run(req *request.Context, res response.Response) response.Response {
	return n.run(req, res)
}

func (n *Next) run(req *request.Context, res response.Response) response.Response {
	if n.used {
		panic("router: Next invoked more than once in a single middleware call")
	}
	n.used = true

	if n.cursor >= len(n.middlewares) {
		return n.terminal(req, res)
	}

	mw := n.middlewares[n.cursor]
	return mw(req, res, &Next{
		middlewares: n.middlewares,
		terminal:    n.terminal,
		cursor:      n.cursor + 1,
	})
}
