package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gopress/gopress/core/request"
	"github.com/gopress/gopress/core/response"
	"github.com/gopress/gopress/core/router"
	"github.com/gopress/gopress/core/server"
)

// prefixMiddleware is one Use registration: the middleware applies to every
// request whose path starts with the prefix.
type prefixMiddleware struct {
	prefix     string
	middleware router.Middleware
}

// App holds the route registry and the ordered middleware registrations.
type App struct {
	registry    *router.Registry
	middlewares []prefixMiddleware
	notFound    router.Handler
	logger      *slog.Logger
}

// New creates an App with the given options.
func New(opts ...Option) *App {
	a := &App{
		registry: router.NewRegistry(),
		notFound: defaultNotFound,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// defaultNotFound is the built-in terminal for requests no route matches.
func defaultNotFound(req *request.Context, res response.Response) response.Response {
	return res.Status(http.StatusNotFound).Text("Not Found")
}

// Get registers a handler for GET requests on a literal path.
func (a *App) Get(path string, h router.Handler) {
	a.registry.Register(router.GET, path, h)
}

// Post registers a handler for POST requests on a literal path.
func (a *App) Post(path string, h router.Handler) {
	a.registry.Register(router.POST, path, h)
}

// Put registers a handler for PUT requests on a literal path.
func (a *App) Put(path string, h router.Handler) {
	a.registry.Register(router.PUT, path, h)
}

// Delete registers a handler for DELETE requests on a literal path.
func (a *App) Delete(path string, h router.Handler) {
	a.registry.Register(router.DELETE, path, h)
}

// Patch registers a handler for PATCH requests on a literal path.
func (a *App) Patch(path string, h router.Handler) {
	a.registry.Register(router.PATCH, path, h)
}

// Handle registers a handler for an arbitrary method of the closed set.
func (a *App) Handle(method router.Method, path string, h router.Handler) {
	a.registry.Register(method, path, h)
}

// Use appends a middleware applying to every request whose path starts with
// prefix. The empty prefix matches all requests. Middlewares run in
// registration order, before the dispatched handler.
func (a *App) Use(prefix string, mw router.Middleware) {
	a.middlewares = append(a.middlewares, prefixMiddleware{prefix: prefix, middleware: mw})
}

// Routes returns the registered routes in registration order.
func (a *App) Routes() []router.Route {
	return a.registry.Routes()
}

// Listen binds the transport server on addr and serves until ctx is canceled.
// It blocks for the lifetime of the server. A bind failure is returned
// immediately; per-request failures are converted into responses and never
// surface here.
func (a *App) Listen(ctx context.Context, addr string) error {
	srv := server.New(addr, server.WithLogger(a.logger))
	return srv.Start(ctx, a)
}
