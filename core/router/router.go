package router

import (
	"github.com/gopress/gopress/core/request"
	"github.com/gopress/gopress/core/response"
)

// Method is the closed set of dispatchable HTTP methods.
type Method string

const (
	GET    Method = "GET"
	PUT    Method = "PUT"
	POST   Method = "POST"
	DELETE Method = "DELETE"
	PATCH  Method = "PATCH"
)

// ParseMethod maps a wire method string onto the closed enumeration.
func ParseMethod(s string) (Method, bool) {
	switch Method(s) {
	case GET, PUT, POST, DELETE, PATCH:
		return Method(s), true
	default:
		return "", false
	}
}

// Handler is a terminal route handler. It receives the request snapshot and
// the response builder as produced by the upstream chain and returns the
// final builder value.
type Handler func(req *request.Context, res response.Response) response.Response

// Middleware runs before the terminal handler. It may return a response
// without invoking next (short-circuit, skipping everything downstream),
// invoke next and post-process its result, or forward unconditionally.
type Middleware func(req *request.Context, res response.Response, next *Next) response.Response

// Route describes a single registration, for introspection.
type Route struct {
	Method Method
	Path   string
}

// registration is one (method, literal path, handler) triple.
type registration struct {
	method  Method
	path    string
	handler Handler
}

// Registry is the append-only ordered collection of route registrations.
// Populate it during setup; it must not be mutated once serving begins.
type Registry struct {
	routes []registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a registration. Duplicate (method, path) pairs are
// permitted; dispatch resolves to the first one registered.
func (r *Registry) Register(method Method, path string, handler Handler) {
	r.routes = append(r.routes, registration{method: method, path: path, handler: handler})
}

// Dispatch resolves the handler for a (method, path) pair by scanning the
// registrations in order and returning the first exact, case-sensitive
// literal path match. No pattern matching is performed; route parameter
// captures are the transport's concern and arrive on the request context.
// A miss reports ErrNotFound.
func (r *Registry) Dispatch(method Method, path string) (Handler, error) {
	for _, rt := range r.routes {
		if rt.method == method && rt.path == path {
			return rt.handler, nil
		}
	}
	return nil, ErrNotFound
}

// Routes returns all registrations in registration order.
func (r *Registry) Routes() []Route {
	out := make([]Route, len(r.routes))
	for i, rt := range r.routes {
		out[i] = Route{Method: rt.method, Path: rt.path}
	}
	return out
}
