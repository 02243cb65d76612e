package middleware

import (
	"github.com/google/uuid"

	"github.com/gopress/gopress/core/request"
	"github.com/gopress/gopress/core/response"
	"github.com/gopress/gopress/core/router"
)

// DefaultRequestIDHeader is the header carrying the request ID.
const DefaultRequestIDHeader = "X-Request-ID"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific
	// requests.
	Skip func(req *request.Context) bool

	// Generator creates new request IDs (default: UUID v4).
	Generator func() string

	// HeaderName specifies the header name for the request ID
	// (default: DefaultRequestIDHeader).
	HeaderName string

	// UseExisting reuses a request ID from the incoming request when set.
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration. It
// stamps every response with a fresh UUID under X-Request-ID.
func RequestID() router.Middleware {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration. The ID is attached to the response builder before the rest
// of the chain runs, so downstream middlewares and the handler can read it
// via GetHeader.
func RequestIDWithConfig(cfg RequestIDConfig) router.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultRequestIDHeader
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(req *request.Context, res response.Response, next *router.Next) response.Response {
		if cfg.Skip != nil && cfg.Skip(req) {
			return next.Run(req, res)
		}

		var id string
		if cfg.UseExisting {
			if existing, ok := req.Header(cfg.HeaderName); ok && existing != "" {
				id = existing
			}
		}
		if id == "" {
			id = cfg.Generator()
		}

		return next.Run(req, res.Header(cfg.HeaderName, id))
	}
}
