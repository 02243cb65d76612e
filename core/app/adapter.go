package app

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gopress/gopress/core/logger"
	"github.com/gopress/gopress/core/request"
	"github.com/gopress/gopress/core/response"
	"github.com/gopress/gopress/core/router"
)

// ServeHTTP is the transport adapter: it converts the transport request into
// a request snapshot, resolves and runs the middleware chain, and finalizes
// the resulting builder onto the transport writer.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	finalized := false
	path := rawPath(r)

	// A panicking middleware or handler yields a 500, never a dead server.
	defer func() {
		if p := recover(); p != nil {
			a.logger.Error("panic during request handling",
				slog.Any("value", p),
				logger.Method(r.Method),
				logger.Path(path),
				slog.String("stack", string(debug.Stack())),
			)
			if !finalized {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}
	}()

	req, err := request.FromHTTP(r, nil)
	if err != nil {
		// Malformed bodies short-circuit before any user code runs.
		a.logger.Debug("rejected request during construction",
			logger.Method(r.Method),
			logger.Path(path),
			logger.Error(err),
		)
		finalized = true
		if werr := constructionFailure(err).Write(w); werr != nil {
			a.logger.Error("write response", logger.Error(werr))
		}
		return
	}

	res := a.resolveChain(r.Method, path).Run(req, response.New())

	finalized = true
	if werr := res.Write(w); werr != nil {
		a.logger.Error("write response",
			logger.Method(r.Method),
			logger.Path(path),
			logger.Error(werr),
		)
	}
}

// rawPath returns the request path exactly as received on the wire,
// preserving any percent-encoding.
func rawPath(r *http.Request) string {
	if r.URL.RawPath != "" {
		return r.URL.RawPath
	}
	return r.URL.Path
}

// resolveChain concatenates every middleware whose prefix matches the path,
// in registration order, terminated by the dispatched handler or the
// built-in not-found terminal.
func (a *App) resolveChain(method, path string) router.Chain {
	var mws []router.Middleware
	for _, entry := range a.middlewares {
		if strings.HasPrefix(path, entry.prefix) {
			mws = append(mws, entry.middleware)
		}
	}

	terminal := a.notFound
	if m, ok := router.ParseMethod(method); ok {
		if h, err := a.registry.Dispatch(m, path); err == nil {
			terminal = h
		}
	}

	return router.NewChain(mws, terminal)
}

// constructionFailure maps a request-construction error onto the 400 response
// written in place of chain execution.
func constructionFailure(err error) response.Response {
	res := response.New().Status(http.StatusBadRequest)
	switch {
	case errors.Is(err, request.ErrBodyTooLarge):
		return res.Text("Body too large")
	case errors.Is(err, request.ErrInvalidUTF8):
		return res.Text("Invalid UTF-8 sequence")
	case errors.Is(err, request.ErrInvalidJSON):
		return res.Text(err.Error())
	default:
		return res.Text("Bad Request")
	}
}
