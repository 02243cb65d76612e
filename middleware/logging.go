package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gopress/gopress/core/logger"
	"github.com/gopress/gopress/core/request"
	"github.com/gopress/gopress/core/response"
	"github.com/gopress/gopress/core/router"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip logging for specific requests.
	Skip func(req *request.Context) bool

	// Logger is the slog logger to use (default: slog.Default()).
	Logger *slog.Logger

	// Level for request log entries (default: slog.LevelInfo).
	Level slog.Level

	// LogMethod includes the request method in the entry.
	LogMethod bool

	// LogPath includes the request path in the entry.
	LogPath bool

	// LogDuration includes the downstream chain duration in the entry.
	LogDuration bool
}

// Logging creates a request logging middleware with default configuration:
// method, path, and duration at info level.
func Logging() router.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) router.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. It forwards to the downstream chain, then logs one entry
// with the selected fields and the final status.
func LoggingWithConfig(cfg LoggingConfig) router.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	// Zero config logs everything.
	if !cfg.LogMethod && !cfg.LogPath && !cfg.LogDuration {
		cfg.LogMethod = true
		cfg.LogPath = true
		cfg.LogDuration = true
	}

	return func(req *request.Context, res response.Response, next *router.Next) response.Response {
		if cfg.Skip != nil && cfg.Skip(req) {
			return next.Run(req, res)
		}

		start := time.Now()
		out := next.Run(req, res)

		attrs := []slog.Attr{
			logger.Component("http"),
			logger.Status(out.StatusCode()),
			logger.ClientIP(req.ClientIP()),
		}
		if cfg.LogMethod {
			attrs = append(attrs, logger.Method(req.Method()))
		}
		if cfg.LogPath {
			attrs = append(attrs, logger.Path(req.Path()))
		}
		if cfg.LogDuration {
			attrs = append(attrs, logger.Elapsed(start))
		}
		if _, query, ok := strings.Cut(req.OriginURL(), "?"); ok {
			attrs = append(attrs, logger.Query(query))
		}
		if id, err := out.GetHeader(DefaultRequestIDHeader); err == nil {
			attrs = append(attrs, logger.RequestID(id))
		}

		cfg.Logger.LogAttrs(context.Background(), cfg.Level, "request completed", attrs...)

		return out
	}
}
