package app

import (
	"log/slog"

	"github.com/gopress/gopress/core/router"
)

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for adapter errors, panics, and the
// transport server. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithNotFound replaces the built-in terminal handler for unmatched routes.
func WithNotFound(h router.Handler) Option {
	return func(a *App) {
		a.notFound = h
	}
}
