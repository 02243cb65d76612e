// Package logger provides slog attribute helpers with consistent keys for
// HTTP request logging. Helpers return an empty Attr for zero values, so call
// sites never need nil checks:
//
//	log.LogAttrs(ctx, slog.LevelInfo, "request completed",
//		logger.Method(req.Method()),
//		logger.Path(req.Path()),
//		logger.Elapsed(start),
//	)
package logger
