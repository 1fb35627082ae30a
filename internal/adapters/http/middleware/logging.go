package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
)

// Logging returns middleware that logs each request twice: when it starts and
// when it completes. The request-scoped logger carries request_id and
// correlation_id and is stored in the context for handlers and services.
//
// Completion is logged at ERROR for 5xx, WARN for 4xx and INFO otherwise,
// with the matched route pattern, status, body size and duration. Request
// headers are logged at DEBUG with credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			reqLogger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				attrs := RedactHeaders(r.Header)
				args := make([]any, len(attrs))
				for i, a := range attrs {
					args[i] = a
				}
				reqLogger.DebugContext(ctx, "request headers", args...)
			}

			rw := record(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLogger.Log(ctx, completionLevel(rw.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.size),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
