package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/pixell-roster/internal/app/context"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
)

// AppContext returns middleware that creates a new RequestContext for each
// HTTP request and stores it in the request context. Application services
// retrieve it via appctx.FromContext(ctx) to memoize reference-data reads
// and stage writes.
//
// Register it innermost, after Timeout, so the RequestContext wraps the
// context that carries the request deadline and the request-scoped logger.
//
// A handler that returns with staged but uncommitted actions is a bug; the
// actions are dropped and a warning is logged.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))

			if n := rc.Pending(); n > 0 {
				logging.FromContext(ctx).WarnContext(ctx, "request finished with uncommitted actions",
					slog.Int("pending", n),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
			}
		})
	}
}
