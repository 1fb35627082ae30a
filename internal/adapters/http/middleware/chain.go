package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response). This matches the intuitive reading order:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// StackConfig carries the dependencies of the standard middleware stack.
type StackConfig struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
	// RequestTimeout bounds each request. Zero disables the Timeout stage.
	RequestTimeout time.Duration
}

// Stack returns the server's middleware in order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → AppContext
//
// Mount it with chi's Use so OpenTelemetry can read the route pattern.
func Stack(cfg StackConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(cfg.Metrics),
		Logging(logger),
	}
	if cfg.RequestTimeout > 0 {
		mws = append(mws, Timeout(cfg.RequestTimeout))
	}
	mws = append(mws, AppContext())

	return Chain(mws...)
}
