package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
)

// errPanic is what the client sees. The panic value stays in the log.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and, if nothing was
// sent yet, a 500 problem response. http.ErrAbortHandler is re-panicked so
// net/http can drop the connection as the handler intended.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // compared by identity, like net/http does
					panic(v)
				}

				logger.ErrorContext(r.Context(), "handler panicked",
					slog.Any("panic", v),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_sent", sr.sent),
					slog.String("stack", string(debug.Stack())),
				)
				if !sr.sent {
					dto.WriteErrorResponse(sr, r, errPanic)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
