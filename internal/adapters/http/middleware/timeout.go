package middleware

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs on its own goroutine
// against a buffered response with a deadline in its context. If d passes
// first the client gets a 504 problem and the buffer is dropped; writes the
// handler makes afterwards fail with http.ErrHandlerTimeout.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			finished := make(chan struct{})
			go func() {
				defer close(finished)
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case <-finished:
				buf.mu.Lock()
				defer buf.mu.Unlock()
				// A handler that returns on ctx.Done without answering still
				// owes the client a 504.
				if buf.status == 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
					gatewayTimeout(w, r, d)
					return
				}
				buf.copyTo(w)
			case <-ctx.Done():
				buf.mu.Lock()
				defer buf.mu.Unlock()
				buf.expired = true
				gatewayTimeout(w, r, d)
			}
		})
	}
}

func gatewayTimeout(w http.ResponseWriter, r *http.Request, d time.Duration) {
	dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request exceeded "+d.String())
}

// bufferedResponse holds a handler's response until Timeout decides who
// answers. status is 0 until the handler writes.
type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (b *bufferedResponse) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// copyTo sends the buffered response. The caller holds b.mu.
func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
