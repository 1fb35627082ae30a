package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"
)

// jitterFraction bounds the random spread applied to each delay (±25%).
const jitterFraction = 0.25

// doWithRetry sends req up to backoff.attempts times. The body is buffered
// once and replayed on every attempt. The final response is written to resp
// with its body open; the caller closes it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.backoff.attempts <= 0 {
		return fmt.Errorf("httpclient: retry max_attempts must be >= 1, got %d", c.backoff.attempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	idempotent := isIdempotent(req.Method)
	var lastErr error

	for attempt := range c.backoff.attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, lastErr); err != nil {
				return err
			}
		}
		replayBody(req, body)

		r, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			if !idempotent || !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) || (!idempotent && !isRefusedStatus(r.StatusCode)) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.service)
		if attempt == c.backoff.attempts-1 {
			*resp = r
			return lastErr
		}
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}

	return lastErr
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func replayBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// pause logs the upcoming retry and sleeps for its backoff delay.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := c.backoff.delay(attempt)

	c.logger.WarnContext(ctx, "retrying roster api request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("request_id", req.Header.Get(headerRequestID)),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.backoff.attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// delay returns the wait before retry number attempt (1 is the first retry):
// exponential growth capped at max, then ±25% jitter.
func (b backoff) delay(attempt int) time.Duration {
	d := math.Min(float64(b.initial)*math.Pow(b.factor, float64(attempt-1)), float64(b.max))
	d += d * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto source
	return time.Duration(math.Max(d, 0))
}

// isRetryable reports whether a transport error may succeed on another try.
// Cancellation and deadline errors are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and every 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// isIdempotent reports whether method may be repeated without a second effect
// (RFC 9110 section 9.2.2).
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace,
		http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// isRefusedStatus reports statuses that mean the server did not act on the
// request, so even a POST may be resent.
func isRefusedStatus(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}
