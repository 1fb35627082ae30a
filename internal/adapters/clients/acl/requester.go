package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/pixell-roster/internal/platform/httpclient"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
)

// Requester runs one JSON call against the roster API and turns every
// non-expected status into a domain error.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester returns a Requester over client. A nil logger discards.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Requester{client: client, logger: logger}
}

// Do sends method to path, JSON-encoding in when it is non-nil. A response
// with wantStatus is decoded into out when out is non-nil; any other status
// goes through TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, in, out any) error {
	req, err := r.client.NewRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	// On exhausted retries httpclient returns the last response alongside
	// the error; its body explains the failure better than the error does.
	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.drain(ctx, resp)
	}
	switch {
	case resp != nil && resp.StatusCode != wantStatus:
		r.logger.DebugContext(ctx, "unexpected status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want", wantStatus),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "roster api call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	case out == nil:
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (r *Requester) drain(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing response body", slog.Any("error", err))
	}
}
