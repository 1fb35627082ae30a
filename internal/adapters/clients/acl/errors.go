// Package acl implements the anti-corruption layer between the roster JSON
// API's wire format and domain types. rosterctl talks to the server only
// through [RosterClient]; problem responses are mapped back onto the domain
// sentinels here so commands can match them with errors.Is.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pixell-roster/internal/domain"
)

const maxErrorBodySize = 1 << 20

// statusSentinels maps the statuses the roster API returns onto domain errors.
var statusSentinels = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
}

// TranslateHTTPError maps a non-success response onto a domain error. An
// application/problem+json body supplies the detail text, and its field
// entries are rebuilt into a *domain.ValidationError for 400 and 422.
// Every 5xx becomes domain.ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	sentinel, ok := statusSentinels[resp.StatusCode]
	switch {
	case errors.Is(sentinel, domain.ErrValidation) && len(pd.Errors) > 0:
		return dto.ValidationErrorFromDetails(pd.Errors)
	case ok:
		return fmt.Errorf("%s: %w", detail, sentinel)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseProblemDetail decodes an RFC 9457 body, or returns the zero value
// when the body is missing, of another type or malformed.
func parseProblemDetail(resp *http.Response) dto.ErrorResponse {
	if resp.Body == nil {
		return dto.ErrorResponse{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return dto.ErrorResponse{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return dto.ErrorResponse{}
	}

	var pd dto.ErrorResponse
	if err := json.Unmarshal(body, &pd); err != nil {
		return dto.ErrorResponse{}
	}
	return pd
}
