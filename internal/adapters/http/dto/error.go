package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/pixell-roster/internal/domain"
)

// LocationPrefix marks an ErrorDetail location as a request body field.
const LocationPrefix = "body."

const (
	problemContentType = "application/problem+json"
	problemTypeBlank   = "about:blank"
)

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field message of a validation problem, located as
// "body.<field>".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusBySentinel is checked in order; the first match wins.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// StatusFor maps a domain error to its HTTP status; unknown errors are 500.
func StatusFor(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

func newProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     problemTypeBlank,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// NewErrorResponse builds the problem body for err. A *domain.ValidationError
// contributes one ErrorDetail per field message.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := newProblem(r, StatusFor(err), err.Error())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse renders err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem renders a problem with no domain error behind it, such as a
// request timeout.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, newProblem(r, status, detail))
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response", slog.Any("error", err))
	}
}

// fieldDetails flattens field messages, sorted by location. Messages of one
// field keep their order.
func fieldDetails(fields map[string][]string) []ErrorDetail {
	var details []ErrorDetail
	for field, msgs := range fields {
		for _, msg := range msgs {
			details = append(details, ErrorDetail{Location: LocationPrefix + field, Message: msg})
		}
	}
	slices.SortStableFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}

// ValidationErrorFromDetails rebuilds a *domain.ValidationError from the
// errors array of a problem body. A location without the "body." prefix is
// used as the field name unchanged.
func ValidationErrorFromDetails(details []ErrorDetail) *domain.ValidationError {
	verr := domain.NewValidationError()
	for _, d := range details {
		verr.Add(strings.TrimPrefix(d.Location, LocationPrefix), d.Message)
	}
	return verr
}
