package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
)

// Request body caps: 1 MiB of JSON, 64 KiB of urlencoded form.
const (
	maxJSONBodyBytes = 1 << 20
	maxFormBodyBytes = 64 << 10
)

// pathID returns the trimmed chi URL param, or a validation error naming
// param when it is blank.
func pathID(r *http.Request, param string) (string, error) {
	if id := strings.TrimSpace(chi.URLParam(r, param)); id != "" {
		return id, nil
	}
	verr := domain.NewValidationError()
	verr.Add(param, "is required")
	return "", verr
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response", slog.Any("error", err))
	}
}

// decodeJSONBody reads at most maxJSONBodyBytes into dst. On failure it has
// already answered 400 and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	msg := "invalid JSON"
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		msg = "body exceeds 1 MiB"
	}
	verr := domain.NewValidationError()
	verr.Add("body", msg)
	dto.WriteErrorResponse(w, r, verr)
	return false
}
