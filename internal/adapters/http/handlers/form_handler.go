package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pixell-roster/internal/app/form"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/employees.html"))

// FormHandler serves the server-rendered employee page.
type FormHandler struct {
	svc ports.FormService
}

// NewFormHandler creates a new FormHandler with the given form service.
func NewFormHandler(svc ports.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// Show handles GET /.
func (h *FormHandler) Show(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Load(r.Context())
	if err != nil {
		writeHTMLError(w, r, err)
		return
	}
	renderPage(w, r, http.StatusOK, page)
}

// Submit handles POST /. The page is re-rendered either way: 200 after a
// successful create, 422 when any field carries a message.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	f := form.NewEmployeeForm(r.PostForm.Get(employee.FieldDepartmentID))
	f.FirstName = f.FirstName.OnChange(r.PostForm.Get(employee.FieldFirstName))
	f.LastName = f.LastName.OnChange(r.PostForm.Get(employee.FieldLastName))

	page, err := h.svc.Submit(r.Context(), f)
	if err != nil {
		writeHTMLError(w, r, err)
		return
	}

	status := http.StatusOK
	if page.Created == nil && !page.Form.Valid() {
		status = http.StatusUnprocessableEntity
	}
	renderPage(w, r, status, page)
}

// renderPage executes the template into a buffer first so a template error
// never leaves a half-written 200 behind.
func renderPage(w http.ResponseWriter, r *http.Request, status int, page *form.Page) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render employee page",
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).DebugContext(r.Context(), "failed to write employee page",
			slog.Any("error", err),
		)
	}
}

func writeHTMLError(w http.ResponseWriter, r *http.Request, err error) {
	status := dto.StatusFor(err)
	logging.FromContext(r.Context()).ErrorContext(r.Context(), "employee page failed",
		slog.Int("status", status),
		slog.Any("error", err),
	)
	http.Error(w, http.StatusText(status), status)
}
