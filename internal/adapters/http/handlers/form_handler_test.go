package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pixell-roster/internal/adapters/store"
	"github.com/jsamuelsen11/pixell-roster/internal/app"
	"github.com/jsamuelsen11/pixell-roster/internal/app/form"
	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
	"github.com/jsamuelsen11/pixell-roster/mocks"
)

func postForm(firstName, lastName, departmentID string) *http.Request {
	values := url.Values{
		"firstName":    {firstName},
		"lastName":     {lastName},
		"departmentId": {departmentID},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// newLiveFormHandler wires a FormHandler to the real services over an
// in-memory store.
func newLiveFormHandler(t *testing.T) *handlers.FormHandler {
	t.Helper()

	repo := store.NewRepository(store.NewMemoryBackend())
	require.NoError(t, repo.Init(context.Background()))
	roster := app.NewRosterService(repo, nil, nil)
	return handlers.NewFormHandler(app.NewFormController(roster, nil))
}

func TestFormHandler_Show_EmptyList(t *testing.T) {
	t.Parallel()
	h := newLiveFormHandler(t)

	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>PiXELL River Financial — Employees</title>")
	assert.Contains(t, body, "No employees yet. Add one above.")
	assert.Contains(t, body, `<option value="d1" selected>Personal Banking</option>`)
	assert.Contains(t, body, `<option value="d3">IT Support</option>`)
}

func TestFormHandler_Submit_Success(t *testing.T) {
	t.Parallel()
	h := newLiveFormHandler(t)

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm("Amanda", "Singh", "d3"))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, "Amanda Singh · IT Support")
	assert.NotContains(t, body, "No employees yet.")
	assert.Contains(t, body, `<option value="d3" selected>IT Support</option>`, "department selection persists")
	assert.Contains(t, body, `id="firstName" name="firstName" type="text" value=""`, "name fields reset")
	assert.NotContains(t, body, `class="error"`)
}

func TestFormHandler_Submit_ValidationRerender(t *testing.T) {
	t.Parallel()
	h := newLiveFormHandler(t)

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm("Al", "Lee", "d1"))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	body := rec.Body.String()
	assert.Contains(t, body, `data-field="firstName">`+employee.MsgFirstNameTooShort+`</p>`)
	assert.NotContains(t, body, `data-field="lastName"`)
	assert.Contains(t, body, `value="Al"`, "submitted value kept")
	assert.Contains(t, body, "No employees yet. Add one above.")
}

func TestFormHandler_Submit_EscapesInput(t *testing.T) {
	t.Parallel()
	h := newLiveFormHandler(t)

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm("<script>", "Lee", "d1"))

	requireStatus(t, rec, http.StatusOK)
	assert.NotContains(t, rec.Body.String(), "<script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestFormHandler_Submit_ServiceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockFormService(t)
	svc.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)
	h := handlers.NewFormHandler(svc)

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm("Amanda", "Singh", "d1"))

	requireStatus(t, rec, http.StatusBadGateway)
}

func TestFormHandler_Submit_PassesFormValues(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockFormService(t)
	svc.EXPECT().Submit(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, f form.EmployeeForm) (*form.Page, error) {
			assert.Equal(t, employee.Draft{FirstName: " Amanda ", LastName: "Singh", DepartmentID: "d2"}, f.Draft())
			return &form.Page{Departments: department.Defaults(), Form: f.ResetNames()}, nil
		})
	h := handlers.NewFormHandler(svc)

	rec := httptest.NewRecorder()
	h.Submit(rec, postForm(" Amanda ", "Singh", "d2"))

	requireStatus(t, rec, http.StatusOK)
}

func TestFormHandler_Show_LoadError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockFormService(t)
	svc.EXPECT().Load(mock.Anything).Return(nil, domain.ErrUnavailable)
	h := handlers.NewFormHandler(svc)

	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusBadGateway)
}
