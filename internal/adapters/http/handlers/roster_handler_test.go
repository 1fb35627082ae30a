package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
	"github.com/jsamuelsen11/pixell-roster/mocks"
)

func newRosterHandler(t *testing.T) (*handlers.RosterHandler, *mocks.MockRosterService) {
	t.Helper()
	svc := mocks.NewMockRosterService(t)
	return handlers.NewRosterHandler(svc), svc
}

// --- ListDepartments ---

func TestListDepartments_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRosterHandler(t)

	svc.EXPECT().ListDepartments(mock.Anything).Return(department.Defaults(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil)
	h.ListDepartments(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DepartmentListResponse](t, rec)
	if resp.Count != 3 {
		t.Errorf("Count = %d, want 3", resp.Count)
	}
	if resp.Departments[0].ID != "d1" || resp.Departments[0].Name != "Personal Banking" {
		t.Errorf("Departments[0] = %+v, want d1 Personal Banking", resp.Departments[0])
	}
}

// --- ListEmployees ---

func TestListEmployees_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRosterHandler(t)

	svc.EXPECT().ListDepartments(mock.Anything).Return(department.Defaults(), nil)
	svc.EXPECT().ListEmployees(mock.Anything).Return([]employee.Employee{validEmployee()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	h.ListEmployees(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EmployeeListResponse](t, rec)
	if resp.Count != 1 {
		t.Fatalf("Count = %d, want 1", resp.Count)
	}
	if resp.Employees[0].DepartmentName != "Personal Banking" {
		t.Errorf("DepartmentName = %q, want %q", resp.Employees[0].DepartmentName, "Personal Banking")
	}
}

func TestListEmployees_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newRosterHandler(t)

	svc.EXPECT().ListDepartments(mock.Anything).Return(department.Defaults(), nil)
	svc.EXPECT().ListEmployees(mock.Anything).Return(nil, fmt.Errorf("loading: %w", domain.ErrUnavailable))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	h.ListEmployees(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

// --- CreateEmployee ---

func TestCreateEmployee_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRosterHandler(t)

	emp := validEmployee()
	draft := employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: "d1"}
	svc.EXPECT().CreateEmployee(mock.Anything, draft).Return(&emp, nil)
	svc.EXPECT().ListDepartments(mock.Anything).Return(department.Defaults(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", jsonBody(t, dto.FromDraft(draft)))
	h.CreateEmployee(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.EmployeeResponse](t, rec)
	if resp.ToDomain() != emp {
		t.Errorf("response = %+v, want %+v", resp.ToDomain(), emp)
	}
}

func TestCreateEmployee_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newRosterHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", bytes.NewBufferString("{not json"))
	h.CreateEmployee(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.body" {
		t.Errorf("Errors = %+v, want one body error", resp.Errors)
	}
}

func TestCreateEmployee_ValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newRosterHandler(t)

	verr := domain.NewValidationError()
	verr.Add(employee.FieldFirstName, employee.MsgFirstNameTooShort)
	svc.EXPECT().CreateEmployee(mock.Anything, mock.Anything).Return(nil, verr)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees",
		jsonBody(t, map[string]string{"firstName": "Al", "lastName": "Lee", "departmentId": "d1"}))
	h.CreateEmployee(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(resp.Errors))
	}
	if resp.Errors[0].Location != "body.firstName" || resp.Errors[0].Message != employee.MsgFirstNameTooShort {
		t.Errorf("Errors[0] = %+v, want firstName too short", resp.Errors[0])
	}
}

// --- DeleteEmployee ---

func TestDeleteEmployee_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRosterHandler(t)

	svc.EXPECT().DeleteEmployee(mock.Anything, "e1").Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/employees/e1", nil),
		map[string]string{"id": "e1"})
	h.DeleteEmployee(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newRosterHandler(t)

	svc.EXPECT().DeleteEmployee(mock.Anything, "missing").Return(fmt.Errorf("employee missing: %w", domain.ErrNotFound))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/employees/missing", nil),
		map[string]string{"id": "missing"})
	h.DeleteEmployee(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteEmployee_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newRosterHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/employees/", nil),
		map[string]string{"id": "  "})
	h.DeleteEmployee(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Reseed ---

func TestReseed(t *testing.T) {
	t.Parallel()
	h, svc := newRosterHandler(t)

	svc.EXPECT().Reseed(mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reseed", nil)
	h.Reseed(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}
