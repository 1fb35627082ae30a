// Package handlers provides HTTP request handlers for the roster JSON API,
// the HTML employee form and the health endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

// RosterHandler handles the JSON API for departments and employees.
type RosterHandler struct {
	svc ports.RosterService
}

// NewRosterHandler creates a new RosterHandler with the given service port.
func NewRosterHandler(svc ports.RosterService) *RosterHandler {
	return &RosterHandler{svc: svc}
}

// ListDepartments handles GET /api/v1/departments.
func (h *RosterHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.svc.ListDepartments(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDepartmentListResponse(depts))
}

// ListEmployees handles GET /api/v1/employees.
func (h *RosterHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	depts, err := h.svc.ListDepartments(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	emps, err := h.svc.ListEmployees(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEmployeeListResponse(emps, depts))
}

// CreateEmployee handles POST /api/v1/employees.
func (h *RosterHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateEmployee(r.Context(), req.Draft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	// The employee is stored; a failed lookup only drops the resolved name.
	depts, _ := h.svc.ListDepartments(r.Context())
	writeJSON(w, r, http.StatusCreated, dto.ToEmployeeResponse(created, depts))
}

// DeleteEmployee handles DELETE /api/v1/employees/{id}.
func (h *RosterHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteEmployee(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reseed handles POST /api/v1/admin/reseed.
func (h *RosterHandler) Reseed(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reseed(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
