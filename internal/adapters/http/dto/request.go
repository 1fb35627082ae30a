package dto

import (
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
)

// CreateEmployeeRequest represents the JSON body for creating an employee.
// Field names match the validation error locations.
type CreateEmployeeRequest struct {
	FirstName    string `json:"firstName" yaml:"firstName"`
	LastName     string `json:"lastName" yaml:"lastName"`
	DepartmentID string `json:"departmentId" yaml:"departmentId"`
}

// Draft converts the request to a domain draft. Values are passed through
// untouched; trimming and validation happen in the roster service.
func (r *CreateEmployeeRequest) Draft() employee.Draft {
	return employee.Draft{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DepartmentID: r.DepartmentID,
	}
}

// FromDraft builds a request body from a domain draft.
func FromDraft(d employee.Draft) CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		DepartmentID: d.DepartmentID,
	}
}
