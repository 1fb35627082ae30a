// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
// The outbound roster API client decodes the same types.
package dto

import (
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
)

// DepartmentResponse represents a single department in HTTP responses.
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DepartmentListResponse represents the department list in HTTP responses.
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Count       int                  `json:"count"`
}

// EmployeeResponse represents a single employee in HTTP responses.
// DepartmentName is resolved server-side and falls back to the raw id.
type EmployeeResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName,omitempty"`
}

// EmployeeListResponse represents the employee list in HTTP responses.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Count     int                `json:"count"`
}

// ToDepartmentListResponse converts domain departments to an HTTP list DTO.
func ToDepartmentListResponse(depts []department.Department) DepartmentListResponse {
	items := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		items[i] = DepartmentResponse{ID: d.ID, Name: d.Name}
	}
	return DepartmentListResponse{Departments: items, Count: len(items)}
}

// ToEmployeeResponse converts a domain Employee to an HTTP response DTO.
// depts is used to resolve the department name; it may be nil.
func ToEmployeeResponse(e *employee.Employee, depts []department.Department) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		DepartmentID: e.DepartmentID,
	}
	if depts != nil {
		resp.DepartmentName = department.NameOf(depts, e.DepartmentID)
	}
	return resp
}

// ToEmployeeListResponse converts domain employees to an HTTP list DTO.
func ToEmployeeListResponse(emps []employee.Employee, depts []department.Department) EmployeeListResponse {
	items := make([]EmployeeResponse, len(emps))
	for i := range emps {
		items[i] = ToEmployeeResponse(&emps[i], depts)
	}
	return EmployeeListResponse{Employees: items, Count: len(items)}
}

// ToDomain converts the DTO back into domain departments.
func (r DepartmentListResponse) ToDomain() []department.Department {
	out := make([]department.Department, len(r.Departments))
	for i, d := range r.Departments {
		out[i] = department.Department{ID: d.ID, Name: d.Name}
	}
	return out
}

// ToDomain converts the DTO back into a domain Employee.
func (r EmployeeResponse) ToDomain() employee.Employee {
	return employee.Employee{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DepartmentID: r.DepartmentID,
	}
}

// ToDomain converts the DTO back into domain employees.
func (r EmployeeListResponse) ToDomain() []employee.Employee {
	out := make([]employee.Employee, len(r.Employees))
	for i := range r.Employees {
		out[i] = r.Employees[i].ToDomain()
	}
	return out
}
