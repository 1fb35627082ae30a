package form

import (
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
)

// Page is everything the employee page renders: reference data, the current
// list, the form state and, after a successful submit, the created record.
type Page struct {
	Departments []department.Department
	Employees   []employee.Employee
	Form        EmployeeForm
	Created     *employee.Employee
}

// DepartmentName resolves an employee's department id for display.
func (p *Page) DepartmentName(id string) string {
	return department.NameOf(p.Departments, id)
}
