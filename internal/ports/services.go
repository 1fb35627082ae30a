package ports

import (
	"context"

	"github.com/jsamuelsen11/pixell-roster/internal/app/form"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
)

// RosterService defines the service port for roster use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type RosterService interface {
	// ListDepartments returns the department reference data.
	ListDepartments(ctx context.Context) ([]department.Department, error)

	// ListEmployees returns all employees in insertion order.
	ListEmployees(ctx context.Context) ([]employee.Employee, error)

	// CreateEmployee trims and validates draft and, when every rule passes,
	// persists a new employee and returns it.
	// Returns a *domain.ValidationError (domain.ErrValidation) listing every
	// failing field; the store is not touched in that case.
	CreateEmployee(ctx context.Context, draft employee.Draft) (*employee.Employee, error)

	// ValidateEmployee runs the same checks as CreateEmployee without
	// persisting anything. Returns a *domain.ValidationError or nil.
	ValidateEmployee(ctx context.Context, draft employee.Draft) error

	// DeleteEmployee removes an employee.
	// Returns domain.ErrNotFound if the employee does not exist.
	DeleteEmployee(ctx context.Context, id string) error

	// Reseed restores the default departments and removes every employee.
	Reseed(ctx context.Context) error
}

// FormService drives the employee form page: the initial load and the
// submit state machine.
type FormService interface {
	// Load returns the page with an empty form whose department defaults to
	// the first department.
	Load(ctx context.Context) (*form.Page, error)

	// Submit validates the submitted form and creates the employee when it
	// is valid. Validation failures are reported through the returned page's
	// field messages, not through the error, which is reserved for storage
	// failures.
	Submit(ctx context.Context, f form.EmployeeForm) (*form.Page, error)
}
