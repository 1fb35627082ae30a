package ports

import (
	"context"

	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
)

// RosterClient defines the client port for the roster JSON API.
// Implemented by the ACL adapter; called by the rosterctl commands.
// Methods map 1:1 to API endpoints using domain terminology.
type RosterClient interface {
	// ListDepartments fetches GET /api/v1/departments.
	ListDepartments(ctx context.Context) ([]department.Department, error)

	// ListEmployees fetches GET /api/v1/employees.
	ListEmployees(ctx context.Context) ([]employee.Employee, error)

	// CreateEmployee sends POST /api/v1/employees.
	// Returns a *domain.ValidationError when the server rejects the draft.
	CreateEmployee(ctx context.Context, draft employee.Draft) (*employee.Employee, error)

	// DeleteEmployee sends DELETE /api/v1/employees/{id}.
	// Returns domain.ErrNotFound if the employee does not exist.
	DeleteEmployee(ctx context.Context, id string) error

	// Reseed sends POST /api/v1/admin/reseed.
	Reseed(ctx context.Context) error
}
