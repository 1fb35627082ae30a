package ports

import (
	"context"

	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
)

// DocumentBackend stores opaque documents under string keys. Implementations
// replace the whole value on every Save; there is no partial update.
type DocumentBackend interface {
	HealthChecker

	// Load returns the bytes stored under key.
	// Returns domain.ErrNotFound if nothing has been saved under key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the bytes stored under key.
	Save(ctx context.Context, key string, data []byte) error
}

// RosterRepository is the persistence port for departments and employees.
// Implemented by the store adapter; called by the application layer.
type RosterRepository interface {
	// Init writes the default seed if no readable document exists yet.
	Init(ctx context.Context) error

	// Reseed discards the stored document and writes the default seed.
	Reseed(ctx context.Context) error

	// ListDepartments returns all departments in seed order.
	ListDepartments(ctx context.Context) ([]department.Department, error)

	// ListEmployees returns all employees in insertion order.
	ListEmployees(ctx context.Context) ([]employee.Employee, error)

	// DepartmentExists reports whether id names a current department.
	DepartmentExists(ctx context.Context, id string) (bool, error)

	// CreateEmployee assigns a fresh id to draft, appends it and persists the
	// document. The draft is stored as given; validation is the caller's job.
	CreateEmployee(ctx context.Context, draft employee.Draft) (*employee.Employee, error)

	// DeleteEmployee removes the employee with the given id.
	// Returns domain.ErrNotFound if no such employee exists.
	DeleteEmployee(ctx context.Context, id string) error
}
