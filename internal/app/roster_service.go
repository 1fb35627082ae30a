package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/pixell-roster/internal/app/context"
	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/telemetry"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

// Compile-time check that RosterService implements ports.RosterService.
var _ ports.RosterService = (*RosterService)(nil)

// Request-cache keys.
const (
	departmentsKey = "roster:departments"
	employeesKey   = "roster:employees"
)

// RosterService implements ports.RosterService on top of a RosterRepository.
// Reads are memoized per request through the appctx.RequestContext; creates
// are staged as actions and committed through it.
type RosterService struct {
	repo    ports.RosterRepository
	metrics *telemetry.Metrics
	logger  *slog.Logger

	departments *appctx.DataProvider[[]department.Department]
	employees   *appctx.DataProvider[[]employee.Employee]
}

// NewRosterService creates a RosterService. metrics may be nil, in which case
// nothing is recorded. A nil logger discards output.
func NewRosterService(repo ports.RosterRepository, metrics *telemetry.Metrics, logger *slog.Logger) *RosterService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &RosterService{
		repo:        repo,
		metrics:     metrics,
		logger:      logger,
		departments: appctx.NewDataProvider(departmentsKey, repo.ListDepartments),
		employees:   appctx.NewDataProvider(employeesKey, repo.ListEmployees),
	}
}

// ListDepartments returns the department reference data.
func (s *RosterService) ListDepartments(ctx context.Context) ([]department.Department, error) {
	depts, err := s.departments.Get(appctx.FromContext(ctx))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list departments",
			slog.String("operation", "ListDepartments"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return depts, nil
}

// ListEmployees returns all employees in insertion order.
func (s *RosterService) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	emps, err := s.employees.Get(appctx.FromContext(ctx))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list employees",
			slog.String("operation", "ListEmployees"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return emps, nil
}

// ValidateEmployee checks draft against the business rules without writing.
// Department membership is asked of the repository, not the request cache.
func (s *RosterService) ValidateEmployee(ctx context.Context, draft employee.Draft) error {
	draft = draft.Normalize()
	exists, err := s.repo.DepartmentExists(ctx, draft.DepartmentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to look up department",
			slog.String("operation", "ValidateEmployee"),
			slog.String("department_id", draft.DepartmentID),
			slog.Any("error", err),
		)
		return err
	}

	if err := draft.Validate(func(string) bool { return exists }); err != nil {
		s.recordValidationFailure(ctx, err)
		return err
	}
	return nil
}

// CreateEmployee trims and validates draft, then persists it. All three
// rules are evaluated so every failing field is reported at once.
func (s *RosterService) CreateEmployee(ctx context.Context, draft employee.Draft) (*employee.Employee, error) {
	draft = draft.Normalize()

	if err := s.ValidateEmployee(ctx, draft); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			s.logger.InfoContext(ctx, "employee rejected",
				slog.String("operation", "CreateEmployee"),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	rc := appctx.FromContext(ctx)
	action := &createEmployeeAction{repo: s.repo, draft: draft}
	if err := rc.AddAction(action); err != nil {
		return nil, fmt.Errorf("staging %s: %w", action.Description(), err)
	}
	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create employee",
			slog.String("operation", "CreateEmployee"),
			slog.String("department_id", draft.DepartmentID),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.employees.Invalidate(rc)

	if s.metrics != nil {
		s.metrics.EmployeesCreated.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrDepartment.String(action.created.DepartmentID)))
	}
	s.logger.InfoContext(ctx, "employee created",
		slog.String("employee_id", action.created.ID),
		slog.String("department_id", action.created.DepartmentID),
	)
	return action.created, nil
}

// DeleteEmployee removes an employee by id.
func (s *RosterService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to delete employee",
				slog.String("operation", "DeleteEmployee"),
				slog.String("employee_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}
	s.employees.Invalidate(appctx.FromContext(ctx))

	s.logger.InfoContext(ctx, "employee deleted", slog.String("employee_id", id))
	return nil
}

// Reseed restores the default departments and removes every employee.
func (s *RosterService) Reseed(ctx context.Context) error {
	if err := s.repo.Reseed(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to reseed roster",
			slog.String("operation", "Reseed"),
			slog.Any("error", err),
		)
		return err
	}

	rc := appctx.FromContext(ctx)
	s.departments.Invalidate(rc)
	s.employees.Invalidate(rc)
	return nil
}

func (s *RosterService) recordValidationFailure(ctx context.Context, err error) {
	if s.metrics == nil {
		return
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for field := range verr.Fields {
		s.metrics.ValidationFailures.Add(ctx, 1, metric.WithAttributes(telemetry.AttrField.String(field)))
	}
}

// createEmployeeAction persists one employee. Rollback deletes it again.
type createEmployeeAction struct {
	repo    ports.RosterRepository
	draft   employee.Draft
	created *employee.Employee
}

func (a *createEmployeeAction) Execute(ctx context.Context) error {
	created, err := a.repo.CreateEmployee(ctx, a.draft)
	if err != nil {
		return err
	}
	a.created = created
	return nil
}

func (a *createEmployeeAction) Rollback(ctx context.Context) error {
	if a.created == nil {
		return nil
	}
	return a.repo.DeleteEmployee(ctx, a.created.ID)
}

func (a *createEmployeeAction) Description() string {
	return fmt.Sprintf("create employee %s %s", a.draft.FirstName, a.draft.LastName)
}
