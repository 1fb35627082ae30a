package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/pixell-roster/internal/app/form"
	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

var _ ports.FormService = (*FormController)(nil)

// FormController implements ports.FormService: it builds the employee page
// and runs the submit state machine against a RosterService.
type FormController struct {
	roster ports.RosterService
	rules  []form.Rule
	logger *slog.Logger
}

// FormOption configures a FormController.
type FormOption func(*FormController)

// WithRules replaces the local rules run before the roster service is
// called. Passing no rules disables the local pass.
func WithRules(rules ...form.Rule) FormOption {
	return func(c *FormController) {
		c.rules = rules
	}
}

// NewFormController creates a FormController using form.DefaultRules.
func NewFormController(roster ports.RosterService, logger *slog.Logger, opts ...FormOption) *FormController {
	if logger == nil {
		logger = logging.Discard()
	}
	c := &FormController{
		roster: roster,
		rules:  form.DefaultRules(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the page with an empty form. The department selection
// defaults to the first department.
func (c *FormController) Load(ctx context.Context) (*form.Page, error) {
	page, err := c.page(ctx)
	if err != nil {
		return nil, err
	}

	defaultDept := ""
	if len(page.Departments) > 0 {
		defaultDept = page.Departments[0].ID
	}
	page.Form = form.NewEmployeeForm(defaultDept)
	return page, nil
}

// Submit runs one pass of the form state machine:
//
//  1. clear every field's messages;
//  2. run the local rules;
//  3. run the roster service's validation;
//  4. on any failure, attach the messages to their fields and stop without
//     writing;
//  5. on success, re-read the list and reset the name fields, keeping the
//     department selection.
//
// Only storage failures are returned as errors.
func (c *FormController) Submit(ctx context.Context, f form.EmployeeForm) (*form.Page, error) {
	f = f.ClearMessages()
	f, localOK := f.ApplyRules(c.rules)

	draft := f.Draft()
	var (
		created *form.Page
		err     error
	)
	if localOK {
		created, err = c.create(ctx, f)
	} else {
		// Collect the service's messages too, but never write.
		err = c.roster.ValidateEmployee(ctx, draft)
	}

	var verr *domain.ValidationError
	switch {
	case err == nil && localOK:
		return created, nil
	case err != nil && !errors.As(err, &verr):
		return nil, err
	}

	page, perr := c.page(ctx)
	if perr != nil {
		return nil, perr
	}
	page.Form = f.ApplyErrors(err)

	c.logger.DebugContext(ctx, "employee form rejected",
		slog.Bool("local_ok", localOK),
		slog.Any("error", err),
	)
	return page, nil
}

func (c *FormController) create(ctx context.Context, f form.EmployeeForm) (*form.Page, error) {
	emp, err := c.roster.CreateEmployee(ctx, f.Draft())
	if err != nil {
		return nil, err
	}

	page, err := c.page(ctx)
	if err != nil {
		return nil, err
	}
	page.Form = f.ResetNames()
	page.Created = emp
	return page, nil
}

// page loads the reference data and the current list.
func (c *FormController) page(ctx context.Context) (*form.Page, error) {
	depts, err := c.roster.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	emps, err := c.roster.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return &form.Page{Departments: depts, Employees: emps}, nil
}
