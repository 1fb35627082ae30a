package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/httpclient"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

// Compile-time interface check.
var _ ports.RosterClient = (*RosterClient)(nil)

// API paths served by the roster router.
const (
	departmentsPath = "/api/v1/departments"
	employeesPath   = "/api/v1/employees"
	reseedPath      = "/api/v1/admin/reseed"
)

// RosterClient is the outbound adapter for the roster JSON API. It
// implements [ports.RosterClient] for rosterctl.
//
// Validation failures come back as *domain.ValidationError with every
// message the server produced, so a command can print them per field. Other
// statuses are mapped to domain sentinels by [TranslateHTTPError].
type RosterClient struct {
	req    *Requester
	http   *httpclient.Client
	logger *slog.Logger
}

// NewRosterClient creates a RosterClient that sends requests through the
// given [httpclient.Client], whose BaseURL points at the roster server root.
func NewRosterClient(client *httpclient.Client, logger *slog.Logger) *RosterClient {
	req := NewRequester(client, logger)
	return &RosterClient{
		req:    req,
		http:   client,
		logger: req.logger,
	}
}

// ListDepartments fetches GET /api/v1/departments.
func (c *RosterClient) ListDepartments(ctx context.Context) ([]department.Department, error) {
	var resp dto.DepartmentListResponse
	if err := c.req.Do(ctx, http.MethodGet, departmentsPath, http.StatusOK, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

// ListEmployees fetches GET /api/v1/employees in insertion order.
func (c *RosterClient) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	var resp dto.EmployeeListResponse
	if err := c.req.Do(ctx, http.MethodGet, employeesPath, http.StatusOK, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

// CreateEmployee sends POST /api/v1/employees. The draft is sent as typed;
// trimming and validation happen on the server.
func (c *RosterClient) CreateEmployee(ctx context.Context, draft employee.Draft) (*employee.Employee, error) {
	body := dto.FromDraft(draft)

	var resp dto.EmployeeResponse
	if err := c.req.Do(ctx, http.MethodPost, employeesPath, http.StatusCreated, body, &resp); err != nil {
		return nil, err
	}
	created := resp.ToDomain()
	return &created, nil
}

// DeleteEmployee sends DELETE /api/v1/employees/{id}. Returns
// domain.ErrNotFound if the server has no such employee.
func (c *RosterClient) DeleteEmployee(ctx context.Context, id string) error {
	return c.req.Do(ctx, http.MethodDelete, employeesPath+"/"+url.PathEscape(id), http.StatusNoContent, nil, nil)
}

// Reseed sends POST /api/v1/admin/reseed.
func (c *RosterClient) Reseed(ctx context.Context) error {
	return c.req.Do(ctx, http.MethodPost, reseedPath, http.StatusNoContent, nil, nil)
}
