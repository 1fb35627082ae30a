package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/store"
	appctx "github.com/jsamuelsen11/pixell-roster/internal/app/context"
	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/telemetry"
	"github.com/jsamuelsen11/pixell-roster/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newSeededService returns a RosterService over a freshly seeded in-memory
// store.
func newSeededService(t *testing.T) (*RosterService, *store.Repository) {
	t.Helper()

	repo := store.NewRepository(store.NewMemoryBackend())
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return NewRosterService(repo, nil, discardLogger()), repo
}

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v (%T), want *domain.ValidationError", err, err)
	}
	return verr.Fields
}

// --- NewRosterService ---

func TestNewRosterService_NilLogger(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockRosterRepository(t)

	svc := NewRosterService(mockRepo, nil, nil)
	if svc.logger == nil {
		t.Fatal("NewRosterService(nil logger) should create a no-op logger, got nil")
	}
}

// --- CreateEmployee ---

func TestRosterService_CreateEmployee_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		draft     employee.Draft
		wantField string
		wantMsg   string
	}{
		{
			name:      "short first name",
			draft:     employee.Draft{FirstName: "Al", LastName: "Lee", DepartmentID: "d1"},
			wantField: employee.FieldFirstName,
			wantMsg:   employee.MsgFirstNameTooShort,
		},
		{
			name:      "unknown department",
			draft:     employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: "bogus"},
			wantField: employee.FieldDepartmentID,
			wantMsg:   employee.MsgDepartmentNotFound,
		},
		{
			name:      "blank last name",
			draft:     employee.Draft{FirstName: "Amanda", LastName: "   ", DepartmentID: "d2"},
			wantField: employee.FieldLastName,
			wantMsg:   employee.MsgLastNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			svc, repo := newSeededService(t)

			got, err := svc.CreateEmployee(ctx, tt.draft)
			if got != nil {
				t.Errorf("CreateEmployee() = %+v, want nil", got)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("CreateEmployee() error = %v, want ErrValidation", err)
			}

			fields := fieldsOf(t, err)
			if len(fields) != 1 {
				t.Errorf("failing fields = %v, want only %q", fields, tt.wantField)
			}
			msgs := fields[tt.wantField]
			if len(msgs) != 1 || msgs[0] != tt.wantMsg {
				t.Errorf("messages[%q] = %v, want [%q]", tt.wantField, msgs, tt.wantMsg)
			}

			emps, err := repo.ListEmployees(ctx)
			if err != nil {
				t.Fatalf("ListEmployees() error = %v", err)
			}
			if len(emps) != 0 {
				t.Errorf("stored %d employees after rejected draft, want 0", len(emps))
			}
		})
	}
}

func TestRosterService_CreateEmployee_ReportsEveryField(t *testing.T) {
	t.Parallel()
	svc, _ := newSeededService(t)

	_, err := svc.CreateEmployee(context.Background(), employee.Draft{FirstName: "A", DepartmentID: "zz"})

	fields := fieldsOf(t, err)
	for _, f := range []string{employee.FieldFirstName, employee.FieldLastName, employee.FieldDepartmentID} {
		if len(fields[f]) == 0 {
			t.Errorf("field %q has no messages, want one", f)
		}
	}
}

func TestRosterService_CreateEmployee_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newSeededService(t)

	created, err := svc.CreateEmployee(ctx, employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: "d1"})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v, want nil", err)
	}
	if created.ID == "" {
		t.Error("created.ID is empty, want a generated id")
	}

	emps, err := svc.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees() error = %v", err)
	}
	if len(emps) != 1 {
		t.Fatalf("len(ListEmployees()) = %d, want 1", len(emps))
	}
	if emps[0] != *created {
		t.Errorf("ListEmployees()[0] = %+v, want %+v", emps[0], *created)
	}
	if emps[0].FirstName != "Amanda" || emps[0].LastName != "Singh" || emps[0].DepartmentID != "d1" {
		t.Errorf("stored employee = %+v, want Amanda Singh in d1", emps[0])
	}
}

func TestRosterService_CreateEmployee_TrimsInput(t *testing.T) {
	t.Parallel()
	svc, _ := newSeededService(t)

	created, err := svc.CreateEmployee(context.Background(),
		employee.Draft{FirstName: "  Amanda ", LastName: "\tSingh\n", DepartmentID: " d3 "})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v, want nil", err)
	}
	if created.FirstName != "Amanda" || created.LastName != "Singh" || created.DepartmentID != "d3" {
		t.Errorf("created = %+v, want trimmed values", created)
	}
}

func TestRosterService_CreateEmployee_ReadsBackUnchanged(t *testing.T) {
	t.Parallel()
	svc, repo := newSeededService(t)
	ctx := context.Background()

	// Form posts can carry raw bytes such as %FF.
	created, err := svc.CreateEmployee(ctx,
		employee.Draft{FirstName: "Am\xffnda", LastName: "Singh", DepartmentID: "d1"})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v, want nil", err)
	}
	if created.FirstName != "Am\uFFFDnda" {
		t.Errorf("created.FirstName = %q, want %q", created.FirstName, "Am\uFFFDnda")
	}

	stored, err := repo.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees() error = %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("len(stored) = %d, want 1", len(stored))
	}
	if stored[0] != *created {
		t.Errorf("stored = %+v, want %+v", stored[0], *created)
	}
}

func TestRosterService_CreateEmployee_UniqueIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newSeededService(t)

	seen := map[string]bool{}
	for i := range 5 {
		created, err := svc.CreateEmployee(ctx, employee.Draft{
			FirstName:    fmt.Sprintf("Person%d", i),
			LastName:     "Tester",
			DepartmentID: "d2",
		})
		if err != nil {
			t.Fatalf("CreateEmployee(%d) error = %v", i, err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %q", created.ID)
		}
		seen[created.ID] = true

		emps, err := svc.ListEmployees(ctx)
		if err != nil {
			t.Fatalf("ListEmployees() error = %v", err)
		}
		if len(emps) != i+1 {
			t.Errorf("after %d creates len(ListEmployees()) = %d", i+1, len(emps))
		}
	}
}

func TestRosterService_CreateEmployee_StorageFailure(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockRosterRepository(t)
	svc := NewRosterService(mockRepo, nil, discardLogger())

	draft := employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: "d1"}
	storageErr := fmt.Errorf("saving roster: %w", domain.ErrUnavailable)

	mockRepo.EXPECT().DepartmentExists(mock.Anything, "d1").Return(true, nil)
	mockRepo.EXPECT().CreateEmployee(mock.Anything, draft).Return(nil, storageErr)

	got, err := svc.CreateEmployee(context.Background(), draft)
	if got != nil {
		t.Errorf("CreateEmployee() = %+v, want nil", got)
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("CreateEmployee() error = %v, want ErrUnavailable", err)
	}
}

func TestRosterService_CreateEmployee_DepartmentLookupFailure(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockRosterRepository(t)
	svc := NewRosterService(mockRepo, nil, discardLogger())

	mockRepo.EXPECT().DepartmentExists(mock.Anything, "d1").Return(false, domain.ErrUnavailable)

	_, err := svc.CreateEmployee(context.Background(),
		employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: "d1"})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("CreateEmployee() error = %v, want ErrUnavailable", err)
	}
}

func TestRosterService_CreateEmployee_InvalidatesEmployeeCache(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockRosterRepository(t)
	svc := NewRosterService(mockRepo, nil, discardLogger())

	draft := employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: "d1"}
	created := &employee.Employee{ID: "e1", FirstName: "Amanda", LastName: "Singh", DepartmentID: "d1"}

	mockRepo.EXPECT().DepartmentExists(mock.Anything, "d1").Return(true, nil).Once()
	mockRepo.EXPECT().ListEmployees(mock.Anything).Return([]employee.Employee{}, nil).Once()
	mockRepo.EXPECT().CreateEmployee(mock.Anything, draft).Return(created, nil).Once()
	mockRepo.EXPECT().ListEmployees(mock.Anything).Return([]employee.Employee{*created}, nil).Once()

	rc := appctx.New(context.Background())
	ctx := appctx.WithRequestContext(rc, rc)

	before, err := svc.ListEmployees(ctx)
	if err != nil || len(before) != 0 {
		t.Fatalf("ListEmployees() = %v, %v; want empty, nil", before, err)
	}
	if _, err := svc.CreateEmployee(ctx, draft); err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}
	after, err := svc.ListEmployees(ctx)
	if err != nil || len(after) != 1 {
		t.Fatalf("ListEmployees() = %v, %v; want one employee", after, err)
	}
}

func TestRosterService_CreateEmployee_RecordsMetrics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	repo := store.NewRepository(store.NewMemoryBackend())
	svc := NewRosterService(repo, metrics, discardLogger())

	if _, err := svc.CreateEmployee(ctx, employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: "d1"}); err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}
	_, _ = svc.CreateEmployee(ctx, employee.Draft{FirstName: "Al", LastName: "", DepartmentID: "d1"})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					totals[m.Name] += dp.Value
				}
			}
		}
	}

	if totals["roster.employees.created"] != 1 {
		t.Errorf("roster.employees.created = %d, want 1", totals["roster.employees.created"])
	}
	if totals["roster.validation.failures"] != 2 {
		t.Errorf("roster.validation.failures = %d, want 2", totals["roster.validation.failures"])
	}
}

// --- ValidateEmployee ---

func TestRosterService_ValidateEmployee_DoesNotWrite(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockRosterRepository(t)
	svc := NewRosterService(mockRepo, nil, discardLogger())

	mockRepo.EXPECT().DepartmentExists(mock.Anything, "d2").Return(true, nil)
	mockRepo.EXPECT().DepartmentExists(mock.Anything, "d9").Return(false, nil)

	if err := svc.ValidateEmployee(context.Background(),
		employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: " d2 "}); err != nil {
		t.Errorf("ValidateEmployee(valid) error = %v, want nil", err)
	}

	err := svc.ValidateEmployee(context.Background(),
		employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: "d9"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ValidateEmployee(unknown department) error = %v, want ErrValidation", err)
	}
}

// --- ListDepartments ---

func TestRosterService_ListDepartments(t *testing.T) {
	t.Parallel()

	t.Run("returns seeded departments", func(t *testing.T) {
		t.Parallel()
		svc, _ := newSeededService(t)

		got, err := svc.ListDepartments(context.Background())
		if err != nil {
			t.Fatalf("ListDepartments() error = %v", err)
		}
		want := department.Defaults()
		if len(got) != len(want) {
			t.Fatalf("len(ListDepartments()) = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("ListDepartments()[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("memoizes within a request", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockRosterRepository(t)
		svc := NewRosterService(mockRepo, nil, discardLogger())

		mockRepo.EXPECT().ListDepartments(mock.Anything).Return(department.Defaults(), nil).Once()

		rc := appctx.New(context.Background())
		ctx := appctx.WithRequestContext(rc, rc)
		for range 3 {
			if _, err := svc.ListDepartments(ctx); err != nil {
				t.Fatalf("ListDepartments() error = %v", err)
			}
		}
	})

	t.Run("propagates repository error", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockRosterRepository(t)
		svc := NewRosterService(mockRepo, nil, discardLogger())

		mockRepo.EXPECT().ListDepartments(mock.Anything).Return(nil, domain.ErrUnavailable)

		got, err := svc.ListDepartments(context.Background())
		if got != nil {
			t.Errorf("ListDepartments() = %v, want nil", got)
		}
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListDepartments() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- DeleteEmployee ---

func TestRosterService_DeleteEmployee(t *testing.T) {
	t.Parallel()

	t.Run("removes the employee", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		svc, _ := newSeededService(t)

		created, err := svc.CreateEmployee(ctx, employee.Draft{FirstName: "Amanda", LastName: "Singh", DepartmentID: "d1"})
		if err != nil {
			t.Fatalf("CreateEmployee() error = %v", err)
		}
		if err := svc.DeleteEmployee(ctx, created.ID); err != nil {
			t.Fatalf("DeleteEmployee() error = %v", err)
		}
		emps, err := svc.ListEmployees(ctx)
		if err != nil {
			t.Fatalf("ListEmployees() error = %v", err)
		}
		if len(emps) != 0 {
			t.Errorf("len(ListEmployees()) = %d after delete, want 0", len(emps))
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		t.Parallel()
		svc, _ := newSeededService(t)

		err := svc.DeleteEmployee(context.Background(), "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("DeleteEmployee() error = %v, want ErrNotFound", err)
		}
	})
}

// --- Reseed ---

func TestRosterService_Reseed(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockRosterRepository(t)
	svc := NewRosterService(mockRepo, nil, discardLogger())

	emp := employee.Employee{ID: "e1", FirstName: "Amanda", LastName: "Singh", DepartmentID: "d1"}
	mockRepo.EXPECT().ListEmployees(mock.Anything).Return([]employee.Employee{emp}, nil).Once()
	mockRepo.EXPECT().Reseed(mock.Anything).Return(nil).Once()
	mockRepo.EXPECT().ListEmployees(mock.Anything).Return([]employee.Employee{}, nil).Once()

	rc := appctx.New(context.Background())
	ctx := appctx.WithRequestContext(rc, rc)

	if _, err := svc.ListEmployees(ctx); err != nil {
		t.Fatalf("ListEmployees() error = %v", err)
	}
	if err := svc.Reseed(ctx); err != nil {
		t.Fatalf("Reseed() error = %v", err)
	}
	got, err := svc.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(ListEmployees()) = %d after reseed, want 0", len(got))
	}
}
