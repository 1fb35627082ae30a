package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
	"github.com/jsamuelsen11/pixell-roster/internal/platform/logging"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

// Compile-time interface check.
var _ ports.RosterRepository = (*Repository)(nil)

// Repository implements ports.RosterRepository over a DocumentBackend.
// A mutex serializes every read-modify-write of the document, so concurrent
// requests in one process never lose each other's writes.
type Repository struct {
	backend ports.DocumentBackend
	key     string
	newID   func() string

	mu sync.Mutex
}

// Option configures a Repository.
type Option func(*Repository)

// WithKey overrides the storage key. Empty values are ignored.
func WithKey(key string) Option {
	return func(r *Repository) {
		if key != "" {
			r.key = key
		}
	}
}

// WithIDGenerator replaces the UUID generator, for deterministic tests.
func WithIDGenerator(fn func() string) Option {
	return func(r *Repository) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRepository creates a Repository that stores its document in backend.
func NewRepository(backend ports.DocumentBackend, opts ...Option) *Repository {
	r := &Repository{
		backend: backend,
		key:     DefaultKey,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the storage key in use.
func (r *Repository) Key() string {
	return r.key
}

// Init writes the default seed if no readable document exists yet.
func (r *Repository) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.load(ctx)
	return err
}

// Reseed overwrites the stored document with the default seed.
func (r *Repository) Reseed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.save(ctx, seedDocument()); err != nil {
		return err
	}
	logging.FromContext(ctx).InfoContext(ctx, "roster document reseeded",
		slog.String("key", r.key),
		slog.String("backend", r.backend.Name()),
	)
	return nil
}

// ListDepartments returns the departments in stored order.
func (r *Repository) ListDepartments(ctx context.Context) ([]department.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.departments(), nil
}

// ListEmployees returns the employees in insertion order.
func (r *Repository) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.employees(), nil
}

// DepartmentExists reports whether id names a stored department.
func (r *Repository) DepartmentExists(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	return department.Exists(doc.departments(), id), nil
}

// CreateEmployee appends a new employee with a fresh id and persists the
// document. The draft is stored exactly as given.
func (r *Repository) CreateEmployee(ctx context.Context, draft employee.Draft) (*employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	rec := employeeRecord{
		ID:           r.newID(),
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		DepartmentID: draft.DepartmentID,
	}
	if slices.ContainsFunc(doc.Employees, func(e employeeRecord) bool { return e.ID == rec.ID }) {
		return nil, fmt.Errorf("creating employee %s: %w", rec.ID, domain.ErrConflict)
	}
	doc.Employees = append(doc.Employees, rec)

	if err := r.save(ctx, doc); err != nil {
		return nil, err
	}

	created := rec.toDomain()
	return &created, nil
}

// DeleteEmployee removes the employee with the given id.
func (r *Repository) DeleteEmployee(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(doc.Employees, func(e employeeRecord) bool { return e.ID == id })
	if idx < 0 {
		return fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
	}
	doc.Employees = slices.Delete(doc.Employees, idx, idx+1)

	return r.save(ctx, doc)
}

// load reads the document, seeding it when it is missing or corrupt.
// Callers must hold r.mu.
func (r *Repository) load(ctx context.Context) (*document, error) {
	data, err := r.backend.Load(ctx, r.key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		doc := seedDocument()
		if err := r.save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	case err != nil:
		return nil, fmt.Errorf("loading %s from %s: %w: %w", r.key, r.backend.Name(), domain.ErrUnavailable, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "discarding unreadable roster document",
			slog.String("key", r.key),
			slog.String("backend", r.backend.Name()),
			slog.Any("error", err),
		)
		doc = seedDocument()
		if err := r.save(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// save encodes and writes doc. Callers must hold r.mu.
func (r *Repository) save(ctx context.Context, doc *document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if err := r.backend.Save(ctx, r.key, data); err != nil {
		return fmt.Errorf("saving %s to %s: %w: %w", r.key, r.backend.Name(), domain.ErrUnavailable, err)
	}
	return nil
}
