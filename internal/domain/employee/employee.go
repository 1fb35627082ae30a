// Package employee holds the Employee entity and the business rules applied
// when a new employee is created.
package employee

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/pixell-roster/internal/domain"
)

// Field names used as keys in domain.ValidationError.Fields. They match the
// JSON and form field names so errors can be routed back to the right input.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldDepartmentID = "departmentId"
)

// MinFirstNameLength is the minimum trimmed length of a first name.
const MinFirstNameLength = 3

// Validation messages shown next to the offending input.
const (
	MsgFirstNameTooShort  = "First Name must be at least 3 characters."
	MsgLastNameRequired   = "Last Name is required."
	MsgDepartmentNotFound = "That department does not exist."
)

// Employee is a persisted roster entry. DepartmentID referenced an existing
// department when the employee was created; it is not re-checked afterwards.
type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	DepartmentID string
}

// FullName joins first and last name with a single space.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Draft carries the user-supplied fields of an employee that does not exist yet.
type Draft struct {
	FirstName    string
	LastName     string
	DepartmentID string
}

// Normalize returns a copy of d with every field trimmed of surrounding
// whitespace. Invalid UTF-8 becomes U+FFFD, the same substitution JSON
// encoding makes, so a created employee reads back unchanged.
func (d Draft) Normalize() Draft {
	return Draft{
		FirstName:    normalizeText(d.FirstName),
		LastName:     normalizeText(d.LastName),
		DepartmentID: normalizeText(d.DepartmentID),
	}
}

func normalizeText(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, string(utf8.RuneError)))
}

// Validate checks the business rules for creating an employee. The draft is
// normalized first. departmentExists is the caller's membership test against
// the current department set.
//
// All rules are evaluated, so several fields can fail in one call. Returns a
// *domain.ValidationError (wrapping domain.ErrValidation) or nil.
func (d Draft) Validate(departmentExists func(id string) bool) error {
	n := d.Normalize()
	verr := domain.NewValidationError()

	if msgs := FirstNameRule(n.FirstName); len(msgs) > 0 {
		verr.Fields[FieldFirstName] = msgs
	}
	if n.LastName == "" {
		verr.Add(FieldLastName, MsgLastNameRequired)
	}
	if departmentExists == nil || !departmentExists(n.DepartmentID) {
		verr.Add(FieldDepartmentID, MsgDepartmentNotFound)
	}

	return verr.OrNil()
}

// FirstNameRule is the first-name length predicate. It returns the messages
// to display, or nil when the trimmed value is long enough.
func FirstNameRule(v string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(v)) < MinFirstNameLength {
		return []string{MsgFirstNameTooShort}
	}
	return nil
}
