package form

import (
	"errors"

	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
)

// EmployeeForm is the state of the "Add Employee" form.
type EmployeeForm struct {
	FirstName    Field[string]
	LastName     Field[string]
	DepartmentID Field[string]
}

// NewEmployeeForm returns an empty form with the department preselected.
func NewEmployeeForm(departmentID string) EmployeeForm {
	return EmployeeForm{
		FirstName:    NewField(""),
		LastName:     NewField(""),
		DepartmentID: NewField(departmentID),
	}
}

// Draft converts the current values into an employee draft.
func (f EmployeeForm) Draft() employee.Draft {
	return employee.Draft{
		FirstName:    f.FirstName.Value,
		LastName:     f.LastName.Value,
		DepartmentID: f.DepartmentID.Value,
	}
}

// ClearMessages clears the messages of every field.
func (f EmployeeForm) ClearMessages() EmployeeForm {
	return EmployeeForm{
		FirstName:    f.FirstName.ClearMessages(),
		LastName:     f.LastName.ClearMessages(),
		DepartmentID: f.DepartmentID.ClearMessages(),
	}
}

// ResetNames empties both name inputs. The department selection is kept.
func (f EmployeeForm) ResetNames() EmployeeForm {
	return EmployeeForm{
		FirstName:    f.FirstName.OnChange(""),
		LastName:     f.LastName.OnChange(""),
		DepartmentID: f.DepartmentID,
	}
}

// ApplyErrors pushes the messages of a validation error into the matching
// fields. Fields the error does not mention keep their messages. Errors that
// are not a *domain.ValidationError leave the form unchanged.
func (f EmployeeForm) ApplyErrors(err error) EmployeeForm {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return f
	}

	if msgs, ok := verr.Fields[employee.FieldFirstName]; ok {
		f.FirstName = f.FirstName.WithMessages(msgs)
	}
	if msgs, ok := verr.Fields[employee.FieldLastName]; ok {
		f.LastName = f.LastName.WithMessages(msgs)
	}
	if msgs, ok := verr.Fields[employee.FieldDepartmentID]; ok {
		f.DepartmentID = f.DepartmentID.WithMessages(msgs)
	}
	return f
}

// Valid reports whether no field carries a message.
func (f EmployeeForm) Valid() bool {
	return f.FirstName.Valid() && f.LastName.Valid() && f.DepartmentID.Valid()
}
