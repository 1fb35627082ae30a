package form

import "github.com/jsamuelsen11/pixell-roster/internal/domain/employee"

// Rule is a local, input-level check run before the domain validator. It
// returns the messages to display on the field it targets.
type Rule struct {
	Field string
	Check func(string) []string
}

// DefaultRules is the local pass applied on submit. It repeats the domain's
// first-name check so the message appears even if the domain validator is
// never reached.
func DefaultRules() []Rule {
	return []Rule{
		{Field: employee.FieldFirstName, Check: employee.FirstNameRule},
	}
}

// ApplyRules runs every rule against its field and reports whether all of
// them passed. Fields without a rule are left untouched. Rules for unknown
// field names are ignored.
func (f EmployeeForm) ApplyRules(rules []Rule) (EmployeeForm, bool) {
	ok := true
	for _, r := range rules {
		field := f.field(r.Field)
		if field == nil {
			continue
		}
		next, passed := field.Validate(r.Check)
		*field = next
		ok = ok && passed
	}
	return f, ok
}

// field returns a pointer into the receiver copy so ApplyRules can update it.
func (f *EmployeeForm) field(name string) *Field[string] {
	switch name {
	case employee.FieldFirstName:
		return &f.FirstName
	case employee.FieldLastName:
		return &f.LastName
	case employee.FieldDepartmentID:
		return &f.DepartmentID
	default:
		return nil
	}
}
