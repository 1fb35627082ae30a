// Package department holds the Department reference entity and its seed data.
package department

// Department is immutable reference data. Departments are created only by
// the store's seeding routine and are never updated or deleted.
type Department struct {
	ID   string
	Name string
}

// Seed ids. They are stable across reseeds so stored employees keep
// resolving to the same department names.
const (
	PersonalBankingID = "d1"
	BusinessBankingID = "d2"
	ITSupportID       = "d3"
)

// Defaults returns a fresh copy of the seeded department list.
func Defaults() []Department {
	return []Department{
		{ID: PersonalBankingID, Name: "Personal Banking"},
		{ID: BusinessBankingID, Name: "Business Banking"},
		{ID: ITSupportID, Name: "IT Support"},
	}
}

// Find returns the department with the given id.
func Find(departments []Department, id string) (Department, bool) {
	for _, d := range departments {
		if d.ID == id {
			return d, true
		}
	}
	return Department{}, false
}

// Exists reports whether id names one of departments.
func Exists(departments []Department, id string) bool {
	_, ok := Find(departments, id)
	return ok
}

// NameOf resolves a department id to its display name, falling back to the
// raw id when the department is unknown.
func NameOf(departments []Department, id string) string {
	if d, ok := Find(departments, id); ok {
		return d.Name
	}
	return id
}
