package store

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
)

// DefaultKey is the storage key the roster document lives under.
const DefaultKey = "pixell_db_v1"

// document is the persisted shape. Field names are part of the storage
// format and must not change without a new key.
type document struct {
	Departments []departmentRecord `json:"departments"`
	Employees   []employeeRecord   `json:"employees"`
}

type departmentRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type employeeRecord struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DepartmentID string `json:"departmentId"`
}

// seedDocument returns the default document: the fixed departments and no
// employees.
func seedDocument() *document {
	defaults := department.Defaults()
	doc := &document{
		Departments: make([]departmentRecord, 0, len(defaults)),
		Employees:   []employeeRecord{},
	}
	for _, d := range defaults {
		doc.Departments = append(doc.Departments, departmentRecord{ID: d.ID, Name: d.Name})
	}
	return doc
}

// decodeDocument parses raw bytes. A document without a departments array
// is treated as corrupt, since every valid document was written from a seed.
func decodeDocument(data []byte) (*document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding roster document: %w", err)
	}
	if doc.Departments == nil {
		return nil, fmt.Errorf("decoding roster document: missing departments")
	}
	if doc.Employees == nil {
		doc.Employees = []employeeRecord{}
	}
	return &doc, nil
}

func encodeDocument(doc *document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding roster document: %w", err)
	}
	return data, nil
}

func (d *document) departments() []department.Department {
	out := make([]department.Department, 0, len(d.Departments))
	for _, r := range d.Departments {
		out = append(out, department.Department{ID: r.ID, Name: r.Name})
	}
	return out
}

func (d *document) employees() []employee.Employee {
	out := make([]employee.Employee, 0, len(d.Employees))
	for _, r := range d.Employees {
		out = append(out, r.toDomain())
	}
	return out
}

func (r employeeRecord) toDomain() employee.Employee {
	return employee.Employee{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DepartmentID: r.DepartmentID,
	}
}
