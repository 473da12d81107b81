package directory

import (
	"sort"

	"github.com/arthur-debert/roster/pkg/errors"
)

// MemoryStore is the in-memory Store. It is not safe for concurrent use:
// callers serving commands from several goroutines must wrap it behind a
// single writer.
type MemoryStore struct {
	departments map[string][]string
}

var (
	_ Store             = (*MemoryStore)(nil)
	_ DepartmentCreator = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{departments: make(map[string][]string)}
}

// NewMemoryStoreFrom creates a store holding a sorted copy of departments
func NewMemoryStoreFrom(departments map[string][]string) *MemoryStore {
	s := NewMemoryStore()
	for department, names := range departments {
		employees := copyNames(names)
		sort.Strings(employees)
		s.departments[department] = employees
	}
	return s
}

// CreateDepartment registers department with no employees. Existing
// departments are left untouched.
func (s *MemoryStore) CreateDepartment(department string) {
	if _, ok := s.departments[department]; !ok {
		s.departments[department] = []string{}
	}
}

func (s *MemoryStore) AddEmployee(name, department string) {
	employees := append(s.departments[department], name)
	sort.Strings(employees)
	s.departments[department] = employees
}

func (s *MemoryStore) RetrieveEmployeesByDepartment(department string) ([]string, bool) {
	employees, ok := s.departments[department]
	if !ok {
		return nil, false
	}
	return copyNames(employees), true
}

func (s *MemoryStore) RetrieveAllEmployees() []DepartmentInfo {
	infos := make([]DepartmentInfo, 0, len(s.departments))
	for _, department := range s.ListDepartments() {
		infos = append(infos, s.snapshot(department))
	}
	return infos
}

func (s *MemoryStore) ListDepartments() []string {
	names := make([]string, 0, len(s.departments))
	for department := range s.departments {
		names = append(names, department)
	}
	sort.Strings(names)
	return names
}

func (s *MemoryStore) DeleteDepartment(department string) (DepartmentInfo, error) {
	if _, ok := s.departments[department]; !ok {
		return DepartmentInfo{}, errors.Newf(errors.ErrDepartmentNotFound,
			"could not delete department %q - no such department", department).
			WithDetail("department", department)
	}
	info := s.snapshot(department)
	delete(s.departments, department)
	return info, nil
}

func (s *MemoryStore) DeleteEmployee(name, department string) DeletionOutcome {
	employees, ok := s.departments[department]
	if !ok {
		return NoSuchDepartment
	}
	for i, existing := range employees {
		if existing == name {
			// An emptied department stays registered.
			s.departments[department] = append(employees[:i], employees[i+1:]...)
			return SuccessfullyDeleted
		}
	}
	return EmployeeNotInDepartment
}

func (s *MemoryStore) snapshot(department string) DepartmentInfo {
	return DepartmentInfo{
		Department: department,
		Employees:  copyNames(s.departments[department]),
	}
}

// copyNames always returns a non-nil slice so an empty department is
// distinguishable from a missing one after serialization.
func copyNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
