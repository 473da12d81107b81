package testutil

import (
	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock implementing directory.Store
type MockStore struct {
	mock.Mock
}

var _ directory.Store = (*MockStore)(nil)

// NewMockStore creates a MockStore that asserts its expectations when the
// test finishes
func NewMockStore(t mock.TestingT) *MockStore {
	m := &MockStore{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockStore) AddEmployee(name, department string) {
	m.Called(name, department)
}

func (m *MockStore) RetrieveEmployeesByDepartment(department string) ([]string, bool) {
	args := m.Called(department)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]string), args.Bool(1)
}

func (m *MockStore) RetrieveAllEmployees() []directory.DepartmentInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]directory.DepartmentInfo)
}

func (m *MockStore) ListDepartments() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockStore) DeleteDepartment(department string) (directory.DepartmentInfo, error) {
	args := m.Called(department)
	return args.Get(0).(directory.DepartmentInfo), args.Error(1)
}

func (m *MockStore) DeleteEmployee(name, department string) directory.DeletionOutcome {
	args := m.Called(name, department)
	return args.Get(0).(directory.DeletionOutcome)
}
