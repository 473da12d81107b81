// Package commands provides the text commands roster understands.
//
// Each command lives in its own file and is built as a dispatcher.Handler:
//   - add_employee.go        - Add (employee name) to (department name)
//   - delete_department.go   - Delete department (department name)
//   - delete_employee.go     - Delete (employee name) from (department name)
//   - list_departments.go    - List departments
//   - retrieve_all.go        - Retrieve all departments
//   - retrieve_department.go - Retrieve department (department name)
//
// Registration order matters: dispatch is first-match-wins, and
// "Delete department X" would otherwise be read as deleting employee
// "department X".
package commands

import (
	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
)

// Handler names
const (
	AddEmployee        = "add-employee"
	DeleteDepartment   = "delete-department"
	DeleteEmployee     = "delete-employee"
	ListDepartments    = "list-departments"
	RetrieveAll        = "retrieve-all"
	RetrieveDepartment = "retrieve-department"
)

// Argument names captured by the command patterns
const (
	argEmployeeName = "employee_name"
	argDepartment   = "department"
)

// All returns a fresh set of the built-in handlers in registration order
func All() []dispatcher.CommandHandler {
	return []dispatcher.CommandHandler{
		addEmployeeHandler(),
		deleteDepartmentHandler(),
		deleteEmployeeHandler(),
		listDepartmentsHandler(),
		retrieveAllHandler(),
		retrieveDepartmentHandler(),
	}
}

// NewDispatcher returns a dispatcher owning store with every built-in
// handler registered
func NewDispatcher(store directory.Store, opts ...dispatcher.Option) *dispatcher.Dispatcher {
	d := dispatcher.New(store, opts...)
	if err := d.Register(All()...); err != nil {
		// handler names are constants; a clash is a build defect
		panic(err)
	}
	return d
}
