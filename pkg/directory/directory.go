package directory

// DepartmentInfo is a snapshot of a department and its employees at the time
// of a query. It never aliases store memory.
type DepartmentInfo struct {
	Department string   `json:"department" yaml:"department" toml:"department"`
	Employees  []string `json:"employees" yaml:"employees" toml:"employees"`
}

// DeletionOutcome is the result of an employee deletion attempt
type DeletionOutcome int

const (
	SuccessfullyDeleted DeletionOutcome = iota
	NoSuchDepartment
	EmployeeNotInDepartment
)

func (o DeletionOutcome) String() string {
	switch o {
	case SuccessfullyDeleted:
		return "successfully-deleted"
	case NoSuchDepartment:
		return "no-such-department"
	case EmployeeNotInDepartment:
		return "employee-not-in-department"
	default:
		return "unknown"
	}
}

// Store is the set of operations the command handlers run against
type Store interface {
	// AddEmployee appends name to department, creating the department if
	// needed. The department's list is re-sorted afterwards.
	AddEmployee(name, department string)

	// RetrieveEmployeesByDepartment returns a copy of the department's
	// employees. The bool is false only when the department does not exist.
	RetrieveEmployeesByDepartment(department string) ([]string, bool)

	// RetrieveAllEmployees returns every department, sorted by name.
	RetrieveAllEmployees() []DepartmentInfo

	// ListDepartments returns the department names in ascending order.
	ListDepartments() []string

	// DeleteDepartment removes a department and returns what was removed.
	DeleteDepartment(department string) (DepartmentInfo, error)

	// DeleteEmployee removes name from department. The department is kept
	// even if it becomes empty.
	DeleteEmployee(name, department string) DeletionOutcome
}
