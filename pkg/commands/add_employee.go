package commands

import (
	"fmt"
	"slices"

	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/pattern"
)

func addEmployeeHandler() *dispatcher.Handler {
	return dispatcher.NewHandler(AddEmployee,
		pattern.MustCompile(
			"Add (employee name) to (department name)",
			`^Add (?P<employee_name>.*) to (?P<department>.*)$`,
			argEmployeeName, argDepartment,
		),
		addEmployee,
	)
}

// addEmployee refuses a name already present in the department; the store
// itself would happily keep both.
func addEmployee(args pattern.Args, store directory.Store) (*dispatcher.Result, error) {
	logger := logging.GetLogger("commands.add-employee")
	name := args.Require(argEmployeeName)
	department := args.Require(argDepartment)

	logger.Info().Msgf("Adding employee %q to department %q", name, department)

	if employees, ok := store.RetrieveEmployeesByDepartment(department); ok && slices.Contains(employees, name) {
		logger.Warn().Msgf("Employee %q already exists in department %q", name, department)
		return nil, errors.Newf(errors.ErrEmployeeExists,
			"employee %q already exists in department %q", name, department).
			WithDetail("employee", name).
			WithDetail("department", department)
	}

	store.AddEmployee(name, department)

	return &dispatcher.Result{
		Message: fmt.Sprintf("Added %q to department %q", name, department),
	}, nil
}
