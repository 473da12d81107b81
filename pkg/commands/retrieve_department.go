package commands

import (
	"strings"

	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/pattern"
)

func retrieveDepartmentHandler() *dispatcher.Handler {
	return dispatcher.NewHandler(RetrieveDepartment,
		pattern.MustCompile(
			"Retrieve department (department name)",
			`^Retrieve department (?P<department>.*)$`,
			argDepartment,
		),
		retrieveDepartment,
	)
}

// retrieveDepartment treats an existing but empty department as success
func retrieveDepartment(args pattern.Args, store directory.Store) (*dispatcher.Result, error) {
	logger := logging.GetLogger("commands.retrieve-department")
	department := args.Require(argDepartment)

	logger.Info().Msgf("Retrieving employees for department %q", department)

	employees, ok := store.RetrieveEmployeesByDepartment(department)
	if !ok {
		logger.Warn().Msgf("Department %q does not exist", department)
		return nil, errors.Newf(errors.ErrDepartmentNotFound, "department %q does not exist", department).
			WithDetail("department", department)
	}
	if employees == nil {
		employees = []string{}
	}

	logger.Info().Msgf("Number of employees found: %d", len(employees))
	logger.Info().Msg(strings.Join(employees, ", "))

	return &dispatcher.Result{
		Departments: []directory.DepartmentInfo{{Department: department, Employees: employees}},
	}, nil
}
