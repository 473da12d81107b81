package commands

import (
	"fmt"

	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/pattern"
)

func deleteEmployeeHandler() *dispatcher.Handler {
	return dispatcher.NewHandler(DeleteEmployee,
		pattern.MustCompile(
			"Delete (employee name) from (department name)",
			`^Delete (?P<employee_name>.*) from (?P<department>.*)$`,
			argEmployeeName, argDepartment,
		),
		deleteEmployee,
	)
}

func deleteEmployee(args pattern.Args, store directory.Store) (*dispatcher.Result, error) {
	logger := logging.GetLogger("commands.delete-employee")
	name := args.Require(argEmployeeName)
	department := args.Require(argDepartment)

	switch outcome := store.DeleteEmployee(name, department); outcome {
	case directory.NoSuchDepartment:
		logger.Info().Msgf("Department %q does not exist", department)
		return nil, errors.Newf(errors.ErrDepartmentNotFound, "no such department %q", department).
			WithDetail("department", department)

	case directory.EmployeeNotInDepartment:
		logger.Info().Msgf("Employee %q does not exist in department %q", name, department)
		return nil, errors.Newf(errors.ErrEmployeeNotInDepartment,
			"employee %q not in department %q", name, department).
			WithDetails(map[string]interface{}{"employee": name, "department": department})

	case directory.SuccessfullyDeleted:
		logger.Info().Msgf("Successfully deleted employee %q from department %q", name, department)
		return &dispatcher.Result{
			Message: fmt.Sprintf("Deleted %q from department %q", name, department),
		}, nil

	default:
		return nil, errors.Newf(errors.ErrInternal, "unexpected deletion outcome %s", outcome)
	}
}
