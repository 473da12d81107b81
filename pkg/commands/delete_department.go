package commands

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/pattern"
)

func deleteDepartmentHandler() *dispatcher.Handler {
	return dispatcher.NewHandler(DeleteDepartment,
		pattern.MustCompile(
			"Delete department (department name)",
			`^Delete department (?P<department>.*)$`,
			argDepartment,
		),
		deleteDepartment,
	)
}

func deleteDepartment(args pattern.Args, store directory.Store) (*dispatcher.Result, error) {
	logger := logging.GetLogger("commands.delete-department")
	department := args.Require(argDepartment)

	logger.Info().Msgf("Deleting department %q", department)

	removed, err := store.DeleteDepartment(department)
	if err != nil {
		logger.Error().Msgf("Deletion failed with error: %s", errors.Message(err))
		return nil, errors.Wrap(err, errors.ErrDepartmentNotFound, "failed to delete department").
			WithDetail("department", department)
	}

	employees := strings.Join(removed.Employees, ", ")
	logger.Info().Msgf("Department deleted successfully - %q (employees %s)", department, employees)

	return &dispatcher.Result{
		Message:     fmt.Sprintf("Deleted department %q (employees: %s)", department, employees),
		Departments: []directory.DepartmentInfo{removed},
	}, nil
}
