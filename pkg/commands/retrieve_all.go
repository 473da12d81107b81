package commands

import (
	"strings"

	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/pattern"
)

func retrieveAllHandler() *dispatcher.Handler {
	return dispatcher.NewHandler(RetrieveAll,
		pattern.MustCompile("Retrieve all departments", `^Retrieve all departments$`),
		retrieveAll,
	)
}

func retrieveAll(_ pattern.Args, store directory.Store) (*dispatcher.Result, error) {
	logger := logging.GetLogger("commands.retrieve-all")
	logger.Info().Msg("Retrieving full employee list")

	departments := store.RetrieveAllEmployees()
	if departments == nil {
		departments = []directory.DepartmentInfo{}
	}

	logger.Info().Msgf("Number of departments found: %d", len(departments))
	for _, info := range departments {
		logger.Info().Msgf("%s - %s", info.Department, strings.Join(info.Employees, ", "))
	}

	return &dispatcher.Result{Departments: departments}, nil
}
