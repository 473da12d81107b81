package commands

import (
	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/pattern"
)

func listDepartmentsHandler() *dispatcher.Handler {
	return dispatcher.NewHandler(ListDepartments,
		pattern.MustCompile("List departments", `^List departments$`),
		listDepartments,
	)
}

func listDepartments(_ pattern.Args, store directory.Store) (*dispatcher.Result, error) {
	logger := logging.GetLogger("commands.list-departments")
	logger.Info().Msg("Listing departments")

	names := store.ListDepartments()
	if names == nil {
		names = []string{}
	}
	logger.Info().Msgf("Number of departments found: %d", len(names))

	return &dispatcher.Result{DepartmentNames: names}, nil
}
