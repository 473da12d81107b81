package directory

import "github.com/arthur-debert/roster/pkg/logging"

// SeedDepartment declares a department and its employees for initial
// population of a store.
type SeedDepartment struct {
	Department string   `koanf:"department"`
	Employees  []string `koanf:"employees"`
}

// DepartmentCreator is implemented by stores able to hold empty departments
// without going through AddEmployee.
type DepartmentCreator interface {
	CreateDepartment(department string)
}

// Seed populates store in declaration order. A department declared without
// employees is created empty when the store supports it and skipped
// otherwise.
func Seed(store Store, departments []SeedDepartment) {
	logger := logging.GetLogger("directory.seed")
	for _, seed := range departments {
		if len(seed.Employees) == 0 {
			creator, ok := store.(DepartmentCreator)
			if !ok {
				logger.Debug().Msgf("Skipping empty department %q, store cannot create departments", seed.Department)
				continue
			}
			creator.CreateDepartment(seed.Department)
			continue
		}
		for _, name := range seed.Employees {
			store.AddEmployee(name, seed.Department)
		}
	}
}
