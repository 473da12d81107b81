package testutil

import "github.com/arthur-debert/roster/pkg/directory"

// Names shared by tests across packages
const (
	DepartmentOne = "Pie Quality Control"
	DepartmentTwo = "Stealthy Buccaneering"

	EmployeeOne   = "Bob Bobertson"
	EmployeeTwo   = "Weebl Bull"
	EmployeeThree = "Chris the Ninja Pirate"
)

// PopulatedDepartments returns a fresh copy of the standard fixture data
func PopulatedDepartments() map[string][]string {
	return map[string][]string{
		DepartmentOne: {EmployeeOne, EmployeeTwo},
		DepartmentTwo: {EmployeeThree},
	}
}

// PopulatedStore returns a memory store holding PopulatedDepartments
func PopulatedStore() *directory.MemoryStore {
	return directory.NewMemoryStoreFrom(PopulatedDepartments())
}
