// Package directory holds the employee directory: a mapping from department
// name to the employees working in it.
//
// Store is the capability set the command handlers depend on. MemoryStore is
// the production implementation; tests substitute testutil.MockStore.
//
// Employee lists are kept sorted after every mutation. The store does not
// deduplicate names, and deleting the last employee of a department leaves
// the department in place as an empty list. Only DeleteDepartment removes a
// department key.
package directory
