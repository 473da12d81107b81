package commands

import (
	"testing"

	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerPatterns(t *testing.T) {
	tests := []struct {
		name        string
		handler     *dispatcher.Handler
		matching    string
		nonMatching string
	}{
		{
			name:        AddEmployee,
			handler:     addEmployeeHandler(),
			matching:    "Add Bob Bobertson to Pie Quality Control",
			nonMatching: "Add Bob Bobertson into the Pie Eating department",
		},
		{
			name:        DeleteDepartment,
			handler:     deleteDepartmentHandler(),
			matching:    "Delete department Pie Eating",
			nonMatching: "We are closing the Pie Eating department",
		},
		{
			name:        DeleteEmployee,
			handler:     deleteEmployeeHandler(),
			matching:    "Delete Bob Bobertson from Pie Quality Control",
			nonMatching: "Remove Bob Bobertson from Pie Quality Control",
		},
		{
			name:        ListDepartments,
			handler:     listDepartmentsHandler(),
			matching:    "List departments",
			nonMatching: "List all the departments",
		},
		{
			name:        RetrieveAll,
			handler:     retrieveAllHandler(),
			matching:    "Retrieve all departments",
			nonMatching: "Retrieve every department",
		},
		{
			name:        RetrieveDepartment,
			handler:     retrieveDepartmentHandler(),
			matching:    "Retrieve department Pie Quality Control",
			nonMatching: "Show department Pie Quality Control",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.handler.Name())
			assert.True(t, tt.handler.Matches(tt.matching))
			assert.False(t, tt.handler.Matches(tt.nonMatching))
		})
	}
}

func TestAddEmployeeHandler(t *testing.T) {
	const command = "Add Bob Bobertson to Pie Quality Control"

	t.Run("adds_new_employee", func(t *testing.T) {
		logs := testutil.CaptureLogs(t, zerolog.InfoLevel)
		store := testutil.NewMockStore(t)
		store.On("RetrieveEmployeesByDepartment", "Pie Quality Control").Return([]string{"Weebl Bull"}, true).Once()
		store.On("AddEmployee", "Bob Bobertson", "Pie Quality Control").Return().Once()

		result, err := addEmployeeHandler().Execute(command, store)
		require.NoError(t, err)
		assert.Equal(t, AddEmployee, result.Handler)
		assert.Equal(t, `Added "Bob Bobertson" to department "Pie Quality Control"`, result.Message)
		assert.Equal(t, []string{`Adding employee "Bob Bobertson" to department "Pie Quality Control"`},
			logs.Messages(t, zerolog.InfoLevel))
	})

	t.Run("adds_to_new_department", func(t *testing.T) {
		store := testutil.NewMockStore(t)
		store.On("RetrieveEmployeesByDepartment", "Pie Quality Control").Return(nil, false).Once()
		store.On("AddEmployee", "Bob Bobertson", "Pie Quality Control").Return().Once()

		_, err := addEmployeeHandler().Execute(command, store)
		require.NoError(t, err)
	})

	t.Run("rejects_existing_employee", func(t *testing.T) {
		logs := testutil.CaptureLogs(t, zerolog.InfoLevel)
		store := testutil.NewMockStore(t)
		store.On("RetrieveEmployeesByDepartment", "Pie Quality Control").Return([]string{"Bob Bobertson"}, true).Once()

		result, err := addEmployeeHandler().Execute(command, store)
		assert.Nil(t, result)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEmployeeExists))
		assert.Equal(t, `employee "Bob Bobertson" already exists in department "Pie Quality Control"`, errors.Message(err))
		assert.Equal(t, []string{`Employee "Bob Bobertson" already exists in department "Pie Quality Control"`},
			logs.Messages(t, zerolog.WarnLevel))
		store.AssertNotCalled(t, "AddEmployee", "Bob Bobertson", "Pie Quality Control")
	})
}

func TestDeleteDepartmentHandler(t *testing.T) {
	const command = "Delete department Pie Eating"

	t.Run("successful_deletion", func(t *testing.T) {
		logs := testutil.CaptureLogs(t, zerolog.InfoLevel)
		removed := directory.DepartmentInfo{Department: "Pie Eating", Employees: []string{"Bob", "Weebl"}}
		store := testutil.NewMockStore(t)
		store.On("DeleteDepartment", "Pie Eating").Return(removed, nil).Once()

		result, err := deleteDepartmentHandler().Execute(command, store)
		require.NoError(t, err)
		assert.Equal(t, `Deleted department "Pie Eating" (employees: Bob, Weebl)`, result.Message)
		assert.Equal(t, []directory.DepartmentInfo{removed}, result.Departments)

		assert.Equal(t, []testutil.LogEntry{
			{Level: "info", Message: `Deleting department "Pie Eating"`, Component: "commands.delete-department"},
			{Level: "info", Message: `Department deleted successfully - "Pie Eating" (employees Bob, Weebl)`, Component: "commands.delete-department"},
		}, logs.Entries(t))
	})

	t.Run("non_existent_department", func(t *testing.T) {
		logs := testutil.CaptureLogs(t, zerolog.InfoLevel)
		storeErr := errors.New(errors.ErrDepartmentNotFound, `could not delete department "Pie Eating" - no such department`)
		store := testutil.NewMockStore(t)
		store.On("DeleteDepartment", "Pie Eating").Return(directory.DepartmentInfo{}, storeErr).Once()

		result, err := deleteDepartmentHandler().Execute(command, store)
		assert.Nil(t, result)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDepartmentNotFound))
		assert.Equal(t, "failed to delete department", errors.Message(err))
		assert.ErrorIs(t, err, storeErr)

		assert.Equal(t, []string{
			`Deletion failed with error: could not delete department "Pie Eating" - no such department`,
		}, logs.Messages(t, zerolog.ErrorLevel))
	})
}

func TestDeleteEmployeeHandler(t *testing.T) {
	const command = "Delete Bob from Pie Eating"

	tests := []struct {
		name        string
		outcome     directory.DeletionOutcome
		wantMessage string
		wantCode    errors.ErrorCode
		wantErrMsg  string
		wantLog     string
	}{
		{
			name:        "successfully_deleted",
			outcome:     directory.SuccessfullyDeleted,
			wantMessage: `Deleted "Bob" from department "Pie Eating"`,
			wantLog:     `Successfully deleted employee "Bob" from department "Pie Eating"`,
		},
		{
			name:       "no_such_department",
			outcome:    directory.NoSuchDepartment,
			wantCode:   errors.ErrDepartmentNotFound,
			wantErrMsg: `no such department "Pie Eating"`,
			wantLog:    `Department "Pie Eating" does not exist`,
		},
		{
			name:       "employee_not_in_department",
			outcome:    directory.EmployeeNotInDepartment,
			wantCode:   errors.ErrEmployeeNotInDepartment,
			wantErrMsg: `employee "Bob" not in department "Pie Eating"`,
			wantLog:    `Employee "Bob" does not exist in department "Pie Eating"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := testutil.CaptureLogs(t, zerolog.InfoLevel)
			store := testutil.NewMockStore(t)
			store.On("DeleteEmployee", "Bob", "Pie Eating").Return(tt.outcome).Once()

			result, err := deleteEmployeeHandler().Execute(command, store)
			if tt.wantErrMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantMessage, result.Message)
			} else {
				assert.Nil(t, result)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode))
				assert.Equal(t, tt.wantErrMsg, errors.Message(err))
			}
			assert.Equal(t, []string{tt.wantLog}, logs.Messages(t, zerolog.InfoLevel))
		})
	}
}

func TestListDepartmentsHandler(t *testing.T) {
	t.Run("populated", func(t *testing.T) {
		store := testutil.NewMockStore(t)
		store.On("ListDepartments").Return([]string{"A", "B"}).Once()

		result, err := listDepartmentsHandler().Execute("List departments", store)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, result.DepartmentNames)
	})

	t.Run("nil_from_store_becomes_empty", func(t *testing.T) {
		store := testutil.NewMockStore(t)
		store.On("ListDepartments").Return(nil).Once()

		result, err := listDepartmentsHandler().Execute("List departments", store)
		require.NoError(t, err)
		assert.NotNil(t, result.DepartmentNames)
		assert.Empty(t, result.DepartmentNames)
	})
}

func TestRetrieveAllHandler(t *testing.T) {
	logs := testutil.CaptureLogs(t, zerolog.InfoLevel)
	departments := []directory.DepartmentInfo{
		{Department: "Pie Eating", Employees: []string{"Bob", "Weebl"}},
		{Department: "Piracy", Employees: []string{"Chris"}},
	}
	store := testutil.NewMockStore(t)
	store.On("RetrieveAllEmployees").Return(departments).Once()

	result, err := retrieveAllHandler().Execute("Retrieve all departments", store)
	require.NoError(t, err)
	assert.Equal(t, departments, result.Departments)
	assert.Equal(t, []string{
		"Retrieving full employee list",
		"Number of departments found: 2",
		"Pie Eating - Bob, Weebl",
		"Piracy - Chris",
	}, logs.Messages(t, zerolog.InfoLevel))
}

func TestRetrieveDepartmentHandler(t *testing.T) {
	const command = "Retrieve department Pie Eating"

	t.Run("found", func(t *testing.T) {
		logs := testutil.CaptureLogs(t, zerolog.InfoLevel)
		store := testutil.NewMockStore(t)
		store.On("RetrieveEmployeesByDepartment", "Pie Eating").Return([]string{"Bob", "Weebl"}, true).Once()

		result, err := retrieveDepartmentHandler().Execute(command, store)
		require.NoError(t, err)
		assert.Equal(t, []directory.DepartmentInfo{{Department: "Pie Eating", Employees: []string{"Bob", "Weebl"}}},
			result.Departments)
		assert.Equal(t, []string{
			`Retrieving employees for department "Pie Eating"`,
			"Number of employees found: 2",
			"Bob, Weebl",
		}, logs.Messages(t, zerolog.InfoLevel))
	})

	t.Run("found_but_empty", func(t *testing.T) {
		store := testutil.NewMockStore(t)
		store.On("RetrieveEmployeesByDepartment", "Pie Eating").Return([]string{}, true).Once()

		result, err := retrieveDepartmentHandler().Execute(command, store)
		require.NoError(t, err)
		require.Len(t, result.Departments, 1)
		assert.NotNil(t, result.Departments[0].Employees)
		assert.Empty(t, result.Departments[0].Employees)
	})

	t.Run("not_found", func(t *testing.T) {
		logs := testutil.CaptureLogs(t, zerolog.InfoLevel)
		store := testutil.NewMockStore(t)
		store.On("RetrieveEmployeesByDepartment", "Pie Eating").Return(nil, false).Once()

		result, err := retrieveDepartmentHandler().Execute(command, store)
		assert.Nil(t, result)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDepartmentNotFound))
		assert.Equal(t, `department "Pie Eating" does not exist`, errors.Message(err))
		assert.Equal(t, []string{`Department "Pie Eating" does not exist`}, logs.Messages(t, zerolog.WarnLevel))
	})
}
