package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies an error category independently of its message
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Dispatch errors
	ErrNoMatchingHandler    ErrorCode = "NO_MATCHING_HANDLER"
	ErrHandlerMisconfigured ErrorCode = "HANDLER_MISCONFIGURED"
	ErrCommandFailed        ErrorCode = "COMMAND_FAILED"

	// Directory errors
	ErrDepartmentNotFound      ErrorCode = "DEPARTMENT_NOT_FOUND"
	ErrEmployeeExists          ErrorCode = "EMPLOYEE_EXISTS"
	ErrEmployeeNotInDepartment ErrorCode = "EMPLOYEE_NOT_IN_DEPARTMENT"

	// Output errors
	ErrOutputFormat ErrorCode = "OUTPUT_FORMAT"
)

// RosterError is a structured error carrying a stable code and optional details
type RosterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RosterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RosterError) Unwrap() error {
	return e.Wrapped
}

// Is matches any RosterError with the same code
func (e *RosterError) Is(target error) bool {
	var targetErr *RosterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RosterError with the given code and message
func New(code ErrorCode, message string) *RosterError {
	return &RosterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RosterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RosterError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *RosterError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RosterError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *RosterError) WithDetail(key string, value interface{}) *RosterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RosterError) WithDetails(details map[string]interface{}) *RosterError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rosterErr *RosterError
	if errors.As(err, &rosterErr) {
		return rosterErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RosterError
func GetErrorCode(err error) ErrorCode {
	var rosterErr *RosterError
	if errors.As(err, &rosterErr) {
		return rosterErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RosterError
func GetErrorDetails(err error) map[string]interface{} {
	var rosterErr *RosterError
	if errors.As(err, &rosterErr) {
		return rosterErr.Details
	}
	return nil
}

// Message returns the user-facing message of the outermost RosterError,
// falling back to err.Error() for foreign errors.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var rosterErr *RosterError
	if errors.As(err, &rosterErr) {
		return rosterErr.Message
	}
	return err.Error()
}

// Describe joins the messages along err's chain with ": ", without codes.
// It is what end users see.
func Describe(err error) string {
	var parts []string
	for err != nil {
		rosterErr, ok := err.(*RosterError)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		parts = append(parts, rosterErr.Message)
		err = rosterErr.Wrapped
	}
	return strings.Join(parts, ": ")
}
