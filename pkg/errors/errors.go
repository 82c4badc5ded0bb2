package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors, raised before any file is touched
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrGlobInvalid ErrorCode = "GLOB_INVALID"
	ErrNoVariables ErrorCode = "NO_VARIABLES"

	// Resolution errors
	ErrResolve ErrorCode = "RESOLVE"

	// Coverage errors
	ErrCoverage ErrorCode = "COVERAGE"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// Process exit codes, following sysexits(3)
const (
	ExitOK      = 0
	ExitUsage   = 64
	ExitDataErr = 65
)

// EnvfillError represents a structured error with code and details
type EnvfillError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EnvfillError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EnvfillError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EnvfillError) Is(target error) bool {
	var targetErr *EnvfillError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EnvfillError with the given code and message
func New(code ErrorCode, message string) *EnvfillError {
	return &EnvfillError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EnvfillError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EnvfillError {
	return &EnvfillError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EnvfillError
func Wrap(err error, code ErrorCode, message string) *EnvfillError {
	if err == nil {
		return nil
	}
	return &EnvfillError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EnvfillError {
	if err == nil {
		return nil
	}
	return &EnvfillError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EnvfillError) WithDetail(key string, value interface{}) *EnvfillError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var envfillErr *EnvfillError
	if errors.As(err, &envfillErr) {
		return envfillErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EnvfillError
func GetErrorCode(err error) ErrorCode {
	var envfillErr *EnvfillError
	if errors.As(err, &envfillErr) {
		return envfillErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EnvfillError
func GetErrorDetails(err error) map[string]interface{} {
	var envfillErr *EnvfillError
	if errors.As(err, &envfillErr) {
		return envfillErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit code. Coded errors are run
// failures; anything else reaching main came from argument parsing.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var envfillErr *EnvfillError
	if errors.As(err, &envfillErr) {
		return ExitDataErr
	}
	return ExitUsage
}
