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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Alias registry errors
	ErrAliasConflict  ErrorCode = "ALIAS_CONFLICT"
	ErrAliasCircle    ErrorCode = "ALIAS_CIRCLE"
	ErrResolutionLoop ErrorCode = "RESOLUTION_LOOP"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// AliasmapError represents a structured error with code and details
type AliasmapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AliasmapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AliasmapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AliasmapError) Is(target error) bool {
	var targetErr *AliasmapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AliasmapError with the given code and message
func New(code ErrorCode, message string) *AliasmapError {
	return &AliasmapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AliasmapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AliasmapError {
	return &AliasmapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AliasmapError
func Wrap(err error, code ErrorCode, message string) *AliasmapError {
	if err == nil {
		return nil
	}
	return &AliasmapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AliasmapError {
	if err == nil {
		return nil
	}
	return &AliasmapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AliasmapError) WithDetail(key string, value interface{}) *AliasmapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var aliasErr *AliasmapError
	if errors.As(err, &aliasErr) {
		return aliasErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AliasmapError
func GetErrorCode(err error) ErrorCode {
	var aliasErr *AliasmapError
	if errors.As(err, &aliasErr) {
		return aliasErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AliasmapError
func GetErrorDetails(err error) map[string]interface{} {
	var aliasErr *AliasmapError
	if errors.As(err, &aliasErr) {
		return aliasErr.Details
	}
	return nil
}
