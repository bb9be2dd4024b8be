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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Resolution errors
	ErrUnsupportedKind ErrorCode = "UNSUPPORTED_KIND"
	ErrTopicNotFound   ErrorCode = "TOPIC_NOT_FOUND"
	ErrCategoryInvalid ErrorCode = "CATEGORY_INVALID"

	// Content errors
	ErrDocMissing     ErrorCode = "DOC_MISSING"
	ErrListingMissing ErrorCode = "LISTING_MISSING"
	ErrListingParse   ErrorCode = "LISTING_PARSE"

	// Rendering errors
	ErrRender ErrorCode = "RENDER"
	ErrExport ErrorCode = "EXPORT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// JlmanError represents a structured error with code and details
type JlmanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *JlmanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *JlmanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *JlmanError) Is(target error) bool {
	var targetErr *JlmanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new JlmanError with the given code and message
func New(code ErrorCode, message string) *JlmanError {
	return &JlmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new JlmanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *JlmanError {
	return &JlmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a JlmanError
func Wrap(err error, code ErrorCode, message string) *JlmanError {
	if err == nil {
		return nil
	}
	return &JlmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *JlmanError {
	if err == nil {
		return nil
	}
	return &JlmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *JlmanError) WithDetail(key string, value interface{}) *JlmanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var jlErr *JlmanError
	if errors.As(err, &jlErr) {
		return jlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a JlmanError
func GetErrorCode(err error) ErrorCode {
	var jlErr *JlmanError
	if errors.As(err, &jlErr) {
		return jlErr.Code
	}
	return ErrUnknown
}
