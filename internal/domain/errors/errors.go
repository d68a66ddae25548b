// Package errors defines application errors carried across the delivery boundary.
package errors

import (
	"net/http"

	"stocklens/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrDuplicateSKU = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SKU",
		"a product with this SKU already exists in the store",
		"",
	)

	ErrProductCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PRODUCT_CREATION_FAILED",
		"failed to create product",
		"",
	)

	// Store-related errors
	ErrNoStoreAvailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_STORE_AVAILABLE",
		"no store available to receive the import",
		"",
	)

	// Report-related errors
	ErrUnknownReportType = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_REPORT_TYPE",
		"unknown report type",
		"",
	)

	// Import-related errors
	ErrImportAborted = NewBaseError(
		http.StatusUnprocessableEntity,
		"IMPORT_ABORTED",
		"import aborted after a failed insert",
		"",
	)

	ErrImportFileInvalid = NewBaseError(
		http.StatusBadRequest,
		"IMPORT_FILE_INVALID",
		"import file could not be parsed",
		"",
	)

	ErrSQLBridgeUnavailable = NewBaseError(
		http.StatusBadGateway,
		"SQL_BRIDGE_UNAVAILABLE",
		"sql import bridge request failed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
