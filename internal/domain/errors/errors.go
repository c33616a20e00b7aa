// Package errors defines the application error taxonomy. Every error carries
// the HTTP status and business code the delivery layer reports, so handlers
// can propagate domain failures without translating them locally.
package errors

import (
	"net/http"

	"github.com/adiritzhakii/food-by-me/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types. Statuses mirror the public API contract: credential
// and session failures are 400s with terse messages, the bearer guard is the
// only 401, and re-registering an OAuth identity is the historical 500.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"wrong email or password",
		"",
	)

	// ErrEmailTaken signals a duplicate email during local registration.
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"wrong email or password",
		"",
	)

	// ErrAlreadyRegistered signals a duplicate Google identity during OAuth
	// registration.
	ErrAlreadyRegistered = NewBaseError(
		http.StatusInternalServerError,
		"ALREADY_REGISTERED",
		"user already registered with that email",
		"",
	)

	// ErrNotRegistered is returned when an OAuth login presents a valid
	// credential for an identity that never registered.
	ErrNotRegistered = NewBaseError(
		http.StatusBadRequest,
		"NOT_REGISTERED",
		"user is not registered",
		"",
	)

	// ErrSessionDenied rejects refresh and logout attempts: missing, invalid,
	// expired or replayed refresh tokens, and unknown subjects all collapse
	// into this one signal.
	ErrSessionDenied = NewBaseError(
		http.StatusBadRequest,
		"ACCESS_DENIED",
		"Access Denied",
		"",
	)

	// ErrAccessDenied rejects requests failing the bearer token guard.
	ErrAccessDenied = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_DENIED",
		"Access Denied",
		"",
	)

	// ErrOAuthFailed covers an unverifiable Google credential.
	ErrOAuthFailed = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_FAILED",
		"Google OAuth failed",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid input",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	// ErrGenerationFailed is returned when the generative text collaborator
	// rejects or fails a draft request.
	ErrGenerationFailed = NewBaseError(
		http.StatusBadGateway,
		"GENERATION_FAILED",
		"failed to generate post",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the
// AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
