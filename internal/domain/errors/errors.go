// Package errors defines the application error taxonomy surfaced to API clients.
package errors

import (
	"net/http"

	"folio/internal/errors"
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

// Is matches any BaseError carrying the same business code, so values derived
// through WithDetails still satisfy errors.Is against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnsupportedSchemaVersion = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_SCHEMA_VERSION",
		"Unsupported request schema version",
		"",
	)

	ErrDisallowedURLScheme = NewBaseError(
		http.StatusBadRequest,
		"DISALLOWED_URL_SCHEME",
		"blob: and data: URLs cannot be stored; upload the file instead",
		"",
	)

	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"Unsupported file type",
		"",
	)

	ErrPayloadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PAYLOAD_TOO_LARGE",
		"File exceeds the allowed size",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid password",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Session is missing, expired or revoked",
		"",
	)

	ErrAdminNotProvisioned = NewBaseError(
		http.StatusServiceUnavailable,
		"ADMIN_NOT_PROVISIONED",
		"Admin account has not been provisioned",
		"",
	)

	ErrAdminAlreadyProvisioned = NewBaseError(
		http.StatusConflict,
		"ADMIN_ALREADY_PROVISIONED",
		"Admin account already exists",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is too short",
		"",
	)

	// Password reset errors
	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Reset token is invalid",
		"",
	)

	ErrResetTokenUsed = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_USED",
		"Reset token has already been used",
		"",
	)

	ErrResetTokenExpired = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_EXPIRED",
		"Reset token has expired",
		"",
	)

	ErrProfileEmailMissing = NewBaseError(
		http.StatusConflict,
		"PROFILE_EMAIL_MISSING",
		"Profile has no contact e-mail for password reset",
		"",
	)

	ErrMailUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"MAIL_UNAVAILABLE",
		"Mail delivery is unavailable",
		"",
	)

	// Content errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile has not been created yet",
		"",
	)

	ErrExperienceNotFound = NewBaseError(
		http.StatusNotFound,
		"EXPERIENCE_NOT_FOUND",
		"Experience not found",
		"",
	)

	ErrSocialLinkNotFound = NewBaseError(
		http.StatusNotFound,
		"SOCIAL_LINK_NOT_FOUND",
		"Social link not found",
		"",
	)

	ErrMetadataNotPublished = NewBaseError(
		http.StatusNotFound,
		"METADATA_NOT_PUBLISHED",
		"Metadata has not been published yet",
		"",
	)

	// Gallery and storage errors
	ErrGalleryImageNotFound = NewBaseError(
		http.StatusNotFound,
		"GALLERY_IMAGE_NOT_FOUND",
		"Gallery image not found",
		"",
	)

	ErrObjectNotFound = NewBaseError(
		http.StatusNotFound,
		"OBJECT_NOT_FOUND",
		"Stored object not found",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Object storage operation failed",
		"",
	)

	ErrFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"FETCH_FAILED",
		"Remote image could not be fetched",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
