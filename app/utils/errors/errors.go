package errors

import (
	"errors"
	"fmt"
	"net/http"

	"impersonation-service/app/domain"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authorization failures. Wrong secret and unknown target user share
	// one code so the HTTP surface cannot be used as an enumeration
	// oracle.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeBadRequest       ErrorCode = "BAD_REQUEST"

	// Upstream errors
	ErrCodeSecretUnavailable ErrorCode = "SECRET_UNAVAILABLE"
	ErrCodeUpstreamProtocol  ErrorCode = "UPSTREAM_PROTOCOL_ERROR"
	ErrCodeUpstreamError     ErrorCode = "UPSTREAM_ERROR"

	// System errors
	ErrCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrCodeConfigError       ErrorCode = "CONFIG_ERROR"
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Cause      error                  `json:"-"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// Wrapf wraps an existing error with AppError and formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// FromDomain translates a domain error into the AppError the HTTP layer
// serializes. Every wrapped cause stays attached for logging; the public
// message is always generic.
func FromDomain(err error) *AppError {
	switch {
	case domain.IsUnauthorized(err):
		// One opaque message for both failure modes.
		return Wrap(ErrCodeUnauthorized, "unauthorized", err)
	case domain.IsUpstreamProtocol(err):
		return Wrap(ErrCodeUpstreamProtocol, "identity provider returned an invalid response", err)
	case errors.Is(err, domain.ErrSecretNotFound):
		return Wrap(ErrCodeSecretUnavailable, "impersonation secret unavailable", err)
	case errors.Is(err, domain.ErrUpstream):
		return Wrap(ErrCodeUpstreamError, "upstream service failure", err)
	default:
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return Wrap(ErrCodeValidationFailed, "validation failed", err).
				WithDetails(fmt.Sprintf("%s: %s", validationErr.Field, validationErr.Message))
		}
		return Wrap(ErrCodeInternalError, "internal server error", err)
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeValidationFailed, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeSecretUnavailable, ErrCodeUpstreamProtocol, ErrCodeUpstreamError,
		ErrCodeInternalError, ErrCodeConfigError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors

var (
	ErrUnauthorized      = New(ErrCodeUnauthorized, "unauthorized")
	ErrValidationFailed  = New(ErrCodeValidationFailed, "validation failed")
	ErrBadRequest        = New(ErrCodeBadRequest, "bad request")
	ErrInternalError     = New(ErrCodeInternalError, "internal server error")
	ErrRateLimitExceeded = New(ErrCodeRateLimitExceeded, "rate limit exceeded")
)

// NewValidationError creates a validation error with details
func NewValidationError(details string) *AppError {
	return New(ErrCodeValidationFailed, "validation failed").WithDetails(details)
}

// NewInternalError creates an internal error with cause
func NewInternalError(cause error) *AppError {
	return Wrap(ErrCodeInternalError, "internal server error", cause)
}

// NewUpstreamError creates an upstream transport error with cause
func NewUpstreamError(cause error) *AppError {
	return Wrap(ErrCodeUpstreamError, "upstream service failure", cause)
}
