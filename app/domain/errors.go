package domain

import "errors"

// Impersonation errors. The usecase returns these sentinels; the HTTP
// layer maps them to status codes without ever exposing which one fired.
var (
	// Authorization failures. Both collapse to the same opaque 401 at
	// the HTTP boundary so callers cannot enumerate user identifiers.
	ErrInvalidSecret = errors.New("impersonation secret mismatch")
	ErrUserNotFound  = errors.New("target user not found")

	// Secret store failures. "Not configured" and "unreachable" are
	// deliberately one taxonomy; the distinction is logged only.
	ErrSecretNotFound = errors.New("impersonation secret unavailable")

	// Provider protocol failures: the provider answered, but the
	// response is structurally unusable.
	ErrInvalidChallenge   = errors.New("challenge initiation returned incomplete challenge")
	ErrChallengeRejected  = errors.New("challenge response returned no authentication result")
	ErrSessionNotReusable = errors.New("challenge session already consumed")

	// Transport or availability failure talking to an upstream service.
	ErrUpstream = errors.New("upstream service failure")
)

// ValidationError carries field-level detail for a malformed request.
// It is produced locally and never reaches an external client.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsUnauthorized reports whether an error belongs to the authorization
// failure class (wrong secret or unknown target user).
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidSecret) || errors.Is(err, ErrUserNotFound)
}

// IsUpstreamProtocol reports whether the provider returned a structurally
// invalid response during the challenge exchange.
func IsUpstreamProtocol(err error) bool {
	return errors.Is(err, ErrInvalidChallenge) ||
		errors.Is(err, ErrChallengeRejected) ||
		errors.Is(err, ErrSessionNotReusable)
}
