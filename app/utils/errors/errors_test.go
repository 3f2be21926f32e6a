package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impersonation-service/app/domain"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeUnauthorized, "unauthorized")
	assert.Equal(t, "UNAUTHORIZED: unauthorized", err.Error())

	wrapped := Wrap(ErrCodeUpstreamError, "upstream service failure", stderrors.New("dial tcp: timeout"))
	assert.Contains(t, wrapped.Error(), "UPSTREAM_ERROR")
	assert.Contains(t, wrapped.Error(), "dial tcp: timeout")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeInternalError, "internal server error", cause)

	assert.ErrorIs(t, err, cause)
}

func TestAppError_StatusCodes(t *testing.T) {
	tests := []struct {
		code       ErrorCode
		wantStatus int
	}{
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{ErrCodeSecretUnavailable, http.StatusInternalServerError},
		{ErrCodeUpstreamProtocol, http.StatusInternalServerError},
		{ErrCodeUpstreamError, http.StatusInternalServerError},
		{ErrCodeInternalError, http.StatusInternalServerError},
		{ErrCodeConfigError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, New(tt.code, "msg").StatusCode)
		})
	}
}

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   ErrorCode
		wantStatus int
	}{
		{
			name:       "invalid secret maps to unauthorized",
			err:        domain.ErrInvalidSecret,
			wantCode:   ErrCodeUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user maps to unauthorized",
			err:        domain.ErrUserNotFound,
			wantCode:   ErrCodeUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "incomplete challenge maps to upstream protocol",
			err:        domain.ErrInvalidChallenge,
			wantCode:   ErrCodeUpstreamProtocol,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "rejected challenge maps to upstream protocol",
			err:        domain.ErrChallengeRejected,
			wantCode:   ErrCodeUpstreamProtocol,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "missing secret maps to secret unavailable",
			err:        domain.ErrSecretNotFound,
			wantCode:   ErrCodeSecretUnavailable,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "upstream transport maps to upstream error",
			err:        fmt.Errorf("calling provider: %w", domain.ErrUpstream),
			wantCode:   ErrCodeUpstreamError,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "validation error keeps field detail",
			err:        domain.NewValidationError("targetUserId", "x!", "targetUserId may only contain letters, digits, hyphens and underscores"),
			wantCode:   ErrCodeValidationFailed,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown error maps to internal",
			err:        stderrors.New("surprise"),
			wantCode:   ErrCodeInternalError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDomain(tt.err)

			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestFromDomain_UnauthorizedMessageIsOpaque(t *testing.T) {
	// Both authorization failures must produce the identical public
	// message so error text cannot distinguish them.
	fromSecret := FromDomain(domain.ErrInvalidSecret)
	fromUser := FromDomain(domain.ErrUserNotFound)

	assert.Equal(t, fromSecret.Message, fromUser.Message)
	assert.NotContains(t, fromUser.Message, "user")
	assert.NotContains(t, fromUser.Message, "exist")
}

func TestAsAppError(t *testing.T) {
	appErr := New(ErrCodeBadRequest, "bad request")
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeBadRequest, got.Code)

	_, ok = AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestGetHTTPStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatusCode(ErrUnauthorized))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(stderrors.New("plain")))
}

func TestWithContext(t *testing.T) {
	err := New(ErrCodeUpstreamError, "upstream service failure").
		WithContext("step", "challenge_initiation").
		WithContext("target_user_id", "user-1")

	assert.Equal(t, "challenge_initiation", err.Context["step"])
	assert.Equal(t, "user-1", err.Context["target_user_id"])
}
