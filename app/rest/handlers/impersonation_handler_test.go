package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"impersonation-service/app/domain"
	mock_port "impersonation-service/app/mocks"
)

func newImpersonateContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/impersonate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestImpersonate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUsecase := mock_port.NewMockImpersonationUsecase(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	handler := NewImpersonationHandler(mockUsecase, logger)

	bundle := &domain.TokenBundle{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		IDToken:      "id-token",
		ExpiresIn:    3600,
	}
	mockUsecase.EXPECT().
		Impersonate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *domain.ImpersonationRequest, _ string) (*domain.TokenBundle, error) {
			assert.Equal(t, "user-123", req.TargetUserID)
			assert.Equal(t, "shared-secret-value", req.SecretCode)
			return bundle, nil
		})

	c, rec := newImpersonateContext(t, `{"targetUserId":"user-123","secretCode":"shared-secret-value"}`)
	require.NoError(t, handler.Impersonate(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ImpersonateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	assert.Equal(t, "id-token", resp.IDToken)
	assert.Equal(t, int32(3600), resp.ExpiresIn)
}

func TestImpersonate_UnauthorizedBodyIsOpaque(t *testing.T) {
	// Both denial causes must produce the exact same response, so the
	// endpoint cannot be used to enumerate user ids.
	tests := []struct {
		name  string
		cause error
	}{
		{
			name:  "invalid secret",
			cause: fmt.Errorf("secret verification: %w", domain.ErrInvalidSecret),
		},
		{
			name:  "unknown user",
			cause: fmt.Errorf("target lookup: %w", domain.ErrUserNotFound),
		},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUsecase := mock_port.NewMockImpersonationUsecase(ctrl)
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			handler := NewImpersonationHandler(mockUsecase, logger)

			mockUsecase.EXPECT().
				Impersonate(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.cause)

			c, rec := newImpersonateContext(t, `{"targetUserId":"user-123","secretCode":"shared-secret-value"}`)
			require.NoError(t, handler.Impersonate(c))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "unauthorized", resp.Error)
			assert.Empty(t, resp.Code)
			assert.Empty(t, resp.Details)
			bodies = append(bodies, strings.TrimSpace(rec.Body.String()))
		})
	}

	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
}

func TestImpersonate_UpstreamFailuresReturnGeneric500(t *testing.T) {
	tests := []struct {
		name  string
		cause error
	}{
		{
			name:  "secret store unavailable",
			cause: fmt.Errorf("fetch secret: %w", domain.ErrSecretNotFound),
		},
		{
			name:  "protocol violation",
			cause: fmt.Errorf("challenge initiation: %w", domain.ErrInvalidChallenge),
		},
		{
			name:  "challenge rejected",
			cause: fmt.Errorf("challenge response: %w", domain.ErrChallengeRejected),
		},
		{
			name:  "provider unreachable",
			cause: fmt.Errorf("admin get user: %w", domain.ErrUpstream),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUsecase := mock_port.NewMockImpersonationUsecase(ctrl)
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			handler := NewImpersonationHandler(mockUsecase, logger)

			mockUsecase.EXPECT().
				Impersonate(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.cause)

			c, rec := newImpersonateContext(t, `{"targetUserId":"user-123","secretCode":"shared-secret-value"}`)
			require.NoError(t, handler.Impersonate(c))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "internal server error", resp.Error)
			assert.NotContains(t, rec.Body.String(), tt.cause.Error())
		})
	}
}

func TestImpersonate_ValidationRejectsBeforeUsecase(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing secret code",
			body: `{"targetUserId":"user-123"}`,
		},
		{
			name: "secret code too short",
			body: `{"targetUserId":"user-123","secretCode":"short"}`,
		},
		{
			name: "user id with disallowed characters",
			body: `{"targetUserId":"user 123!","secretCode":"shared-secret-value"}`,
		},
		{
			name: "user id too long",
			body: fmt.Sprintf(`{"targetUserId":%q,"secretCode":"shared-secret-value"}`, strings.Repeat("a", 129)),
		},
		{
			name: "empty body",
			body: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// No EXPECT: the usecase must never be reached.
			mockUsecase := mock_port.NewMockImpersonationUsecase(ctrl)
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			handler := NewImpersonationHandler(mockUsecase, logger)

			c, rec := newImpersonateContext(t, tt.body)
			require.NoError(t, handler.Impersonate(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "validation failed", resp.Error)
			assert.NotEmpty(t, resp.Details)
		})
	}
}

func TestImpersonate_MalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUsecase := mock_port.NewMockImpersonationUsecase(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	handler := NewImpersonationHandler(mockUsecase, logger)

	c, rec := newImpersonateContext(t, `{"targetUserId":`)
	require.NoError(t, handler.Impersonate(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid request body", resp.Error)
}

func TestImpersonate_SecretNeverEchoed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUsecase := mock_port.NewMockImpersonationUsecase(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	handler := NewImpersonationHandler(mockUsecase, logger)

	mockUsecase.EXPECT().
		Impersonate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("secret verification: %w", domain.ErrInvalidSecret))

	const secret = "very-secret-value-nobody-should-see"
	c, rec := newImpersonateContext(t, fmt.Sprintf(`{"targetUserId":"user-123","secretCode":%q}`, secret))
	require.NoError(t, handler.Impersonate(c))

	assert.NotContains(t, rec.Body.String(), secret)
}
