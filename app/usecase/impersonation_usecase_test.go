package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"impersonation-service/app/domain"
	mock_port "impersonation-service/app/mocks"
	"impersonation-service/app/utils/logger"
)

const (
	testSecretID = "impersonation/shared-secret"
	testSecret   = "current-rotating-secret-value"
	testSourceIP = "203.0.113.7"
)

type usecaseMocks struct {
	secrets    *mock_port.MockSecretStore
	directory  *mock_port.MockIdentityDirectory
	challenger *mock_port.MockChallengeAuthenticator
	audit      *mock_port.MockAuditRecorder
}

func createTestUseCase(t *testing.T) (*ImpersonationUseCase, *usecaseMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &usecaseMocks{
		secrets:    mock_port.NewMockSecretStore(ctrl),
		directory:  mock_port.NewMockIdentityDirectory(ctrl),
		challenger: mock_port.NewMockChallengeAuthenticator(ctrl),
		audit:      mock_port.NewMockAuditRecorder(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewImpersonationUseCase(
		mocks.secrets,
		mocks.directory,
		mocks.challenger,
		mocks.audit,
		testSecretID,
		testLogger,
	)

	return uc, mocks
}

func validRequest() *domain.ImpersonationRequest {
	return &domain.ImpersonationRequest{
		TargetUserID: "user-123",
		SecretCode:   testSecret,
	}
}

func TestImpersonate_Success(t *testing.T) {
	uc, mocks := createTestUseCase(t)

	challenge := &domain.AuthChallenge{ChallengeName: "CUSTOM_CHALLENGE", Session: "session-1"}
	expected := &domain.TokenBundle{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		IDToken:      "id-token",
		ExpiresIn:    3600,
	}

	mocks.secrets.EXPECT().
		GetSecret(gomock.Any(), testSecretID).
		Return(testSecret, nil)
	mocks.directory.EXPECT().
		UserExists(gomock.Any(), "user-123").
		Return(true, nil)
	mocks.challenger.EXPECT().
		InitiateChallenge(gomock.Any(), "user-123").
		Return(challenge, nil)
	mocks.challenger.EXPECT().
		RespondToChallenge(gomock.Any(), "user-123", testSecret, challenge).
		Return(expected, nil)
	mocks.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.AuditRecord) error {
			assert.Equal(t, domain.AuditOutcomeSuccess, record.Outcome)
			assert.Equal(t, "user-123", record.TargetUserID)
			assert.Equal(t, testSourceIP, record.SourceIP)
			return nil
		})

	bundle, err := uc.Impersonate(context.Background(), validRequest(), testSourceIP)

	require.NoError(t, err)
	// The bundle is the provider's authentication result, untouched.
	assert.Equal(t, expected, bundle)
}

func TestImpersonate_WrongSecret_FailsFast(t *testing.T) {
	// A secret mismatch must end the call before the identity directory
	// or the challenge client is ever contacted. The mocks make that
	// structural: any call to them fails the test.
	uc, mocks := createTestUseCase(t)

	mocks.secrets.EXPECT().
		GetSecret(gomock.Any(), testSecretID).
		Return(testSecret, nil)
	mocks.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.AuditRecord) error {
			assert.Equal(t, domain.AuditOutcomeUnauthorized, record.Outcome)
			return nil
		})

	req := validRequest()
	req.SecretCode = "wrong-secret-wrong-secret"

	bundle, err := uc.Impersonate(context.Background(), req, testSourceIP)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSecret)
	assert.True(t, domain.IsUnauthorized(err))
	assert.Nil(t, bundle)
}

func TestImpersonate_SecretStoreUnreachable_FailsFast(t *testing.T) {
	uc, mocks := createTestUseCase(t)

	mocks.secrets.EXPECT().
		GetSecret(gomock.Any(), testSecretID).
		Return("", fmt.Errorf("failed to fetch impersonation secret: %w", domain.ErrSecretNotFound))
	mocks.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.AuditRecord) error {
			assert.Equal(t, domain.AuditOutcomeUpstream, record.Outcome)
			return nil
		})

	bundle, err := uc.Impersonate(context.Background(), validRequest(), testSourceIP)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.Nil(t, bundle)
}

func TestImpersonate_UnknownUser_NoChallengeInitiated(t *testing.T) {
	uc, mocks := createTestUseCase(t)

	mocks.secrets.EXPECT().
		GetSecret(gomock.Any(), testSecretID).
		Return(testSecret, nil)
	mocks.directory.EXPECT().
		UserExists(gomock.Any(), "user-123").
		Return(false, nil)
	mocks.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.AuditRecord) error {
			assert.Equal(t, domain.AuditOutcomeUnauthorized, record.Outcome)
			return nil
		})

	bundle, err := uc.Impersonate(context.Background(), validRequest(), testSourceIP)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.True(t, domain.IsUnauthorized(err))
	assert.Nil(t, bundle)
}

func TestImpersonate_DirectoryFailure_Propagates(t *testing.T) {
	uc, mocks := createTestUseCase(t)

	mocks.secrets.EXPECT().
		GetSecret(gomock.Any(), testSecretID).
		Return(testSecret, nil)
	mocks.directory.EXPECT().
		UserExists(gomock.Any(), "user-123").
		Return(false, fmt.Errorf("identity lookup: %w", domain.ErrUpstream))
	mocks.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := uc.Impersonate(context.Background(), validRequest(), testSourceIP)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.False(t, domain.IsUnauthorized(err))
}

func TestImpersonate_IncompleteChallenge_RespondNeverInvoked(t *testing.T) {
	uc, mocks := createTestUseCase(t)

	mocks.secrets.EXPECT().
		GetSecret(gomock.Any(), testSecretID).
		Return(testSecret, nil)
	mocks.directory.EXPECT().
		UserExists(gomock.Any(), "user-123").
		Return(true, nil)
	mocks.challenger.EXPECT().
		InitiateChallenge(gomock.Any(), "user-123").
		Return(nil, fmt.Errorf("challenge initiation: %w", domain.ErrInvalidChallenge))
	mocks.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := uc.Impersonate(context.Background(), validRequest(), testSourceIP)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidChallenge)
	assert.True(t, domain.IsUpstreamProtocol(err))
}

func TestImpersonate_ChallengeRejected(t *testing.T) {
	uc, mocks := createTestUseCase(t)

	challenge := &domain.AuthChallenge{ChallengeName: "CUSTOM_CHALLENGE", Session: "session-1"}

	mocks.secrets.EXPECT().
		GetSecret(gomock.Any(), testSecretID).
		Return(testSecret, nil)
	mocks.directory.EXPECT().
		UserExists(gomock.Any(), "user-123").
		Return(true, nil)
	mocks.challenger.EXPECT().
		InitiateChallenge(gomock.Any(), "user-123").
		Return(challenge, nil)
	mocks.challenger.EXPECT().
		RespondToChallenge(gomock.Any(), "user-123", testSecret, challenge).
		Return(nil, fmt.Errorf("challenge response: %w", domain.ErrChallengeRejected))
	mocks.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := uc.Impersonate(context.Background(), validRequest(), testSourceIP)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChallengeRejected)
}

func TestImpersonate_SequentialCallsUseIndependentSessions(t *testing.T) {
	// Two successful calls for the same user must run two independent
	// challenge exchanges; each response is bound to the session its
	// own initiation produced.
	uc, mocks := createTestUseCase(t)

	sessions := []string{"session-call-1", "session-call-2"}
	call := 0

	mocks.secrets.EXPECT().
		GetSecret(gomock.Any(), testSecretID).
		Return(testSecret, nil).
		Times(2)
	mocks.directory.EXPECT().
		UserExists(gomock.Any(), "user-123").
		Return(true, nil).
		Times(2)
	mocks.challenger.EXPECT().
		InitiateChallenge(gomock.Any(), "user-123").
		DoAndReturn(func(context.Context, string) (*domain.AuthChallenge, error) {
			challenge := &domain.AuthChallenge{ChallengeName: "CUSTOM_CHALLENGE", Session: sessions[call]}
			call++
			return challenge, nil
		}).
		Times(2)

	var answered []string
	mocks.challenger.EXPECT().
		RespondToChallenge(gomock.Any(), "user-123", testSecret, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, challenge *domain.AuthChallenge) (*domain.TokenBundle, error) {
			answered = append(answered, challenge.Session)
			return &domain.TokenBundle{AccessToken: "at", RefreshToken: "rt", IDToken: "it", ExpiresIn: 3600}, nil
		}).
		Times(2)
	mocks.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	_, err := uc.Impersonate(context.Background(), validRequest(), testSourceIP)
	require.NoError(t, err)
	_, err = uc.Impersonate(context.Background(), validRequest(), testSourceIP)
	require.NoError(t, err)

	assert.Equal(t, sessions, answered)
}

func TestImpersonate_ValidationFailure_NoNetworkCalls(t *testing.T) {
	tests := []struct {
		name string
		req  *domain.ImpersonationRequest
	}{
		{
			name: "user id too long",
			req: &domain.ImpersonationRequest{
				TargetUserID: strings.Repeat("a", 129),
				SecretCode:   testSecret,
			},
		},
		{
			name: "user id with disallowed character",
			req: &domain.ImpersonationRequest{
				TargetUserID: "user id",
				SecretCode:   testSecret,
			},
		},
		{
			name: "secret too short",
			req: &domain.ImpersonationRequest{
				TargetUserID: "user-123",
				SecretCode:   "short",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No EXPECT calls: any interaction with a collaborator
			// fails the test.
			uc, _ := createTestUseCase(t)

			bundle, err := uc.Impersonate(context.Background(), tt.req, testSourceIP)

			require.Error(t, err)
			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Nil(t, bundle)
		})
	}
}

func TestImpersonate_AuditFailureDoesNotChangeOutcome(t *testing.T) {
	uc, mocks := createTestUseCase(t)

	challenge := &domain.AuthChallenge{ChallengeName: "CUSTOM_CHALLENGE", Session: "session-1"}
	expected := &domain.TokenBundle{AccessToken: "at", RefreshToken: "rt", IDToken: "it", ExpiresIn: 3600}

	mocks.secrets.EXPECT().GetSecret(gomock.Any(), testSecretID).Return(testSecret, nil)
	mocks.directory.EXPECT().UserExists(gomock.Any(), "user-123").Return(true, nil)
	mocks.challenger.EXPECT().InitiateChallenge(gomock.Any(), "user-123").Return(challenge, nil)
	mocks.challenger.EXPECT().
		RespondToChallenge(gomock.Any(), "user-123", testSecret, challenge).
		Return(expected, nil)
	mocks.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(errors.New("database unavailable"))

	bundle, err := uc.Impersonate(context.Background(), validRequest(), testSourceIP)

	require.NoError(t, err)
	assert.Equal(t, expected, bundle)
}

func TestImpersonate_NilAuditRecorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSecrets := mock_port.NewMockSecretStore(ctrl)
	mockDirectory := mock_port.NewMockIdentityDirectory(ctrl)
	mockChallenger := mock_port.NewMockChallengeAuthenticator(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewImpersonationUseCase(mockSecrets, mockDirectory, mockChallenger, nil, testSecretID, testLogger)

	mockSecrets.EXPECT().GetSecret(gomock.Any(), testSecretID).Return(testSecret, nil)

	req := validRequest()
	req.SecretCode = "wrong-secret-wrong-secret"

	_, err = uc.Impersonate(context.Background(), req, testSourceIP)
	assert.ErrorIs(t, err, domain.ErrInvalidSecret)
}
