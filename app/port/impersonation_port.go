package port

//go:generate mockgen -source=impersonation_port.go -destination=../mocks/mock_impersonation_port.go -package=mocks

import (
	"context"
	"time"

	"impersonation-service/app/domain"
)

// ImpersonationUsecase defines the impersonation business logic interface
type ImpersonationUsecase interface {
	// Impersonate runs the full protocol: secret verification, identity
	// existence check, challenge initiation, challenge response. The
	// returned bundle is the provider's authentication result verbatim.
	Impersonate(ctx context.Context, req *domain.ImpersonationRequest, sourceIP string) (*domain.TokenBundle, error)
}

// SecretStore fetches the current shared impersonation secret. The secret
// is fetched fresh on every call; nothing is cached.
type SecretStore interface {
	GetSecret(ctx context.Context, secretID string) (string, error)
}

// IdentityDirectory answers whether a target user exists in the identity
// provider's user pool.
type IdentityDirectory interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}

// ChallengeAuthenticator drives the provider's two-call custom
// authentication exchange. A challenge returned by InitiateChallenge is
// consumed by exactly one RespondToChallenge call.
type ChallengeAuthenticator interface {
	InitiateChallenge(ctx context.Context, userID string) (*domain.AuthChallenge, error)
	RespondToChallenge(ctx context.Context, userID, answer string, challenge *domain.AuthChallenge) (*domain.TokenBundle, error)
}

// AuditRecorder persists impersonation attempts for operators. Recording
// is observational: failures are logged, never surfaced to callers.
type AuditRecorder interface {
	Record(ctx context.Context, record *domain.AuditRecord) error
}

// AuditReader serves the operator view of the audit trail.
type AuditReader interface {
	RecentAttempts(ctx context.Context, targetUserID string, since time.Time) ([]*domain.AuditRecord, error)
}

// IdentityProviderClient is the driver-level seam over the identity
// provider's admin API. The cognito driver implements it; the gateway
// consumes it.
type IdentityProviderClient interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	InitiateChallenge(ctx context.Context, userID string) (*domain.AuthChallenge, error)
	RespondToChallenge(ctx context.Context, userID, answer string, challenge *domain.AuthChallenge) (*domain.TokenBundle, error)
}

// SecretsManagerClient is the driver-level seam over the secret store.
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, secretID string) (string, error)
}
