package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"impersonation-service/app/domain"
	"impersonation-service/app/port"
)

// ImpersonationGateway implements port.SecretStore, port.IdentityDirectory
// and port.ChallengeAuthenticator. It sits between the usecase and the
// AWS drivers: it owns the structural checks on provider responses and
// guarantees that only domain errors cross back to the usecase.
type ImpersonationGateway struct {
	provider port.IdentityProviderClient
	secrets  port.SecretsManagerClient
	logger   *slog.Logger
}

// NewImpersonationGateway creates a new ImpersonationGateway instance
func NewImpersonationGateway(provider port.IdentityProviderClient, secrets port.SecretsManagerClient, logger *slog.Logger) *ImpersonationGateway {
	return &ImpersonationGateway{
		provider: provider,
		secrets:  secrets,
		logger:   logger.With("component", "impersonation_gateway"),
	}
}

// GetSecret fetches the current shared impersonation secret. Fetched
// fresh on every call; the value is never logged.
func (g *ImpersonationGateway) GetSecret(ctx context.Context, secretID string) (string, error) {
	secret, err := g.secrets.GetSecretValue(ctx, secretID)
	if err != nil {
		g.logger.Error("failed to fetch impersonation secret", "error", err)
		return "", fmt.Errorf("failed to fetch impersonation secret: %w", err)
	}

	g.logger.Debug("impersonation secret fetched")
	return secret, nil
}

// UserExists asks the identity directory whether the target user exists.
func (g *ImpersonationGateway) UserExists(ctx context.Context, userID string) (bool, error) {
	exists, err := g.provider.UserExists(ctx, userID)
	if err != nil {
		g.logger.Error("identity lookup failed", "target_user_id", userID, "error", err)
		return false, fmt.Errorf("identity lookup: %w", err)
	}

	g.logger.Debug("identity lookup completed", "target_user_id", userID, "exists", exists)
	return exists, nil
}

// InitiateChallenge starts the custom authentication flow. A response
// missing either the challenge name or the session is unusable and
// surfaces as a protocol error.
func (g *ImpersonationGateway) InitiateChallenge(ctx context.Context, userID string) (*domain.AuthChallenge, error) {
	challenge, err := g.provider.InitiateChallenge(ctx, userID)
	if err != nil {
		g.logger.Error("challenge initiation failed", "target_user_id", userID, "error", err)
		return nil, fmt.Errorf("challenge initiation: %w", err)
	}

	if !challenge.IsComplete() {
		g.logger.Error("challenge initiation returned incomplete challenge",
			"target_user_id", userID,
			"has_challenge_name", challenge != nil && challenge.ChallengeName != "",
			"has_session", challenge != nil && challenge.Session != "")
		return nil, fmt.Errorf("challenge initiation: %w", domain.ErrInvalidChallenge)
	}

	g.logger.Info("challenge initiated",
		"target_user_id", userID,
		"challenge_name", challenge.ChallengeName)
	return challenge, nil
}

// RespondToChallenge submits the answer bound to the initiated session.
// An empty authentication result means the provider rejected the exchange.
func (g *ImpersonationGateway) RespondToChallenge(ctx context.Context, userID, answer string, challenge *domain.AuthChallenge) (*domain.TokenBundle, error) {
	if !challenge.IsComplete() {
		return nil, fmt.Errorf("challenge response: %w", domain.ErrInvalidChallenge)
	}

	bundle, err := g.provider.RespondToChallenge(ctx, userID, answer, challenge)
	if err != nil {
		g.logger.Error("challenge response failed",
			"target_user_id", userID,
			"challenge_name", challenge.ChallengeName,
			"error", err)
		return nil, fmt.Errorf("challenge response: %w", err)
	}

	if !bundle.IsPopulated() {
		g.logger.Error("challenge response returned no authentication result",
			"target_user_id", userID,
			"challenge_name", challenge.ChallengeName)
		return nil, fmt.Errorf("challenge response: %w", domain.ErrChallengeRejected)
	}

	g.logger.Info("challenge exchange completed",
		"target_user_id", userID,
		"expires_in", bundle.ExpiresIn)
	return bundle, nil
}
