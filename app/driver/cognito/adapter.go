package cognito

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"impersonation-service/app/domain"
)

// apiErrorCode extracts the provider's error code for log context. Empty
// for transport-level failures that never reached the service.
func apiErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// Challenge response parameter names defined by the Cognito custom auth
// protocol.
const (
	paramUsername = "USERNAME"
	paramAnswer   = "ANSWER"
)

// Adapter implements port.IdentityProviderClient on top of Client. It
// converts SDK shapes into domain types and folds SDK error types into
// the domain taxonomy; raw SDK errors never cross this boundary.
type Adapter struct {
	client *Client
	logger *slog.Logger
}

// NewAdapter creates a new Cognito adapter
func NewAdapter(client *Client, logger *slog.Logger) *Adapter {
	return &Adapter{
		client: client,
		logger: logger.With("component", "cognito_adapter"),
	}
}

// UserExists checks whether a username is present in the user pool. A
// provider-side "user not found" is a negative answer, not an error.
func (a *Adapter) UserExists(ctx context.Context, userID string) (bool, error) {
	_, err := a.client.api.AdminGetUser(ctx, &cip.AdminGetUserInput{
		UserPoolId: aws.String(a.client.poolID),
		Username:   aws.String(userID),
	})
	if err != nil {
		var notFound *types.UserNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		a.logger.Error("admin get user failed", "target_user_id", userID, "error_code", apiErrorCode(err), "error", err)
		return false, fmt.Errorf("admin get user: %w", domain.ErrUpstream)
	}

	return true, nil
}

// InitiateChallenge starts the custom authentication flow for a user.
// The initial call carries no secret; the provider's challenge definition
// decides what is asked.
func (a *Adapter) InitiateChallenge(ctx context.Context, userID string) (*domain.AuthChallenge, error) {
	out, err := a.client.api.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		UserPoolId: aws.String(a.client.poolID),
		ClientId:   aws.String(a.client.clientID),
		AuthFlow:   types.AuthFlowTypeCustomAuth,
		AuthParameters: map[string]string{
			paramUsername: userID,
		},
	})
	if err != nil {
		a.logger.Error("admin initiate auth failed", "target_user_id", userID, "error_code", apiErrorCode(err), "error", err)
		return nil, fmt.Errorf("admin initiate auth: %w", domain.ErrUpstream)
	}

	return &domain.AuthChallenge{
		ChallengeName: string(out.ChallengeName),
		Session:       aws.ToString(out.Session),
	}, nil
}

// RespondToChallenge answers the challenge bound to the exact session
// received from initiation. Cognito invalidates the session on use, so a
// replayed session is rejected by the provider.
func (a *Adapter) RespondToChallenge(ctx context.Context, userID, answer string, challenge *domain.AuthChallenge) (*domain.TokenBundle, error) {
	out, err := a.client.api.AdminRespondToAuthChallenge(ctx, &cip.AdminRespondToAuthChallengeInput{
		UserPoolId:    aws.String(a.client.poolID),
		ClientId:      aws.String(a.client.clientID),
		ChallengeName: types.ChallengeNameType(challenge.ChallengeName),
		Session:       aws.String(challenge.Session),
		ChallengeResponses: map[string]string{
			paramUsername: userID,
			paramAnswer:   answer,
		},
	})
	if err != nil {
		var notAuthorized *types.NotAuthorizedException
		if errors.As(err, &notAuthorized) {
			a.logger.Warn("challenge response rejected by provider",
				"target_user_id", userID,
				"challenge_name", challenge.ChallengeName)
			return nil, fmt.Errorf("admin respond to auth challenge: %w", domain.ErrChallengeRejected)
		}
		a.logger.Error("admin respond to auth challenge failed", "target_user_id", userID, "error_code", apiErrorCode(err), "error", err)
		return nil, fmt.Errorf("admin respond to auth challenge: %w", domain.ErrUpstream)
	}

	// A response without an authentication result means the provider did
	// not complete the exchange.
	if out.AuthenticationResult == nil {
		a.logger.Warn("challenge response returned no authentication result",
			"target_user_id", userID,
			"challenge_name", challenge.ChallengeName)
		return nil, fmt.Errorf("admin respond to auth challenge: empty authentication result: %w", domain.ErrChallengeRejected)
	}

	return &domain.TokenBundle{
		AccessToken:  aws.ToString(out.AuthenticationResult.AccessToken),
		RefreshToken: aws.ToString(out.AuthenticationResult.RefreshToken),
		IDToken:      aws.ToString(out.AuthenticationResult.IdToken),
		ExpiresIn:    out.AuthenticationResult.ExpiresIn,
	}, nil
}
