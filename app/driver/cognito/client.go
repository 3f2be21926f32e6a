package cognito

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"impersonation-service/app/config"
)

// API is the slice of the Cognito admin API this service uses. The
// concrete SDK client satisfies it; tests substitute a scripted stub.
type API interface {
	AdminGetUser(ctx context.Context, params *cip.AdminGetUserInput, optFns ...func(*cip.Options)) (*cip.AdminGetUserOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cip.AdminInitiateAuthInput, optFns ...func(*cip.Options)) (*cip.AdminInitiateAuthOutput, error)
	AdminRespondToAuthChallenge(ctx context.Context, params *cip.AdminRespondToAuthChallengeInput, optFns ...func(*cip.Options)) (*cip.AdminRespondToAuthChallengeOutput, error)
}

// Client wraps the Cognito identity provider SDK client together with
// the pool and app-client identifiers it operates on.
type Client struct {
	api      API
	poolID   string
	clientID string
	logger   *slog.Logger
}

// NewClient creates a new Cognito client from the service configuration.
// Credentials come from the default AWS chain (env, shared config, SSO).
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.CognitoPoolID == "" || cfg.CognitoClientID == "" {
		return nil, fmt.Errorf("cognito pool and client identifiers are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithHTTPClient(&http.Client{
			Timeout: 30 * time.Second,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.Info("Cognito client initialized",
		"region", cfg.AWSRegion,
		"user_pool_id", cfg.CognitoPoolID,
		"client_id", cfg.CognitoClientID)

	return &Client{
		api:      cip.NewFromConfig(awsCfg),
		poolID:   cfg.CognitoPoolID,
		clientID: cfg.CognitoClientID,
		logger:   logger,
	}, nil
}

// NewClientWithAPI creates a client over an existing API implementation.
// Used by tests to inject a scripted Cognito stub.
func NewClientWithAPI(api API, poolID, clientID string, logger *slog.Logger) *Client {
	return &Client{
		api:      api,
		poolID:   poolID,
		clientID: clientID,
		logger:   logger,
	}
}
