package secretsmanager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	sm "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"

	"impersonation-service/app/config"
	"impersonation-service/app/domain"
)

// API is the slice of the Secrets Manager API this service uses.
type API interface {
	GetSecretValue(ctx context.Context, params *sm.GetSecretValueInput, optFns ...func(*sm.Options)) (*sm.GetSecretValueOutput, error)
}

// Client wraps the Secrets Manager SDK client. It implements
// port.SecretsManagerClient.
type Client struct {
	api    API
	logger *slog.Logger
}

// NewClient creates a new Secrets Manager client from the service
// configuration.
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithHTTPClient(&http.Client{
			Timeout: 30 * time.Second,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.Info("Secrets Manager client initialized", "region", cfg.AWSRegion)

	return &Client{
		api:    sm.NewFromConfig(awsCfg),
		logger: logger,
	}, nil
}

// NewClientWithAPI creates a client over an existing API implementation.
// Used by tests to inject a scripted stub.
func NewClientWithAPI(api API, logger *slog.Logger) *Client {
	return &Client{
		api:    api,
		logger: logger,
	}
}

// GetSecretValue fetches the current value of a secret. Every failure
// mode folds into domain.ErrSecretNotFound: callers get one taxonomy and
// the distinction between "unconfigured" and "unreachable" lives only in
// the log.
func (c *Client) GetSecretValue(ctx context.Context, secretID string) (string, error) {
	if secretID == "" {
		c.logger.Error("secret identifier not configured")
		return "", fmt.Errorf("secret id is empty: %w", domain.ErrSecretNotFound)
	}

	out, err := c.api.GetSecretValue(ctx, &sm.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			c.logger.Error("secret does not exist", "secret_id", secretID)
		} else {
			var apiErr smithy.APIError
			errorCode := ""
			if errors.As(err, &apiErr) {
				errorCode = apiErr.ErrorCode()
			}
			c.logger.Error("failed to retrieve secret",
				"secret_id", secretID,
				"error_code", errorCode,
				"error", err)
		}
		return "", fmt.Errorf("get secret value: %w", domain.ErrSecretNotFound)
	}

	if out.SecretString == nil || *out.SecretString == "" {
		c.logger.Error("secret has no string value", "secret_id", secretID)
		return "", fmt.Errorf("secret value empty: %w", domain.ErrSecretNotFound)
	}

	return *out.SecretString, nil
}
