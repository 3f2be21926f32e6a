package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the impersonation service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// AWS / identity provider
	AWSRegion             string `yaml:"aws_region"`
	CognitoPoolID         string `yaml:"cognito_pool_id"`
	CognitoClientID       string `yaml:"cognito_client_id"`
	ImpersonationSecretID string `yaml:"impersonation_secret_id"`

	// Database (audit trail)
	DatabaseURL      string `yaml:"database_url"`
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"-"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Rate limiting for the impersonation endpoint
	ImpersonateRateEvery time.Duration `yaml:"impersonate_rate_every"`
	ImpersonateRateBurst int           `yaml:"impersonate_rate_burst"`

	// Features
	EnableAuditLog bool `yaml:"enable_audit_log"`
}

// Load reads configuration from the environment, with an optional YAML
// file (CONFIG_FILE) supplying defaults that the environment overrides.
func Load() (*Config, error) {
	config := &Config{}

	// Optional YAML base file
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", defaultString(config.Port, "9600"))
	config.Host = getEnvOrDefault("HOST", defaultString(config.Host, "0.0.0.0"))
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", defaultString(config.LogLevel, "info"))

	// AWS configuration
	config.AWSRegion = getEnvOrDefault("AWS_REGION", defaultString(config.AWSRegion, "eu-west-1"))

	if v := os.Getenv("COGNITO_POOL_ID"); v != "" {
		config.CognitoPoolID = v
	}
	if config.CognitoPoolID == "" {
		return nil, fmt.Errorf("COGNITO_POOL_ID is required")
	}

	if v := os.Getenv("COGNITO_CLIENT_ID"); v != "" {
		config.CognitoClientID = v
	}
	if config.CognitoClientID == "" {
		return nil, fmt.Errorf("COGNITO_CLIENT_ID is required")
	}

	if v := os.Getenv("IMPERSONATION_SECRET_ID"); v != "" {
		config.ImpersonationSecretID = v
	}
	if config.ImpersonationSecretID == "" {
		return nil, fmt.Errorf("IMPERSONATION_SECRET_ID is required")
	}

	// Database configuration (audit trail)
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseURL = v
	}
	config.DatabaseHost = getEnvOrDefault("DB_HOST", defaultString(config.DatabaseHost, "impersonation-postgres"))
	config.DatabasePort = getEnvOrDefault("DB_PORT", defaultString(config.DatabasePort, "5432"))
	config.DatabaseName = getEnvOrDefault("DB_NAME", defaultString(config.DatabaseName, "impersonation_db"))
	config.DatabaseUser = getEnvOrDefault("DB_USER", defaultString(config.DatabaseUser, "impersonation_user"))
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", defaultString(config.DatabaseSSLMode, "require"))

	// Rate limiting
	var err error
	rateEveryStr := getEnvOrDefault("IMPERSONATE_RATE_EVERY", "10s")
	config.ImpersonateRateEvery, err = time.ParseDuration(rateEveryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid IMPERSONATE_RATE_EVERY: %w", err)
	}

	burstStr := getEnvOrDefault("IMPERSONATE_RATE_BURST", "5")
	burst, err := strconv.Atoi(burstStr)
	if err != nil {
		return nil, fmt.Errorf("invalid IMPERSONATE_RATE_BURST: %w", err)
	}
	config.ImpersonateRateBurst = burst

	// Feature flags
	config.EnableAuditLog = getBoolEnv("ENABLE_AUDIT_LOG", true)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.AWSRegion == "" {
		return fmt.Errorf("AWS region must not be empty")
	}

	if c.ImpersonateRateBurst < 1 {
		return fmt.Errorf("impersonate rate burst must be at least 1, got: %d", c.ImpersonateRateBurst)
	}
	if c.ImpersonateRateEvery <= 0 {
		return fmt.Errorf("impersonate rate interval must be positive, got: %v", c.ImpersonateRateEvery)
	}

	// The audit trail only needs a database when enabled.
	if c.EnableAuditLog && c.DatabaseURL == "" && c.DatabasePassword == "" {
		return fmt.Errorf("audit log enabled but no database configured (set DATABASE_URL or DB_PASSWORD)")
	}

	return nil
}

// DatabaseDSN assembles the connection string for the audit database.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser, c.DatabasePassword, c.DatabaseHost, c.DatabasePort, c.DatabaseName, c.DatabaseSSLMode)
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultString(current, fallback string) string {
	if current != "" {
		return current
	}
	return fallback
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
