package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Target user identifier constraints. The charset mirrors what the
// identity provider accepts for usernames in this deployment.
const (
	TargetUserIDMinLength = 1
	TargetUserIDMaxLength = 128
	SecretCodeMinLength   = 10
	SecretCodeMaxLength   = 1024
)

var targetUserIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ImpersonationRequest is the validated inbound request for one
// impersonation call. It is constructed once per call and never reused.
type ImpersonationRequest struct {
	TargetUserID string `json:"targetUserId" validate:"required,userid"`
	SecretCode   string `json:"secretCode" validate:"required,min=10,max=1024"`
}

// Validate checks the request invariants without touching any external
// service. It is the hard gate before the orchestration starts.
func (r *ImpersonationRequest) Validate() error {
	if len(r.TargetUserID) < TargetUserIDMinLength || len(r.TargetUserID) > TargetUserIDMaxLength {
		return NewValidationError("targetUserId", r.TargetUserID, "targetUserId must be between 1 and 128 characters")
	}
	if !targetUserIDPattern.MatchString(r.TargetUserID) {
		return NewValidationError("targetUserId", r.TargetUserID, "targetUserId may only contain letters, digits, hyphens and underscores")
	}
	if len(r.SecretCode) < SecretCodeMinLength || len(r.SecretCode) > SecretCodeMaxLength {
		return NewValidationError("secretCode", "[redacted]", "secretCode must be between 10 and 1024 characters")
	}
	return nil
}

// IsValidTargetUserID reports whether a user identifier satisfies the
// request invariants. Exposed for handler-level pre-checks.
func IsValidTargetUserID(id string) bool {
	return len(id) >= TargetUserIDMinLength &&
		len(id) <= TargetUserIDMaxLength &&
		targetUserIDPattern.MatchString(id)
}

// AuthChallenge is the intermediate state returned by the identity
// provider's challenge initiation. The session is opaque, single-use and
// scoped to the call that produced it.
type AuthChallenge struct {
	ChallengeName string
	Session       string
}

// IsComplete reports whether the provider returned both halves of the
// challenge. A challenge missing either half must not be answered.
func (c *AuthChallenge) IsComplete() bool {
	return c != nil && c.ChallengeName != "" && c.Session != ""
}

// TokenBundle is the terminal result of a successful impersonation. The
// four fields are copied verbatim from the provider's authentication
// result; the service retains no copy after the response is written.
type TokenBundle struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	IDToken      string `json:"idToken"`
	ExpiresIn    int32  `json:"expiresIn"`
}

// IsPopulated reports whether the provider actually returned tokens.
func (t *TokenBundle) IsPopulated() bool {
	return t != nil && t.AccessToken != ""
}

// Audit outcomes recorded for every terminal impersonation result.
const (
	AuditOutcomeSuccess      = "SUCCESS"
	AuditOutcomeUnauthorized = "UNAUTHORIZED"
	AuditOutcomeUpstream     = "UPSTREAM_FAILURE"
)

// AuditRecord captures one impersonation attempt for operators. It never
// contains the secret or any issued token.
type AuditRecord struct {
	ID           uuid.UUID
	TargetUserID string
	Outcome      string
	ErrorCode    string
	SourceIP     string
	RequestedAt  time.Time
}

// NewAuditRecord builds an audit record for one terminal outcome.
func NewAuditRecord(targetUserID, outcome, errorCode, sourceIP string) *AuditRecord {
	return &AuditRecord{
		ID:           uuid.New(),
		TargetUserID: targetUserID,
		Outcome:      outcome,
		ErrorCode:    errorCode,
		SourceIP:     sourceIP,
		RequestedAt:  time.Now().UTC(),
	}
}
