package usecase

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/google/uuid"

	"impersonation-service/app/domain"
	"impersonation-service/app/port"
)

// ImpersonationUseCase implements the impersonation protocol. Each call
// is self-contained: the orchestrator holds no mutable state between
// calls, so concurrent impersonations need no locking.
type ImpersonationUseCase struct {
	secrets    port.SecretStore
	directory  port.IdentityDirectory
	challenger port.ChallengeAuthenticator
	audit      port.AuditRecorder
	secretID   string
	logger     *slog.Logger
}

// NewImpersonationUseCase creates a new ImpersonationUseCase instance.
// audit may be nil when the audit trail is disabled.
func NewImpersonationUseCase(
	secrets port.SecretStore,
	directory port.IdentityDirectory,
	challenger port.ChallengeAuthenticator,
	audit port.AuditRecorder,
	secretID string,
	logger *slog.Logger,
) *ImpersonationUseCase {
	return &ImpersonationUseCase{
		secrets:    secrets,
		directory:  directory,
		challenger: challenger,
		audit:      audit,
		secretID:   secretID,
		logger:     logger.With("component", "impersonation_usecase"),
	}
}

// Impersonate runs the full protocol for one request. Steps are strict
// preconditions of one another; the first failure ends the call. Nothing
// is retried here - retries are the caller's concern.
func (uc *ImpersonationUseCase) Impersonate(ctx context.Context, req *domain.ImpersonationRequest, sourceIP string) (*domain.TokenBundle, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := uc.logger.With(
		"call_id", uuid.NewString(),
		"target_user_id", req.TargetUserID,
	)
	log.Info("impersonation requested", "source_ip", sourceIP)

	// Step 1: prove possession of the current shared secret. The stored
	// secret is a credential, so the comparison is constant-time.
	storedSecret, err := uc.secrets.GetSecret(ctx, uc.secretID)
	if err != nil {
		log.Error("secret verification unavailable", "error", err)
		uc.recordOutcome(ctx, req.TargetUserID, sourceIP, err)
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(req.SecretCode), []byte(storedSecret)) != 1 {
		log.Warn("impersonation secret mismatch")
		uc.recordOutcome(ctx, req.TargetUserID, sourceIP, domain.ErrInvalidSecret)
		return nil, domain.ErrInvalidSecret
	}
	log.Info("impersonation secret verified")

	// Step 2: the target identity must exist before any challenge is
	// started.
	exists, err := uc.directory.UserExists(ctx, req.TargetUserID)
	if err != nil {
		log.Error("identity existence check failed", "error", err)
		uc.recordOutcome(ctx, req.TargetUserID, sourceIP, err)
		return nil, err
	}
	if !exists {
		log.Warn("target user does not exist")
		uc.recordOutcome(ctx, req.TargetUserID, sourceIP, domain.ErrUserNotFound)
		return nil, domain.ErrUserNotFound
	}
	log.Info("target identity confirmed")

	// Step 3: initiate the custom authentication flow. The provider's
	// challenge definition decides the challenge type.
	challenge, err := uc.challenger.InitiateChallenge(ctx, req.TargetUserID)
	if err != nil {
		log.Error("challenge initiation failed", "error", err)
		uc.recordOutcome(ctx, req.TargetUserID, sourceIP, err)
		return nil, err
	}
	log.Info("challenge initiated", "challenge_name", challenge.ChallengeName)

	// Step 4: answer the challenge with the verified secret, bound to
	// the session from step 3. The session is consumed exactly once.
	bundle, err := uc.challenger.RespondToChallenge(ctx, req.TargetUserID, req.SecretCode, challenge)
	if err != nil {
		log.Error("challenge response failed", "error", err)
		uc.recordOutcome(ctx, req.TargetUserID, sourceIP, err)
		return nil, err
	}

	log.Info("impersonation successful", "expires_in", bundle.ExpiresIn)
	uc.recordOutcome(ctx, req.TargetUserID, sourceIP, nil)

	// Step 5: the bundle is handed back verbatim; the service keeps no
	// copy.
	return bundle, nil
}

// recordOutcome writes the audit record for a terminal result. Auditing
// is observational: a failed write is logged and never changes the
// call's outcome.
func (uc *ImpersonationUseCase) recordOutcome(ctx context.Context, targetUserID, sourceIP string, callErr error) {
	if uc.audit == nil {
		return
	}

	outcome := domain.AuditOutcomeSuccess
	errorCode := ""
	switch {
	case callErr == nil:
	case domain.IsUnauthorized(callErr):
		outcome = domain.AuditOutcomeUnauthorized
		errorCode = "UNAUTHORIZED"
	default:
		outcome = domain.AuditOutcomeUpstream
		errorCode = "UPSTREAM_FAILURE"
	}

	record := domain.NewAuditRecord(targetUserID, outcome, errorCode, sourceIP)
	if err := uc.audit.Record(ctx, record); err != nil {
		uc.logger.Warn("audit record write failed",
			"target_user_id", targetUserID,
			"outcome", outcome,
			"error", err)
	}
}
