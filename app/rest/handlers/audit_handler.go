package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"impersonation-service/app/domain"
	"impersonation-service/app/port"
	apperrors "impersonation-service/app/utils/errors"
)

const (
	defaultAuditWindow = 24 * time.Hour
	maxAuditWindow     = 30 * 24 * time.Hour
)

// AuditHandler serves the operator view of the impersonation audit
// trail. Registered only when the audit trail is enabled; the service
// runs on an internal network, so the surface carries no auth of its
// own.
type AuditHandler struct {
	reader port.AuditReader
	logger *slog.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(reader port.AuditReader, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		reader: reader,
		logger: logger,
	}
}

// AuditAttemptResponse is one audit trail entry
type AuditAttemptResponse struct {
	ID           string    `json:"id"`
	TargetUserID string    `json:"targetUserId"`
	Outcome      string    `json:"outcome"`
	ErrorCode    string    `json:"errorCode,omitempty"`
	SourceIP     string    `json:"sourceIp,omitempty"`
	RequestedAt  time.Time `json:"requestedAt"`
}

// AuditAttemptsResponse is the recent-attempts listing
type AuditAttemptsResponse struct {
	TargetUserID string                 `json:"targetUserId"`
	Since        time.Time              `json:"since"`
	Attempts     []AuditAttemptResponse `json:"attempts"`
}

// RecentAttempts handles GET /api/audit/:targetUserId
// @Summary Recent impersonation attempts for a user
// @Description List audit trail entries for a target user, newest first
// @Tags audit
// @Produce json
// @Param targetUserId path string true "Target user id"
// @Param window query string false "Lookback window (Go duration, default 24h)"
// @Success 200 {object} AuditAttemptsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/audit/{targetUserId} [get]
func (h *AuditHandler) RecentAttempts(c echo.Context) error {
	targetUserID := c.Param("targetUserId")
	if !domain.IsValidTargetUserID(targetUserID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed",
			Code:  string(apperrors.ErrCodeValidationFailed),
			Details: map[string]string{
				"targetUserId": "must be 1-128 characters of letters, digits, hyphens and underscores",
			},
		})
	}

	window := defaultAuditWindow
	if raw := c.QueryParam("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 || parsed > maxAuditWindow {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "validation failed",
				Code:  string(apperrors.ErrCodeValidationFailed),
				Details: map[string]string{
					"window": "must be a positive duration of at most 720h",
				},
			})
		}
		window = parsed
	}

	since := time.Now().Add(-window)
	records, err := h.reader.RecentAttempts(c.Request().Context(), targetUserID, since)
	if err != nil {
		h.logger.Error("audit trail query failed",
			"target_user_id", targetUserID,
			"error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  string(apperrors.ErrCodeInternalError),
		})
	}

	attempts := make([]AuditAttemptResponse, 0, len(records))
	for _, record := range records {
		attempts = append(attempts, AuditAttemptResponse{
			ID:           record.ID.String(),
			TargetUserID: record.TargetUserID,
			Outcome:      record.Outcome,
			ErrorCode:    record.ErrorCode,
			SourceIP:     record.SourceIP,
			RequestedAt:  record.RequestedAt,
		})
	}

	return c.JSON(http.StatusOK, AuditAttemptsResponse{
		TargetUserID: targetUserID,
		Since:        since,
		Attempts:     attempts,
	})
}
