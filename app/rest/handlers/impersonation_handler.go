package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"impersonation-service/app/domain"
	"impersonation-service/app/port"
	apperrors "impersonation-service/app/utils/errors"
	"impersonation-service/app/utils/validator"
)

// ImpersonationHandler handles impersonation HTTP requests
type ImpersonationHandler struct {
	usecase   port.ImpersonationUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewImpersonationHandler creates a new impersonation handler
func NewImpersonationHandler(usecase port.ImpersonationUsecase, logger *slog.Logger) *ImpersonationHandler {
	return &ImpersonationHandler{
		usecase:   usecase,
		validator: validator.New(),
		logger:    logger,
	}
}

// ImpersonateRequest is the request payload for POST /api/impersonate
type ImpersonateRequest struct {
	TargetUserID string `json:"targetUserId" validate:"required,userid"`
	SecretCode   string `json:"secretCode" validate:"required,min=10,max=1024"`
}

// ImpersonateResponse carries the issued token bundle
type ImpersonateResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	IDToken      string `json:"idToken"`
	ExpiresIn    int32  `json:"expiresIn"`
}

// ErrorResponse is the generic error payload
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Impersonate handles POST /api/impersonate
// @Summary Impersonate a user
// @Description Exchange the shared impersonation secret for a token bundle issued to the target user
// @Tags impersonation
// @Accept json
// @Produce json
// @Param request body ImpersonateRequest true "Impersonation request"
// @Success 200 {object} ImpersonateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/impersonate [post]
func (h *ImpersonationHandler) Impersonate(c echo.Context) error {
	var req ImpersonateRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("malformed impersonation request body",
			"ip", c.RealIP(),
			"error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  string(apperrors.ErrCodeBadRequest),
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		details := map[string]string{}
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			details = validationErr.Errors
		}
		h.logger.Warn("impersonation request failed validation",
			"target_user_id", req.TargetUserID,
			"ip", c.RealIP())
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    string(apperrors.ErrCodeValidationFailed),
			Details: details,
		})
	}

	domainReq := &domain.ImpersonationRequest{
		TargetUserID: req.TargetUserID,
		SecretCode:   req.SecretCode,
	}

	bundle, err := h.usecase.Impersonate(c.Request().Context(), domainReq, c.RealIP())
	if err != nil {
		return h.writeError(c, req.TargetUserID, err)
	}

	return c.JSON(http.StatusOK, ImpersonateResponse{
		AccessToken:  bundle.AccessToken,
		RefreshToken: bundle.RefreshToken,
		IDToken:      bundle.IDToken,
		ExpiresIn:    bundle.ExpiresIn,
	})
}

// writeError maps a usecase failure to its HTTP response. Unauthorized
// responses carry one fixed body regardless of which check failed, so a
// caller cannot probe which user ids exist.
func (h *ImpersonationHandler) writeError(c echo.Context, targetUserID string, err error) error {
	appErr := apperrors.FromDomain(err)

	switch appErr.StatusCode {
	case http.StatusUnauthorized:
		h.logger.Warn("impersonation denied",
			"target_user_id", targetUserID,
			"ip", c.RealIP(),
			"cause", err)
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
	case http.StatusBadRequest:
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   appErr.Message,
			Code:    string(appErr.Code),
			Details: map[string]string{"reason": appErr.Details},
		})
	default:
		h.logger.Error("impersonation failed upstream",
			"target_user_id", targetUserID,
			"ip", c.RealIP(),
			"code", appErr.Code,
			"cause", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  string(appErr.Code),
		})
	}
}
