package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nirmalvora/padosee-server/internal/domain"
	"github.com/nirmalvora/padosee-server/internal/usecase"
)

// credentialUsecaser is the subset of CredentialUsecase the handler needs.
type credentialUsecaser interface {
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	RotatePassword(ctx context.Context, input usecase.RotatePasswordInput) error
}

type AuthHandler struct {
	credentials credentialUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(credentials credentialUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		logger:      logger.With("component", "auth_handler"),
	}
}

type loginRequest struct {
	Email    string `json:"email_address" binding:"required"`
	Password string `json:"user_password" binding:"required"`
}

type loginResponse struct {
	Success int                  `json:"success"`
	Message string               `json:"message"`
	Token   string               `json:"token"`
	User    domain.SanitizedUser `json:"user"`
}

// POST /login
// Unknown email and wrong password get the same 401 body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgBodyMissing)
		return
	}

	result, err := h.credentials.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, msgInvalidLogin)
		case errors.Is(err, domain.ErrVerificationFailed):
			h.logger.WarnContext(c.Request.Context(), "login verification", "error", err)
			respondError(c, http.StatusUnauthorized, msgUnableToLogin)
		default:
			h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
			respondError(c, http.StatusInternalServerError, msgUnableToLogin)
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Success: 1,
		Message: msgLoginSuccess,
		Token:   result.Token,
		User:    result.User,
	})
}

type changePasswordRequest struct {
	Email           string `json:"email_address"`
	CurrentPassword string `json:"user_password"`
	NewPassword     string `json:"new_password"`
}

// PATCH /users/:id/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgBodyMissing)
		return
	}

	err := h.credentials.RotatePassword(c.Request.Context(), usecase.RotatePasswordInput{
		UserID:          c.Param("id"),
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		status, msg := rotationFailure(err)
		if status >= http.StatusInternalServerError {
			h.logger.ErrorContext(c.Request.Context(), "change password", "user_id", c.Param("id"), "error", err)
		}
		respondError(c, status, msg)
		return
	}

	respondMessage(c, http.StatusOK, msgPasswordUpdated)
}

func rotationFailure(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMalformedRequest):
		return http.StatusBadRequest, msgBodyMissing
	case errors.Is(err, domain.ErrUnknownAccount):
		return http.StatusBadRequest, msgUserNotExist
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, msgInvalidPassword
	case errors.Is(err, domain.ErrStore):
		return http.StatusInternalServerError, msgLookupFailed
	case errors.Is(err, domain.ErrVerificationFailed):
		return http.StatusInternalServerError, msgVerifyFailed
	case errors.Is(err, domain.ErrHashingFailed):
		return http.StatusInternalServerError, msgHashFailed
	case errors.Is(err, domain.ErrUpdateFailed):
		return http.StatusInternalServerError, msgUpdatePwdFailed
	default:
		return http.StatusInternalServerError, msgInternalServer
	}
}
