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

type userUsecaser interface {
	CreateUser(ctx context.Context, input usecase.CreateUserInput) (domain.SanitizedUser, error)
	ListUsers(ctx context.Context) ([]domain.SanitizedUser, error)
	GetUser(ctx context.Context, id string) (domain.SanitizedUser, error)
	UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (domain.SanitizedUser, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserHandler struct {
	users  userUsecaser
	logger *slog.Logger
}

func NewUserHandler(users userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger.With("component", "user_handler")}
}

type createUserRequest struct {
	FirstName   string `json:"first_name"    binding:"max=100"`
	LastName    string `json:"last_name"     binding:"max=100"`
	Email       string `json:"email_address" binding:"required,email,max=254"`
	PhoneNumber string `json:"phone_number"  binding:"max=32"`
	Password    string `json:"user_password" binding:"required,min=1,max=72"`
}

type updateUserRequest struct {
	FirstName   *string `json:"first_name"    binding:"omitempty,max=100"`
	LastName    *string `json:"last_name"     binding:"omitempty,max=100"`
	Email       *string `json:"email_address" binding:"omitempty,email,max=254"`
	PhoneNumber *string `json:"phone_number"  binding:"omitempty,max=32"`
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), usecase.CreateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			respondError(c, http.StatusConflict, msgEmailTaken)
		case errors.Is(err, domain.ErrMalformedRequest):
			respondError(c, http.StatusBadRequest, msgBodyMissing)
		default:
			h.logger.ErrorContext(c.Request.Context(), "create user", "error", err)
			respondError(c, http.StatusInternalServerError, msgInsertFailed)
		}
		return
	}

	respondData(c, http.StatusOK, user)
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list users", "error", err)
		respondError(c, http.StatusInternalServerError, msgFetchFailed)
		return
	}
	respondData(c, http.StatusOK, users)
}

// GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, msgNotFound)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get user", "user_id", id, "error", err)
		respondError(c, http.StatusInternalServerError, msgFetchFailed)
		return
	}
	respondData(c, http.StatusOK, user)
}

// PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id := c.Param("id")
	_, err := h.users.UpdateUser(c.Request.Context(), usecase.UpdateUserInput{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, msgNotFound)
		case errors.Is(err, domain.ErrEmailTaken):
			respondError(c, http.StatusConflict, msgEmailTaken)
		default:
			h.logger.ErrorContext(c.Request.Context(), "update user", "user_id", id, "error", err)
			respondError(c, http.StatusInternalServerError, msgUpdateFailed)
		}
		return
	}
	respondMessage(c, http.StatusOK, msgUserUpdated)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, msgNotFound)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete user", "user_id", id, "error", err)
		respondError(c, http.StatusInternalServerError, msgDeleteFailed)
		return
	}
	respondMessage(c, http.StatusOK, msgUserDeleted)
}
