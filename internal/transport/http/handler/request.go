package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nirmalvora/padosee-server/internal/domain"
	"github.com/nirmalvora/padosee-server/internal/usecase"
)

type requestUsecaser interface {
	CreateRequest(ctx context.Context, input usecase.CreateRequestInput) (*domain.Request, error)
	ListRequests(ctx context.Context) ([]*domain.Request, error)
	GetRequest(ctx context.Context, id string) (*domain.Request, error)
	ListBySender(ctx context.Context, senderID string) ([]*domain.Request, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]*domain.Request, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.Request, error)
	DeleteRequest(ctx context.Context, id string) error
}

type RequestHandler struct {
	requests requestUsecaser
	logger   *slog.Logger
}

func NewRequestHandler(requests requestUsecaser, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{requests: requests, logger: logger.With("component", "request_handler")}
}

type createRequestRequest struct {
	SenderID   string `json:"sender_id"   binding:"required"`
	ReceiverID string `json:"receiver_id" binding:"required"`
}

type updateRequestRequest struct {
	Status domain.RequestStatus `json:"status" binding:"required,oneof=pending accepted declined"`
}

type requestResponse struct {
	ID         string               `json:"id"`
	SenderID   string               `json:"sender_id"`
	ReceiverID string               `json:"receiver_id"`
	Status     domain.RequestStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func toRequestResponse(r *domain.Request) requestResponse {
	return requestResponse{
		ID:         r.ID,
		SenderID:   r.SenderID,
		ReceiverID: r.ReceiverID,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toRequestResponses(reqs []*domain.Request) []requestResponse {
	out := make([]requestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toRequestResponse(r))
	}
	return out
}

// POST /requests
func (h *RequestHandler) Create(c *gin.Context) {
	var req createRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.requests.CreateRequest(c.Request.Context(), usecase.CreateRequestInput{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfRequest):
			respondError(c, http.StatusBadRequest, msgSelfRequest)
		case errors.Is(err, domain.ErrUnknownParticipant):
			respondError(c, http.StatusBadRequest, msgUnknownParticipant)
		case errors.Is(err, domain.ErrDuplicateRequest):
			respondError(c, http.StatusConflict, msgDuplicateRequest)
		default:
			h.logger.ErrorContext(c.Request.Context(), "create request", "error", err)
			respondError(c, http.StatusInternalServerError, msgInsertFailed)
		}
		return
	}
	respondData(c, http.StatusOK, toRequestResponse(created))
}

// GET /requests
func (h *RequestHandler) List(c *gin.Context) {
	reqs, err := h.requests.ListRequests(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list requests", "error", err)
		respondError(c, http.StatusInternalServerError, msgFetchRecordsFailed)
		return
	}
	respondData(c, http.StatusOK, toRequestResponses(reqs))
}

// GET /requests/:id
func (h *RequestHandler) GetByID(c *gin.Context) {
	req, err := h.requests.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fetchFailure(c, "get request", err)
		return
	}
	respondData(c, http.StatusOK, toRequestResponse(req))
}

// GET /requests/sender/:id
func (h *RequestHandler) ListBySender(c *gin.Context) {
	reqs, err := h.requests.ListBySender(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fetchFailure(c, "list requests by sender", err)
		return
	}
	respondData(c, http.StatusOK, toRequestResponses(reqs))
}

// GET /requests/receiver/:id
func (h *RequestHandler) ListByReceiver(c *gin.Context) {
	reqs, err := h.requests.ListByReceiver(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fetchFailure(c, "list requests by receiver", err)
		return
	}
	respondData(c, http.StatusOK, toRequestResponses(reqs))
}

// PATCH /requests/:id
func (h *RequestHandler) Update(c *gin.Context) {
	var req updateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.requests.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			respondError(c, http.StatusNotFound, msgNotFound)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update request", "request_id_param", c.Param("id"), "error", err)
		respondError(c, http.StatusInternalServerError, msgUpdateFailed)
		return
	}
	respondMessage(c, http.StatusOK, msgRequestUpdated)
}

// DELETE /requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	if err := h.requests.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			respondError(c, http.StatusNotFound, msgNotFound)
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete request", "request_id_param", c.Param("id"), "error", err)
		respondError(c, http.StatusInternalServerError, msgDeleteFailed)
		return
	}
	respondMessage(c, http.StatusOK, msgRequestDeleted)
}

func (h *RequestHandler) fetchFailure(c *gin.Context, op string, err error) {
	if errors.Is(err, domain.ErrRequestNotFound) {
		respondError(c, http.StatusNotFound, msgNotFound)
		return
	}
	h.logger.ErrorContext(c.Request.Context(), op, "error", err)
	respondError(c, http.StatusInternalServerError, msgFetchRecordsFailed)
}
