package usecase

import (
	"context"
	"fmt"

	"github.com/nirmalvora/padosee-server/internal/domain"
	"github.com/nirmalvora/padosee-server/internal/repository"
)

type RequestUsecase struct {
	repo repository.RequestRepository
}

func NewRequestUsecase(repo repository.RequestRepository) *RequestUsecase {
	return &RequestUsecase{repo: repo}
}

type CreateRequestInput struct {
	SenderID   string
	ReceiverID string
}

func (u *RequestUsecase) CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.Request, error) {
	if !validID(input.SenderID) || !validID(input.ReceiverID) {
		return nil, domain.ErrUnknownParticipant
	}
	if input.SenderID == input.ReceiverID {
		return nil, domain.ErrSelfRequest
	}

	created, err := u.repo.Create(ctx, &domain.Request{
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Status:     domain.RequestPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return created, nil
}

func (u *RequestUsecase) ListRequests(ctx context.Context) ([]*domain.Request, error) {
	reqs, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return reqs, nil
}

func (u *RequestUsecase) GetRequest(ctx context.Context, id string) (*domain.Request, error) {
	if !validID(id) {
		return nil, domain.ErrRequestNotFound
	}
	req, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

// ListBySender returns domain.ErrRequestNotFound when the user sent nothing.
func (u *RequestUsecase) ListBySender(ctx context.Context, senderID string) ([]*domain.Request, error) {
	if !validID(senderID) {
		return nil, domain.ErrRequestNotFound
	}
	reqs, err := u.repo.ListBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("list requests by sender: %w", err)
	}
	if len(reqs) == 0 {
		return nil, domain.ErrRequestNotFound
	}
	return reqs, nil
}

// ListByReceiver returns domain.ErrRequestNotFound when the user received nothing.
func (u *RequestUsecase) ListByReceiver(ctx context.Context, receiverID string) ([]*domain.Request, error) {
	if !validID(receiverID) {
		return nil, domain.ErrRequestNotFound
	}
	reqs, err := u.repo.ListByReceiver(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("list requests by receiver: %w", err)
	}
	if len(reqs) == 0 {
		return nil, domain.ErrRequestNotFound
	}
	return reqs, nil
}

func (u *RequestUsecase) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.Request, error) {
	if !validID(id) {
		return nil, domain.ErrRequestNotFound
	}
	req, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	return req, nil
}

func (u *RequestUsecase) DeleteRequest(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrRequestNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}
