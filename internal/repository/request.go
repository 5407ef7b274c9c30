package repository

import (
	"context"

	"github.com/nirmalvora/padosee-server/internal/domain"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	List(ctx context.Context) ([]*domain.Request, error)
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	ListBySender(ctx context.Context, senderID string) ([]*domain.Request, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]*domain.Request, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.Request, error)
	Delete(ctx context.Context, id string) error
}
