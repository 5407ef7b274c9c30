package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nirmalvora/padosee-server/internal/domain"
	"github.com/nirmalvora/padosee-server/internal/usecase"
)

const (
	senderID   = "11111111-1111-4111-8111-111111111111"
	receiverID = "22222222-2222-4222-8222-222222222222"
	requestID  = "33333333-3333-4333-8333-333333333333"
)

func TestCreateRequest_StartsPending(t *testing.T) {
	var got *domain.Request
	repo := &fakeRequestRepo{
		create: func(_ context.Context, req *domain.Request) (*domain.Request, error) {
			got = req
			c := *req
			c.ID = requestID
			return &c, nil
		},
	}

	created, err := usecase.NewRequestUsecase(repo).CreateRequest(context.Background(), usecase.CreateRequestInput{
		SenderID: senderID, ReceiverID: receiverID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.RequestPending {
		t.Errorf("status = %q, want pending", got.Status)
	}
	if created.ID != requestID {
		t.Errorf("id = %q", created.ID)
	}
}

func TestCreateRequest_SelfRequest(t *testing.T) {
	_, err := usecase.NewRequestUsecase(&fakeRequestRepo{}).CreateRequest(context.Background(), usecase.CreateRequestInput{
		SenderID: senderID, ReceiverID: senderID,
	})
	if !errors.Is(err, domain.ErrSelfRequest) {
		t.Fatalf("want ErrSelfRequest, got %v", err)
	}
}

func TestCreateRequest_InvalidParticipant(t *testing.T) {
	_, err := usecase.NewRequestUsecase(&fakeRequestRepo{}).CreateRequest(context.Background(), usecase.CreateRequestInput{
		SenderID: "1", ReceiverID: receiverID,
	})
	if !errors.Is(err, domain.ErrUnknownParticipant) {
		t.Fatalf("want ErrUnknownParticipant, got %v", err)
	}
}

func TestCreateRequest_DuplicatePropagates(t *testing.T) {
	repo := &fakeRequestRepo{
		create: func(_ context.Context, _ *domain.Request) (*domain.Request, error) {
			return nil, domain.ErrDuplicateRequest
		},
	}

	_, err := usecase.NewRequestUsecase(repo).CreateRequest(context.Background(), usecase.CreateRequestInput{
		SenderID: senderID, ReceiverID: receiverID,
	})
	if !errors.Is(err, domain.ErrDuplicateRequest) {
		t.Fatalf("want ErrDuplicateRequest, got %v", err)
	}
}

func TestListBySender_EmptyIsNotFound(t *testing.T) {
	repo := &fakeRequestRepo{
		listBySender: func(_ context.Context, _ string) ([]*domain.Request, error) { return nil, nil },
	}

	_, err := usecase.NewRequestUsecase(repo).ListBySender(context.Background(), senderID)
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("want ErrRequestNotFound, got %v", err)
	}
}

func TestListByReceiver_ReturnsRows(t *testing.T) {
	repo := &fakeRequestRepo{
		listByReceiver: func(_ context.Context, id string) ([]*domain.Request, error) {
			return []*domain.Request{{ID: requestID, SenderID: senderID, ReceiverID: id}}, nil
		},
	}

	reqs, err := usecase.NewRequestUsecase(repo).ListByReceiver(context.Background(), receiverID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reqs) != 1 || reqs[0].ReceiverID != receiverID {
		t.Errorf("reqs = %+v", reqs)
	}
}

func TestGetRequest_RepoErrorWrapped(t *testing.T) {
	dbErr := errors.New("db down")
	repo := &fakeRequestRepo{
		getByID: func(_ context.Context, _ string) (*domain.Request, error) { return nil, dbErr },
	}

	_, err := usecase.NewRequestUsecase(repo).GetRequest(context.Background(), requestID)
	if !errors.Is(err, dbErr) {
		t.Fatalf("want wrapped dbErr, got %v", err)
	}
}

func TestUpdateStatus_InvalidIDIsNotFound(t *testing.T) {
	_, err := usecase.NewRequestUsecase(&fakeRequestRepo{}).UpdateStatus(context.Background(), "x", domain.RequestAccepted)
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("want ErrRequestNotFound, got %v", err)
	}
}

func TestDeleteRequest(t *testing.T) {
	var deleted string
	repo := &fakeRequestRepo{
		delete: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	if err := usecase.NewRequestUsecase(repo).DeleteRequest(context.Background(), requestID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != requestID {
		t.Errorf("deleted %q", deleted)
	}
}
