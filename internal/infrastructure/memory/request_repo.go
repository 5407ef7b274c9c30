package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/nirmalvora/padosee-server/internal/domain"
)

type RequestRepository struct {
	s *Store
}

func (r *RequestRepository) Create(_ context.Context, req *domain.Request) (*domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sender, receiver := canonicalID(req.SenderID), canonicalID(req.ReceiverID)
	if _, ok := r.s.users[sender]; !ok {
		return nil, domain.ErrUnknownParticipant
	}
	if _, ok := r.s.users[receiver]; !ok {
		return nil, domain.ErrUnknownParticipant
	}
	for _, existing := range r.s.requests {
		if existing.SenderID == sender && existing.ReceiverID == receiver {
			return nil, domain.ErrDuplicateRequest
		}
	}

	now := r.s.now()
	stored := &domain.Request{
		ID:         uuid.NewString(),
		SenderID:   sender,
		ReceiverID: receiver,
		Status:     req.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.s.requests[stored.ID] = stored

	out := *stored
	return &out, nil
}

func (r *RequestRepository) List(_ context.Context) ([]*domain.Request, error) {
	return r.filter(func(*domain.Request) bool { return true }), nil
}

func (r *RequestRepository) GetByID(_ context.Context, id string) (*domain.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.requests[canonicalID(id)]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	out := *req
	return &out, nil
}

func (r *RequestRepository) ListBySender(_ context.Context, senderID string) ([]*domain.Request, error) {
	id := canonicalID(senderID)
	return r.filter(func(req *domain.Request) bool { return id != "" && req.SenderID == id }), nil
}

func (r *RequestRepository) ListByReceiver(_ context.Context, receiverID string) ([]*domain.Request, error) {
	id := canonicalID(receiverID)
	return r.filter(func(req *domain.Request) bool { return id != "" && req.ReceiverID == id }), nil
}

func (r *RequestRepository) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) (*domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[canonicalID(id)]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	req.Status = status
	req.UpdatedAt = r.s.now()

	out := *req
	return &out, nil
}

func (r *RequestRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id = canonicalID(id)
	if _, ok := r.s.requests[id]; !ok {
		return domain.ErrRequestNotFound
	}
	delete(r.s.requests, id)
	return nil
}

// filter returns copies newest first, matching the postgres ordering.
func (r *RequestRepository) filter(keep func(*domain.Request) bool) []*domain.Request {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Request, 0)
	for _, req := range r.s.requests {
		if keep(req) {
			c := *req
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
