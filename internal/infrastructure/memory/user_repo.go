package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/nirmalvora/padosee-server/internal/domain"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTakenLocked(user.Email, "") {
		return nil, domain.ErrEmailTaken
	}

	now := r.s.now()
	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.s.users[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[canonicalID(id)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[canonicalID(user.ID)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if r.emailTakenLocked(user.Email, u.ID) {
		return nil, domain.ErrEmailTaken
	}

	u.FirstName = user.FirstName
	u.LastName = user.LastName
	u.Email = user.Email
	u.PhoneNumber = user.PhoneNumber
	u.UpdatedAt = r.s.now()

	c := *u
	return &c, nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, id, digest string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[canonicalID(id)]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = digest
	u.UpdatedAt = r.s.now()
	return nil
}

// Delete removes the user and every request they sent or received.
func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id = canonicalID(id)
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.s.users, id)
	for rid, req := range r.s.requests {
		if req.SenderID == id || req.ReceiverID == id {
			delete(r.s.requests, rid)
		}
	}
	return nil
}

func (r *UserRepository) emailTakenLocked(email, exceptID string) bool {
	for _, u := range r.s.users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
