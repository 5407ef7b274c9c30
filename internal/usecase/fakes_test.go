package usecase_test

import (
	"context"

	"github.com/nirmalvora/padosee-server/internal/domain"
)

// ---- function-field fakes; an unset func panics, so it doubles as "must not be called" ----

type fakeUserRepo struct {
	create         func(ctx context.Context, user *domain.User) (*domain.User, error)
	list           func(ctx context.Context) ([]*domain.User, error)
	findByID       func(ctx context.Context, id string) (*domain.User, error)
	findByEmail    func(ctx context.Context, email string) (*domain.User, error)
	update         func(ctx context.Context, user *domain.User) (*domain.User, error)
	updatePassword func(ctx context.Context, id, digest string) error
	delete         func(ctx context.Context, id string) error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.create(ctx, user)
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.update(ctx, user)
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id, digest string) error {
	return r.updatePassword(ctx, id, digest)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type fakeHasher struct {
	hash   func(plaintext string) (string, error)
	verify func(plaintext, digest string) (bool, error)
	calls  []string
}

func (h *fakeHasher) Hash(plaintext string) (string, error) {
	h.calls = append(h.calls, "hash")
	return h.hash(plaintext)
}

func (h *fakeHasher) Verify(plaintext, digest string) (bool, error) {
	h.calls = append(h.calls, "verify")
	return h.verify(plaintext, digest)
}

type fakeIssuer struct {
	issue func(user domain.SanitizedUser) (string, error)
}

func (i *fakeIssuer) Issue(user domain.SanitizedUser) (string, error) {
	return i.issue(user)
}

type fakeEmailSender struct {
	send func(ctx context.Context, to, subject, body string) error
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	return s.send(ctx, to, subject, body)
}

type fakeRequestRepo struct {
	create         func(ctx context.Context, req *domain.Request) (*domain.Request, error)
	list           func(ctx context.Context) ([]*domain.Request, error)
	getByID        func(ctx context.Context, id string) (*domain.Request, error)
	listBySender   func(ctx context.Context, senderID string) ([]*domain.Request, error)
	listByReceiver func(ctx context.Context, receiverID string) ([]*domain.Request, error)
	updateStatus   func(ctx context.Context, id string, status domain.RequestStatus) (*domain.Request, error)
	delete         func(ctx context.Context, id string) error
}

func (r *fakeRequestRepo) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	return r.create(ctx, req)
}

func (r *fakeRequestRepo) List(ctx context.Context) ([]*domain.Request, error) {
	return r.list(ctx)
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	return r.getByID(ctx, id)
}

func (r *fakeRequestRepo) ListBySender(ctx context.Context, senderID string) ([]*domain.Request, error) {
	return r.listBySender(ctx, senderID)
}

func (r *fakeRequestRepo) ListByReceiver(ctx context.Context, receiverID string) ([]*domain.Request, error) {
	return r.listByReceiver(ctx, receiverID)
}

func (r *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.Request, error) {
	return r.updateStatus(ctx, id, status)
}

func (r *fakeRequestRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
