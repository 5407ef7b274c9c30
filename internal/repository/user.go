package repository

import (
	"context"

	"github.com/nirmalvora/padosee-server/internal/domain"
)

// UserRepository is the credential store plus the profile CRUD around it.
// Implementations must be safe for concurrent use.
type UserRepository interface {
	// Create returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// FindByEmail returns at most one record; domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update writes profile fields only. The password digest is untouched.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)

	// UpdatePassword replaces the stored digest in a single statement.
	// Re-applying the same digest succeeds. Returns domain.ErrUserNotFound
	// when no row matched id.
	UpdatePassword(ctx context.Context, id, digest string) error

	Delete(ctx context.Context, id string) error
}
