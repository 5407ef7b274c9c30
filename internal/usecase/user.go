package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nirmalvora/padosee-server/internal/domain"
	"github.com/nirmalvora/padosee-server/internal/repository"
)

type UserUsecase struct {
	repo   repository.UserRepository
	hasher PasswordHasher
}

func NewUserUsecase(repo repository.UserRepository, hasher PasswordHasher) *UserUsecase {
	return &UserUsecase{repo: repo, hasher: hasher}
}

type CreateUserInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

// CreateUser stores a new account with a freshly computed digest.
func (u *UserUsecase) CreateUser(ctx context.Context, input CreateUserInput) (domain.SanitizedUser, error) {
	if input.Email == "" || input.Password == "" || len(input.Password) > domain.MaxPasswordBytes {
		return domain.SanitizedUser{}, domain.ErrMalformedRequest
	}

	digest, err := u.hasher.Hash(input.Password)
	if err != nil {
		return domain.SanitizedUser{}, fmt.Errorf("%w: %v", domain.ErrHashingFailed, err)
	}

	created, err := u.repo.Create(ctx, &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: digest,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.SanitizedUser{}, err
		}
		return domain.SanitizedUser{}, fmt.Errorf("create user: %w", err)
	}
	return created.Sanitize(), nil
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]domain.SanitizedUser, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]domain.SanitizedUser, 0, len(users))
	for _, user := range users {
		out = append(out, user.Sanitize())
	}
	return out, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, id string) (domain.SanitizedUser, error) {
	if !validID(id) {
		return domain.SanitizedUser{}, domain.ErrUserNotFound
	}
	user, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return domain.SanitizedUser{}, fmt.Errorf("get user: %w", err)
	}
	return user.Sanitize(), nil
}

type UpdateUserInput struct {
	ID          string
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
}

// UpdateUser applies the non-nil profile fields. Passwords change only
// through CredentialUsecase.RotatePassword.
func (u *UserUsecase) UpdateUser(ctx context.Context, input UpdateUserInput) (domain.SanitizedUser, error) {
	if !validID(input.ID) {
		return domain.SanitizedUser{}, domain.ErrUserNotFound
	}

	user, err := u.repo.FindByID(ctx, input.ID)
	if err != nil {
		return domain.SanitizedUser{}, fmt.Errorf("get user: %w", err)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}

	updated, err := u.repo.Update(ctx, user)
	if err != nil {
		return domain.SanitizedUser{}, fmt.Errorf("update user: %w", err)
	}
	return updated.Sanitize(), nil
}

func (u *UserUsecase) DeleteUser(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrUserNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
