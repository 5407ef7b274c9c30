package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nirmalvora/padosee-server/internal/domain"
	"github.com/nirmalvora/padosee-server/internal/email"
	"github.com/nirmalvora/padosee-server/internal/metrics"
	"github.com/nirmalvora/padosee-server/internal/repository"
)

// PasswordHasher is satisfied by *auth.BcryptHasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns (false, nil) on mismatch; errors only for unusable digests.
	Verify(plaintext, digest string) (bool, error)
}

// TokenIssuer is satisfied by *auth.TokenIssuer.
type TokenIssuer interface {
	Issue(user domain.SanitizedUser) (string, error)
}

type CredentialUsecase struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	email  email.Sender
	logger *slog.Logger
}

func NewCredentialUsecase(
	users repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	emailSender email.Sender,
	logger *slog.Logger,
) *CredentialUsecase {
	return &CredentialUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		email:  emailSender,
		logger: logger.With("component", "credential_usecase"),
	}
}

type LoginResult struct {
	User  domain.SanitizedUser
	Token string
}

// Login looks the account up by email, verifies the password and issues a
// session token. Unknown email and wrong password both return
// domain.ErrInvalidCredentials.
func (u *CredentialUsecase) Login(ctx context.Context, emailAddr, password string) (*LoginResult, error) {
	result, err := u.login(ctx, emailAddr, password)
	metrics.LoginAttemptsTotal.WithLabelValues(outcome(err)).Inc()
	return result, err
}

func (u *CredentialUsecase) login(ctx context.Context, emailAddr, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: find user: %v", domain.ErrStore, err)
	}

	ok, err := u.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVerificationFailed, err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	sanitized := user.Sanitize()
	token, err := u.tokens.Issue(sanitized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSigning, err)
	}

	return &LoginResult{User: sanitized, Token: token}, nil
}

type RotatePasswordInput struct {
	UserID          string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// RotatePassword replaces the stored digest for UserID after proving
// knowledge of the current password for Email. The new password is not
// hashed, and nothing is written, unless that proof succeeds.
//
// UserID and Email are taken as given: the account verified is the one
// owning Email, the row updated is UserID.
func (u *CredentialUsecase) RotatePassword(ctx context.Context, input RotatePasswordInput) error {
	err := u.rotatePassword(ctx, input)
	metrics.PasswordRotationsTotal.WithLabelValues(outcome(err)).Inc()
	return err
}

func (u *CredentialUsecase) rotatePassword(ctx context.Context, input RotatePasswordInput) error {
	if input.Email == "" || input.CurrentPassword == "" || input.NewPassword == "" {
		return domain.ErrMalformedRequest
	}
	if len(input.NewPassword) > domain.MaxPasswordBytes {
		return domain.ErrMalformedRequest
	}
	if _, err := uuid.Parse(input.UserID); err != nil {
		return domain.ErrMalformedRequest
	}

	user, err := u.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUnknownAccount
		}
		return fmt.Errorf("%w: find user: %v", domain.ErrStore, err)
	}

	ok, err := u.hasher.Verify(input.CurrentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrVerificationFailed, err)
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}

	digest, err := u.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrHashingFailed, err)
	}

	if err := u.users.UpdatePassword(ctx, input.UserID, digest); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUnknownAccount
		}
		return fmt.Errorf("%w: %v", domain.ErrUpdateFailed, err)
	}

	u.notifyPasswordChanged(ctx, input.UserID, user)
	return nil
}

// notifyPasswordChanged tells the owner of the updated row, which is not
// necessarily the account that proved the current password.
func (u *CredentialUsecase) notifyPasswordChanged(ctx context.Context, changedID string, verified *domain.User) {
	if u.email == nil {
		return
	}

	owner := verified
	if verified.ID != changedID {
		found, err := u.users.FindByID(ctx, changedID)
		if err != nil {
			u.logger.WarnContext(ctx, "password changed notice: lookup owner", "user_id", changedID, "error", err)
			return
		}
		owner = found
	}

	subject, body := email.PasswordChanged(owner.FirstName)
	if err := u.email.Send(ctx, owner.Email, subject, body); err != nil {
		u.logger.WarnContext(ctx, "password changed notice", "error", err)
	}
}

// outcome is the metrics label for a credential flow result.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrMalformedRequest):
		return "malformed"
	case errors.Is(err, domain.ErrUnknownAccount):
		return "unknown_account"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrStore):
		return "store_error"
	case errors.Is(err, domain.ErrVerificationFailed):
		return "verification_error"
	case errors.Is(err, domain.ErrHashingFailed):
		return "hashing_error"
	case errors.Is(err, domain.ErrUpdateFailed):
		return "update_error"
	case errors.Is(err, domain.ErrSigning):
		return "signing_error"
	default:
		return "error"
	}
}
