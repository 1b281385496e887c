package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/bookline/bookline/internal/domain/errors"
	"github.com/bookline/bookline/internal/domain/model"
	"github.com/bookline/bookline/internal/domain/repository"
	pkgAuth "github.com/bookline/bookline/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user and returns it along with a fresh auth token.
func (u *AuthUseCase) Register(ctx context.Context, email, password string, isEmployee bool) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, hash, isEmployee)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.Email)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.Email)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the email claim from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrTokenMalformed
	}
	return u.tokens.ParseToken(token)
}

// GetByEmail fetches user by email.
func (u *AuthUseCase) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.users.GetByEmail(ctx, email)
}

// ListUsers returns all registered users.
func (u *AuthUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// ChangeEmail moves the account identified by current email to a new one.
func (u *AuthUseCase) ChangeEmail(ctx context.Context, currentEmail, newEmail string) (*model.User, error) {
	newEmail = strings.TrimSpace(newEmail)
	if newEmail == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, currentEmail)
	if err != nil {
		return nil, err
	}

	return u.users.UpdateEmail(ctx, usr.ID, newEmail)
}

// ChangePassword replaces the stored hash after re-verifying the old password.
func (u *AuthUseCase) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if newPassword == "" {
		return domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := u.hasher.Compare(usr.PasswordHash, oldPassword); err != nil {
		return domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return u.users.UpdatePasswordHash(ctx, usr.ID, hash)
}

// Delete removes the account after re-verifying the password. Owned bookings
// are removed by the store's referential policy.
func (u *AuthUseCase) Delete(ctx context.Context, email, password string) error {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return domainErrors.ErrInvalidCredentials
	}

	return u.users.Delete(ctx, usr.ID)
}
