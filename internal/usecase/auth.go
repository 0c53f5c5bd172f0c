package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/domain/repository"
	pkgAuth "github.com/sellaro/storefront/internal/pkg/auth"
)

// AuthUseCase encapsulates registration and authentication logic.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   pkgAuth.PasswordHasher
	strategy pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, strategy: strategy}
}

// Register creates a customer account and returns a session token.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user, err := u.users.Create(ctx, email, hash, false)
	if err != nil {
		return nil, "", err
	}

	token, err := u.strategy.IssueToken(pkgAuth.Claims{UserID: user.ID, Admin: user.Admin})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate verifies credentials and returns a session token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.strategy.IssueToken(pkgAuth.Claims{UserID: user.ID, Admin: user.Admin})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ParseToken validates a session token and returns its claims.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Claims, error) {
	return u.strategy.ParseToken(token)
}
