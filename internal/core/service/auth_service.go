package service

import (
	"context"
	"errors"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
	"github.com/bumdes-sale/backend/pkg/password"
	"github.com/bumdes-sale/backend/pkg/token"
)

// AuthService implements registration and login on top of the user
// repository and the token manager.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Manager
}

func NewAuthService(users ports.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new active account. Username and email must both be
// unused; the role defaults to "user" when empty.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Role == "" {
		in.Role = domain.RoleUser
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Role:         in.Role,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.users.Create(ctx, user)
}

// Login verifies credentials and issues a bearer token. Unknown usernames
// and wrong passwords are indistinguishable to the caller. Inactive
// accounts are rejected here; the auth gate itself does not re-check
// is_active on later requests.
func (s *AuthService) Login(ctx context.Context, username, pass string) (string, *domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !password.Verify(pass, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, domain.ErrUserInactive
	}

	tkn, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}
	return tkn, user, nil
}
