package ports

import (
	"context"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Phone    string
	Role     domain.Role
	Password string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a bearer token together with
	// the user record. Inactive accounts are rejected here, not at the
	// auth gate.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
