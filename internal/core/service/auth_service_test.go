package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
	"github.com/bumdes-sale/backend/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "user-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func registerInput(username, email string) ports.RegisterInput {
	return ports.RegisterInput{
		Username: username,
		Email:    email,
		FullName: "Test User",
		Phone:    "+62 812-0000-0000",
		Password: "pass123",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret", time.Hour))

	user, err := svc.Register(context.Background(), registerInput("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new account to be active")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret", time.Hour))

	in := registerInput("bob", "bob@example.com")
	in.Role = "superuser"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret", time.Hour))

	if _, err := svc.Register(context.Background(), registerInput("bob", "bob@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), registerInput("bob", "other@example.com"))
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret", time.Hour))

	if _, err := svc.Register(context.Background(), registerInput("carol", "carol@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), registerInput("carol2", "carol@example.com"))
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := token.NewManager("secret", time.Hour)
	svc := NewAuthService(repo, tokens)

	if _, err := svc.Register(context.Background(), registerInput("carol", "carol@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tkn, user, err := svc.Login(context.Background(), "carol", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	subject, err := tokens.Verify(tkn)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != "carol" {
		t.Fatalf("expected subject carol, got %s", subject)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret", time.Hour))

	_, _ = svc.Register(context.Background(), registerInput("dave", "dave@example.com"))
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret", time.Hour))

	// Unknown usernames read the same as wrong passwords.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewManager("secret", time.Hour))

	if _, err := svc.Register(context.Background(), registerInput("eve", "eve@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	repo.users["eve"].IsActive = false

	if _, _, err := svc.Login(context.Background(), "eve", "pass123"); !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}
