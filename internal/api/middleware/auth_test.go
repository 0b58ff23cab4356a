package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return repo
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.Username] = user
	return user, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func authContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	alice := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleAdmin, IsActive: true}
	repo := newStubUserRepo(alice)

	signed, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := authContext(t, "Bearer "+signed)

	called := false
	handler := Auth(tokens, repo)(func(c echo.Context) error {
		called = true
		user := CurrentUser(c)
		if user == nil || user.Username != "alice" {
			t.Fatalf("expected alice in context, got %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	c, rec := authContext(t, "")

	handler := Auth(tokens, newStubUserRepo())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if code := httpCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("expected WWW-Authenticate challenge header")
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	c, _ := authContext(t, "Token abc")

	handler := Auth(tokens, newStubUserRepo())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpCode(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	c, _ := authContext(t, "Bearer not-a-token")

	handler := Auth(tokens, newStubUserRepo())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpCode(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_UnknownUser(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	signed, _ := tokens.Issue("ghost")
	c, _ := authContext(t, "Bearer "+signed)

	// Token is valid but the account no longer exists.
	handler := Auth(tokens, newStubUserRepo())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpCode(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_InactiveUserStillAuthenticates(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	bob := &domain.User{ID: "u2", Username: "bob", Role: domain.RoleOperator, IsActive: false}
	repo := newStubUserRepo(bob)

	signed, _ := tokens.Issue("bob")
	c, _ := authContext(t, "Bearer "+signed)

	// Deactivation only blocks new logins; existing tokens keep working
	// until they expire.
	called := false
	handler := Auth(tokens, repo)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("expected inactive user to pass the auth gate")
	}
}
