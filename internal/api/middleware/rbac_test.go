package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

func rbacContext(role domain.Role) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(userContextKey, &domain.User{ID: "u1", Username: "someone", Role: role})
	}
	return c
}

func TestRequireRoles_Allowed(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleOperator} {
		c := rbacContext(role)

		called := false
		handler := RequireRoles(domain.RoleAdmin, domain.RoleOperator)(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("role %s: handler error: %v", role, err)
		}
		if !called {
			t.Fatalf("role %s: next not called", role)
		}
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	c := rbacContext(domain.RoleUser)

	handler := RequireRoles(domain.RoleAdmin, domain.RoleOperator)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", he.Code)
	}
	if he.Message != "Not enough permissions" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestRequireRoles_MissingUser(t *testing.T) {
	c := rbacContext("")

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}
