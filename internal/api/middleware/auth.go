package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
	"github.com/bumdes-sale/backend/pkg/token"
)

const userContextKey = "auth.user"

// Auth extracts the bearer token, verifies it and loads the matching user
// record into the request context. The lookup is performed on every
// request so role changes take effect immediately; nothing is cached.
//
// Auth deliberately does not check is_active: only login rejects inactive
// accounts. A previously issued token keeps authenticating until expiry.
func Auth(tokens *token.Manager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, "missing credentials")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c, "invalid authentication credentials")
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				return unauthorized(c, "invalid authentication credentials")
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return unauthorized(c, "user not found")
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user loaded by Auth, or nil outside an
// authenticated request.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

// unauthorized responds 401 with the bearer challenge header required for
// authentication failures.
func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
