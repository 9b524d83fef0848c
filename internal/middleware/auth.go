package middleware

import (
	"net/http"
	"strings"

	"github.com/adnanhq/social-media-api/internal/auth"
	"github.com/adnanhq/social-media-api/internal/models"
	"github.com/adnanhq/social-media-api/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserContextKey is the echo context key the resolved user is stored under.
const UserContextKey = "user"

// RequireAuth validates the bearer token and resolves the user against the
// store. Missing tokens, verification failures and vanished (or soft-deleted)
// users all reject with 401.
func RequireAuth(users repositories.UserRepository, tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveUser(c, users, tokens)
			if err != nil {
				return err
			}
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// OptionalAuth attaches the resolved user when a valid token is presented and
// silently continues otherwise. Handlers must treat the identity as possibly
// absent.
func OptionalAuth(users repositories.UserRepository, tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, err := resolveUser(c, users, tokens); err == nil {
				c.Set(UserContextKey, user)
			}
			return next(c)
		}
	}
}

func resolveUser(c echo.Context, users repositories.UserRepository, tokens *auth.TokenService) (*models.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
	}

	claims, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	user, err := users.GetByID(claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}
	return user, nil
}
