package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"phorum/internal/auth"
	apperrors "phorum/internal/errors"
	"phorum/internal/model"
	"phorum/internal/repository"
)

// identityKey is the echo context key holding the resolved acting user.
const identityKey = "identity"

// Identity resolves the acting user from the parsed session token left in
// the context by the echo-jwt stage. Resolution fails open: a missing or
// invalid token, a dead session, or a vanished user all leave the request
// anonymous rather than erroring.
func Identity(sessions auth.SessionStoreInterface, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return next(c)
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || claims.ID == "" {
				return next(c)
			}

			ctx := c.Request().Context()

			// The session must still be live server-side.
			userID, err := sessions.GetSession(ctx, claims.ID)
			if err != nil || userID != claims.UserID {
				return next(c)
			}

			// Resolve back to a live user record.
			user, err := users.FindByID(ctx, claims.UserID)
			if err != nil {
				return next(c)
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the resolved acting user, or false when anonymous.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(identityKey).(*model.User)
	return user, ok
}

// RequireAuthenticated rejects anonymous requests with 401.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentUser(c); !ok {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
				return c.JSON(http.StatusUnauthorized, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects identities without the admin role with a hard 403.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok || !user.IsAdmin() {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return c.JSON(http.StatusForbidden, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
