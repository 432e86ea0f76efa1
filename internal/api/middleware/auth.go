package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which Auth stores the resolved
// *domain.User.
const PrincipalKey = "principal"

// Auth resolves the bearer token to a principal and injects it into the
// request context. A bad signature, an expired token, a missing subject claim
// and a subject that no longer exists all yield the same 401, so callers
// cannot probe which accounts exist.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			username, ok := claims["sub"].(string)
			if !ok || username == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.FindByUsername(c.Request().Context(), username)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				// A store failure is not an authentication verdict.
				return err
			}

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}
