package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/somnia/sleep-tracker-api/internal/api/middleware"
	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

// currentUser extracts the principal resolved by the Auth middleware. A
// missing principal means the middleware did not run on this route; reject
// with 401 rather than proceeding unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.PrincipalKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
