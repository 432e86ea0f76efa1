package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/somnia/sleep-tracker-api/internal/api/metrics"
	"github.com/somnia/sleep-tracker-api/internal/core/domain"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// UserHandler handles the authenticated profile endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile returns the authenticated user's own profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile applies a partial update to the profile.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.userService.UpdateProfile(c.Request().Context(), user, ports.UpdateProfileInput{
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		// A taken email on a profile update is a 400, not the 409 used at
		// registration; preserved from the original API contract.
		if errors.Is(err, domain.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusBadRequest, "email already in use")
		}
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete removes the account and everything it owns.
//
// @Summary      Delete own account
// @Tags         users
// @Security     BearerAuth
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Router       /api/users/profile [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteAccount(c.Request().Context(), user); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
