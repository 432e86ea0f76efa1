package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/somnia/sleep-tracker-api/internal/api/metrics"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// GoalHandler handles sleep goal endpoints.
type GoalHandler struct {
	service ports.GoalService
}

func NewGoalHandler(service ports.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

// Create sets a new sleep goal.
//
// @Summary      Create a sleep goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGoalRequest  true  "Goal targets"
// @Success      201   {object}  goalResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/goals [post]
func (h *GoalHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	goal, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateGoalInput{
		TargetDuration: *req.TargetDuration,
		TargetQuality:  req.TargetQuality,
		Description:    req.Description,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("goal", "create").Inc()
	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// List returns all of the caller's goals.
//
// @Summary      List sleep goals
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   goalResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	goals, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	out := make([]goalResponse, len(goals))
	for i := range goals {
		out[i] = toGoalResponse(&goals[i])
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one of the caller's goals.
//
// @Summary      Get a sleep goal
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Goal identifier"
// @Success      200  {object}  goalResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/goals/{id} [get]
func (h *GoalHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	goal, err := h.service.Get(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// Update applies a partial update to a goal.
//
// @Summary      Update a sleep goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Goal identifier"
// @Param        body  body      updateGoalRequest  true  "Fields to change"
// @Success      200   {object}  goalResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/goals/{id} [put]
func (h *GoalHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	goal, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), ports.UpdateGoalInput{
		TargetDuration: req.TargetDuration,
		TargetQuality:  req.TargetQuality,
		Description:    req.Description,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("goal", "update").Inc()
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// Delete removes a goal.
//
// @Summary      Delete a sleep goal
// @Tags         goals
// @Security     BearerAuth
// @Param        id  path  string  true  "Goal identifier"
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/goals/{id} [delete]
func (h *GoalHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("goal", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
