package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/somnia/sleep-tracker-api/internal/api/metrics"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// ReminderHandler handles bedtime reminder endpoints.
type ReminderHandler struct {
	service ports.ReminderService
}

func NewReminderHandler(service ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// Create registers a new bedtime reminder.
//
// @Summary      Create a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReminderRequest  true  "Reminder time and message"
// @Success      201   {object}  reminderResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/reminders [post]
func (h *ReminderHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	reminder, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateReminderInput{
		ReminderTime: req.ReminderTime,
		Message:      req.Message,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("reminder", "create").Inc()
	return c.JSON(http.StatusCreated, toReminderResponse(reminder))
}

// Update applies a partial update to a reminder.
//
// @Summary      Update a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Reminder identifier"
// @Param        body  body      updateReminderRequest  true  "Fields to change"
// @Success      200   {object}  reminderResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/reminders/{id} [put]
func (h *ReminderHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	reminder, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), ports.UpdateReminderInput{
		ReminderTime: req.ReminderTime,
		Message:      req.Message,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("reminder", "update").Inc()
	return c.JSON(http.StatusOK, toReminderResponse(reminder))
}

// Delete deactivates a reminder. The record stays in storage, so deleting
// the same reminder twice succeeds both times.
//
// @Summary      Deactivate a reminder
// @Tags         reminders
// @Security     BearerAuth
// @Param        id  path  string  true  "Reminder identifier"
// @Success      204  "deactivated"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/reminders/{id} [delete]
func (h *ReminderHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("reminder", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
