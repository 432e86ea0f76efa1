package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/somnia/sleep-tracker-api/internal/api/metrics"
	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

// SleepHandler handles HTTP requests for sleep records and their notes.
type SleepHandler struct {
	service ports.SleepService
}

func NewSleepHandler(service ports.SleepService) *SleepHandler {
	return &SleepHandler{service: service}
}

// Create logs a new sleep session.
//
// @Summary      Create a sleep record
// @Tags         sleep
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSleepRecordRequest  true  "Sleep session"
// @Success      201   {object}  sleepRecordResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/sleep [post]
func (h *SleepHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createSleepRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	record, err := h.service.Create(c.Request().Context(), user.ID, toSleepCreateInput(req))
	if err != nil {
		return err
	}

	metrics.SleepRecordsCreatedTotal.Inc()
	metrics.EntityWritesTotal.WithLabelValues("sleep_record", "create").Inc()
	return c.JSON(http.StatusCreated, toSleepResponse(record))
}

// List returns the caller's records, newest first.
//
// @Summary      List sleep records
// @Tags         sleep
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   sleepRecordResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/sleep [get]
func (h *SleepHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSleepListResponse(records))
}

// Get returns one of the caller's records.
//
// @Summary      Get a sleep record
// @Tags         sleep
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Record identifier"
// @Success      200  {object}  sleepRecordResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sleep/{id} [get]
func (h *SleepHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	record, err := h.service.Get(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSleepResponse(record))
}

// Update applies a partial update and revalidates the merged record.
//
// @Summary      Update a sleep record
// @Tags         sleep
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Record identifier"
// @Param        body  body      updateSleepRecordRequest  true  "Fields to change"
// @Success      200   {object}  sleepRecordResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/sleep/{id} [put]
func (h *SleepHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateSleepRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	record, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), toSleepUpdateInput(req))
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("sleep_record", "update").Inc()
	return c.JSON(http.StatusOK, toSleepResponse(record))
}

// Delete removes a record and its notes.
//
// @Summary      Delete a sleep record
// @Tags         sleep
// @Security     BearerAuth
// @Param        id  path  string  true  "Record identifier"
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sleep/{id} [delete]
func (h *SleepHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("sleep_record", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// AddNote attaches a note to one of the caller's records.
//
// @Summary      Add a note to a sleep record
// @Tags         sleep
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Record identifier"
// @Param        body  body      createNoteRequest  true  "Note content"
// @Success      201   {object}  noteResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/sleep/{id}/note [post]
func (h *SleepHandler) AddNote(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	note, err := h.service.AddNote(c.Request().Context(), user.ID, c.Param("id"), req.Content)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("note", "create").Inc()
	return c.JSON(http.StatusCreated, toNoteResponse(note))
}
