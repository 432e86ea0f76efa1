package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/somnia/sleep-tracker-api/internal/core/ports"
)

type emptyStatisticsResponse struct {
	Message      string `json:"message"`
	TotalRecords int    `json:"total_records"`
}

// AnalyticsHandler serves aggregate statistics and recommendations.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Statistics returns aggregates over the caller's sleep records.
//
// @Summary      Get sleep statistics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Statistics
// @Failure      401  {object}  errorResponse
// @Router       /api/statistics [get]
func (h *AnalyticsHandler) Statistics(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Statistics(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	if stats.TotalRecords == 0 {
		return c.JSON(http.StatusOK, emptyStatisticsResponse{
			Message:      "No sleep records yet",
			TotalRecords: 0,
		})
	}
	return c.JSON(http.StatusOK, stats)
}

// Recommendations returns rule-based advice derived from the caller's averages.
//
// @Summary      Get sleep recommendations
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Recommendations
// @Failure      401  {object}  errorResponse
// @Router       /api/recommendations [get]
func (h *AnalyticsHandler) Recommendations(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	recs, err := h.service.Recommendations(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}
