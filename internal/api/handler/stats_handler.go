package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aijobhub/dashboard/internal/core/ports"
)

type StatsHandler struct {
	statsService ports.StatsService
	jobService   ports.JobService
}

func NewStatsHandler(statsService ports.StatsService, jobService ports.JobService) *StatsHandler {
	return &StatsHandler{statsService: statsService, jobService: jobService}
}

// Trends returns the normalized statistics of the trends screen.
//
// @Summary      Job trends
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.Trends
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /trends [get]
func (h *StatsHandler) Trends(c echo.Context) error {
	trends, err := h.statsService.Trends(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trends)
}

// Breakdown aggregates the job collection locally.
//
// @Summary      Collection breakdown
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.Breakdown
// @Router       /stats [get]
func (h *StatsHandler) Breakdown(c echo.Context) error {
	jobs, err := h.jobService.Collection(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.statsService.Breakdown(jobs))
}
