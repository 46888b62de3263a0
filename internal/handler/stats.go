package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/middleware"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/service"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetStats handles GET /api/stats — aggregate counters for the dashboard.
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.svc.GetStats(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch statistics")
	}
	return c.JSON(stats)
}
