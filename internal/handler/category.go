package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/middleware"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/service"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c fiber.Ctx) error {
	categories, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list categories")
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(categories)
}
