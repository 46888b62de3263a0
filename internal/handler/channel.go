package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/radhakrishnanganapathy/YTAnalyis/internal/middleware"
	"github.com/radhakrishnanganapathy/YTAnalyis/internal/service"
)

type ChannelHandler struct {
	svc        *service.ChannelService
	categories *service.CategoryService
}

func NewChannelHandler(svc *service.ChannelService, categories *service.CategoryService) *ChannelHandler {
	return &ChannelHandler{svc: svc, categories: categories}
}

// List handles GET /api/channels?category=X
func (h *ChannelHandler) List(c fiber.Ctx) error {
	category := fiber.Query[string](c, "category")
	if category != "" {
		validated, errMsg := middleware.ValidateCategory(category)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		ok, err := h.categories.Valid(c.Context(), validated)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify category")
		}
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "Unknown category")
		}
		category = validated
	}

	channels, err := h.svc.List(c.Context(), category)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list channels")
	}
	return c.JSON(channels)
}

// Delete handles DELETE /api/channels/:channelId
func (h *ChannelHandler) Delete(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateChannelID(c.Params("channelId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), channelID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Channel not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete channel")
	}
	return c.JSON(fiber.Map{"deleted": channelID})
}
