package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rupakcs/socialsync/internal/models"
	"github.com/rupakcs/socialsync/internal/repository"
)

type AnalyticsHandler struct {
	an repository.AnalyticsRepository
}

func NewAnalyticsHandler(an repository.AnalyticsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{an: an}
}

func (h *AnalyticsHandler) ListAnalytics(c *fiber.Ctx) error {
	snapshots, err := h.an.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list analytics",
		})
	}

	return c.JSON(snapshots)
}

func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	platform := c.Params("platform")
	if !models.IsSupportedPlatform(platform) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported platform",
		})
	}

	snapshot, found, err := h.an.GetByPlatform(c.Context(), platform)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to get analytics",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No analytics for platform",
		})
	}

	return c.JSON(snapshot)
}
