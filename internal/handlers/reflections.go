package handlers

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/gofiber/fiber/v2"
)

// ListReflections returns the legacy pre-dream reflection records.
func (h *Handler) ListReflections(c *fiber.Ctx) error {
	reflections, err := h.store.LegacyCheckIns()
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{"reflections": reflections})
}

// CreateReflection appends a legacy reflection record.
func (h *Handler) CreateReflection(c *fiber.Ctx) error {
	var reflection models.LegacyCheckIn
	if err := c.BodyParser(&reflection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.store.CreateLegacyCheckIn(&reflection); err != nil {
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reflection)
}
