package handlers

import (
	"errors"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/Davidkingreuben/Dreamcoach/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetWeekly returns saved summaries plus the currently due week, if any.
func (h *Handler) GetWeekly(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	summaries, err := h.store.WeeklySummaries(dream.ID)
	if err != nil {
		return h.internalError(c, err)
	}
	due, err := h.coach.DueWeeklySummary(dream)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{
		"summaries": summaries,
		"due":       due,
	})
}

// SaveWeekly materializes the due week and grants the weekly token.
func (h *Handler) SaveWeekly(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}

	var req models.SaveWeeklyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	summary, err := h.coach.SaveWeeklySummary(dream, req)
	if err != nil {
		if errors.Is(err, services.ErrNoWeeklyDue) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "No weekly summary is due",
			})
		}
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}
