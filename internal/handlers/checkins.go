package handlers

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/gofiber/fiber/v2"
)

// SubmitCheckIn records today's check-in and returns the reward pass result.
func (h *Handler) SubmitCheckIn(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	if dream.Status == models.StatusReleased {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Released dreams cannot be checked in",
		})
	}

	var req models.SubmitCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.coach.SubmitCheckIn(dream, req)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(result)
}

// ListCheckIns returns the dream's full check-in history, oldest first.
func (h *Handler) ListCheckIns(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	checkins, err := h.store.CheckIns(dream.ID)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{"checkins": checkins})
}

// GetCoachState returns the daily coach screen in one read. Loading the
// screen is also when a pending grace day gets applied.
func (h *Handler) GetCoachState(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	state, err := h.coach.State(dream)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(state)
}
