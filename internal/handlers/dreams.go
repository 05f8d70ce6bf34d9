package handlers

import (
	"errors"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/Davidkingreuben/Dreamcoach/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CreateDream runs the full assessment and returns the dream with its derived
// archetype, classification, micro-steps and insight.
func (h *Handler) CreateDream(c *fiber.Ctx) error {
	var req models.AssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	dream, err := h.coach.CreateDreamFromAssessment(req)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Dream title is required",
			})
		}
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dream)
}

// ListDreams returns all dreams, newest first.
func (h *Handler) ListDreams(c *fiber.Ctx) error {
	dreams, err := h.store.Dreams()
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{"dreams": dreams})
}

// GetDream returns one dream with everything pinned at assessment time.
func (h *Handler) GetDream(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	return c.JSON(dream)
}

// DeleteDream soft-deletes a dream.
func (h *Handler) DeleteDream(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	if err := h.store.DeleteDream(dream.ID); err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Dream deleted"})
}

// ReleaseDream closes a dream with its three-part reflection.
func (h *Handler) ReleaseDream(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	if dream.Status == models.StatusReleased {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Dream is already released",
		})
	}

	var req models.ReleaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.coach.ReleaseDream(dream, req); err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(dream)
}
