package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ListEvents returns the most recent observability log entries.
func (h *Handler) ListEvents(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	events, err := h.store.Events(limit)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{"events": events})
}
