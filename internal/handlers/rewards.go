package handlers

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/Davidkingreuben/Dreamcoach/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetMomentum returns the recomputed momentum series and its average.
func (h *Handler) GetMomentum(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	checkins, err := h.store.CheckIns(dream.ID)
	if err != nil {
		return h.internalError(c, err)
	}
	graceDays, err := h.store.GraceDays(dream.ID)
	if err != nil {
		return h.internalError(c, err)
	}
	points := services.MomentumPoints(checkins, graceDays)
	return c.JSON(fiber.Map{
		"points":  points,
		"average": services.AverageMomentum(points),
	})
}

// ListBadges returns the badges earned so far, in earn order.
func (h *Handler) ListBadges(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	badges, err := h.store.Badges(dream.ID)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{"badges": badges})
}

// GetXP returns the running total together with the full ledger.
func (h *Handler) GetXP(c *fiber.Ctx) error {
	dream, err := h.dreamFromParam(c)
	if dream == nil {
		return err
	}
	xp, err := h.store.DreamXP(dream.ID)
	if err != nil {
		return h.internalError(c, err)
	}
	history, err := h.store.XPEvents(dream.ID)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(models.DreamXPView{
		DreamID: dream.ID,
		Total:   xp.Total,
		History: history,
	})
}
