package handlers

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/Davidkingreuben/Dreamcoach/internal/services"
	"github.com/Davidkingreuben/Dreamcoach/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler carries the request-scoped dependencies for all routes.
type Handler struct {
	store *store.Store
	coach *services.Coach
	log   *zap.Logger
}

func New(st *store.Store, coach *services.Coach, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: st, coach: coach, log: log}
}

func (h *Handler) internalError(c *fiber.Ctx, err error) error {
	h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Something went wrong",
	})
}

// dreamFromParam resolves :id to a dream. On failure the response is already
// written and the returned dream is nil; the caller returns the error as-is.
func (h *Handler) dreamFromParam(c *fiber.Ctx) (*models.Dream, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid dream ID",
		})
	}
	dream, err := h.store.Dream(id)
	if err != nil {
		return nil, h.internalError(c, err)
	}
	if dream == nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Dream not found",
		})
	}
	return dream, nil
}

// teamFromParam resolves :id to a team, same contract as dreamFromParam.
func (h *Handler) teamFromParam(c *fiber.Ctx) (*models.DreamTeam, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid team ID",
		})
	}
	team, err := h.store.Team(id)
	if err != nil {
		return nil, h.internalError(c, err)
	}
	if team == nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Team not found",
		})
	}
	return team, nil
}
