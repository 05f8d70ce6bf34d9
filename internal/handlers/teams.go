package handlers

import (
	"errors"
	"time"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/Davidkingreuben/Dreamcoach/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ListTeams returns all teams with members preloaded.
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.store.Teams()
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{"teams": teams})
}

// CreateTeam allocates a join code and registers the creator.
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var req models.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Team name is required",
		})
	}

	team, err := h.coach.CreateTeam(req)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

// GetTeam returns one team with its members.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.teamFromParam(c)
	if team == nil {
		return err
	}
	return c.JSON(team)
}

// JoinTeam adds a member to the team behind a join code.
func (h *Handler) JoinTeam(c *fiber.Ctx) error {
	var req models.JoinTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Join code is required",
		})
	}

	team, err := h.coach.JoinTeam(req)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No team with that code",
			})
		}
		return h.internalError(c, err)
	}
	return c.JSON(team)
}

// SendSignal appends today's broadcast to the team's signal log.
func (h *Handler) SendSignal(c *fiber.Ctx) error {
	team, err := h.teamFromParam(c)
	if team == nil {
		return err
	}

	var req models.SignalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	signal, err := h.coach.SendSignal(team, req)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(signal)
}

// ListSignals returns today's board (one signal per member, latest wins) or
// the raw log when ?all=true.
func (h *Handler) ListSignals(c *fiber.Ctx) error {
	team, err := h.teamFromParam(c)
	if team == nil {
		return err
	}

	if c.Query("all") == "true" {
		signals, err := h.store.TeamSignals(team.ID)
		if err != nil {
			return h.internalError(c, err)
		}
		return c.JSON(fiber.Map{"signals": signals})
	}

	date := c.Query("date")
	if date == "" {
		date = services.Today(time.Now())
	}
	signals, err := h.store.SignalsForDate(team.ID, date)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{"signals": signals, "date": date})
}

// PingTeam nudges the circle.
func (h *Handler) PingTeam(c *fiber.Ctx) error {
	team, err := h.teamFromParam(c)
	if team == nil {
		return err
	}
	if err := h.coach.PingTeam(team); err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Ping sent"})
}
