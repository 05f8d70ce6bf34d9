package routes

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/handlers"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	dreams := api.Group("/dreams")
	dreams.Post("/", h.CreateDream)
	dreams.Get("/", h.ListDreams)
	dreams.Get("/:id", h.GetDream)
	dreams.Delete("/:id", h.DeleteDream)
	dreams.Post("/:id/release", h.ReleaseDream)

	dreams.Get("/:id/coach", h.GetCoachState)
	dreams.Post("/:id/checkins", h.SubmitCheckIn)
	dreams.Get("/:id/checkins", h.ListCheckIns)
	dreams.Get("/:id/momentum", h.GetMomentum)
	dreams.Get("/:id/badges", h.ListBadges)
	dreams.Get("/:id/xp", h.GetXP)
	dreams.Get("/:id/weekly", h.GetWeekly)
	dreams.Post("/:id/weekly", h.SaveWeekly)

	teams := api.Group("/teams")
	teams.Get("/", h.ListTeams)
	teams.Post("/", h.CreateTeam)
	teams.Post("/join", h.JoinTeam)
	teams.Get("/:id", h.GetTeam)
	teams.Post("/:id/signals", h.SendSignal)
	teams.Get("/:id/signals", h.ListSignals)
	teams.Post("/:id/ping", h.PingTeam)

	api.Get("/events", h.ListEvents)

	api.Get("/reflections", h.ListReflections)
	api.Post("/reflections", h.CreateReflection)
}
