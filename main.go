package main

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/config"
	"github.com/Davidkingreuben/Dreamcoach/internal/database"
	"github.com/Davidkingreuben/Dreamcoach/internal/handlers"
	"github.com/Davidkingreuben/Dreamcoach/internal/logger"
	"github.com/Davidkingreuben/Dreamcoach/internal/middleware"
	"github.com/Davidkingreuben/Dreamcoach/internal/routes"
	"github.com/Davidkingreuben/Dreamcoach/internal/services"
	"github.com/Davidkingreuben/Dreamcoach/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	st := store.New(db)
	coach := services.NewCoach(st, log)
	h := handlers.New(st, coach, log)

	app := fiber.New(fiber.Config{
		AppName: "Dreamcoach",
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(log))

	routes.Setup(app, h)

	log.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
