package main

import (
	"context"
	"log"
	"time"

	"synapse/config"
	"synapse/database"
	adminRoutes "synapse/routers/adminRoutes"
	generatorRoutes "synapse/routers/generatorRoutes"
	historyRoutes "synapse/routers/historyRoutes"
	supportRoutes "synapse/routers/supportRoutes"
	userRoutes "synapse/routers/userRoutes"
	"synapse/services"
	"synapse/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	generator, err := services.NewGeminiClient(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize content generator: %v", err)
	}
	services.Generator = generator

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	startedAt := time.Now()
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(startedAt).String(),
		})
	})

	userRoutes.SetupUserRoutes(app)
	generatorRoutes.SetupGeneratorRoutes(app)
	historyRoutes.SetupHistoryRoutes(app)
	supportRoutes.SetupSupportRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.StartKeepAlive()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
