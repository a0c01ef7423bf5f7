package historyRoutes

import (
	historyControllers "synapse/controllers/history"
	"synapse/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupHistoryRoutes(app *fiber.App) {
	history := app.Group("/history")

	history.Get("/", middleware.JWTMiddleware, historyControllers.GetHistory)
	history.Get("/:id", middleware.JWTMiddleware, historyControllers.GetHistoryByID)
	history.Delete("/:id", middleware.JWTMiddleware, historyControllers.DeleteHistoryByID)
}
