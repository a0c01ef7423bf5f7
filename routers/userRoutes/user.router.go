package userRoutes

import (
	userControllers "synapse/controllers/userControllers"
	"synapse/middleware"
	userValidators "synapse/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/users")
	users.Post("/sync", userValidators.SyncUser(), middleware.JWTMiddleware, userControllers.SyncUser)
	users.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)

	user := app.Group("/user")
	user.Get("/credits", middleware.JWTMiddleware, userControllers.GetCredits)
}
