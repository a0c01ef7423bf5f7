package adminRoutes

import (
	adminControllers "synapse/controllers/admin"
	"synapse/middleware"
	adminValidators "synapse/validators/admin"
	supportValidators "synapse/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	admin.Get("/stats", adminControllers.GetStats)
	admin.Get("/users", adminValidators.UsersList(), adminControllers.GetUsers)
	admin.Put("/users/:id/credits", adminValidators.UpdateCredits(), adminControllers.UpdateUserCredits)

	admin.Get("/tickets", adminValidators.TicketList(), adminControllers.GetTickets)
	admin.Put("/tickets/:id", adminValidators.UpdateTicket(), adminControllers.UpdateTicket)
	admin.Post("/tickets/:id/responses", supportValidators.TicketReply(), adminControllers.ReplyTicket)
}
