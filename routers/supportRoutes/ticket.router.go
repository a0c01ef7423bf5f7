package supportRoutes

import (
	supportControllers "synapse/controllers/support"
	"synapse/middleware"
	supportValidators "synapse/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/support")

	support.Post("/tickets", supportValidators.CreateTicket(), middleware.JWTMiddleware, supportControllers.CreateTicket)
	support.Get("/tickets", supportValidators.TicketList(), middleware.JWTMiddleware, supportControllers.TicketList)
	support.Get("/tickets/:id", middleware.JWTMiddleware, supportControllers.GetTicket)
	support.Post("/tickets/:id/responses", supportValidators.TicketReply(), middleware.JWTMiddleware, supportControllers.ReplyTicket)
}
