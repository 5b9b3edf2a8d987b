package supportRoutes

import (
	controller "github.com/Teja3804/asset-reddy/controllers/support"
	"github.com/Teja3804/asset-reddy/middleware"
	validator "github.com/Teja3804/asset-reddy/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/api")

	support.Post("/support", validator.CreateSupportTicket(), middleware.JWTMiddleware, controller.CreateSupportTicket)
	support.Get("/support", middleware.JWTMiddleware, controller.TicketList)
}
