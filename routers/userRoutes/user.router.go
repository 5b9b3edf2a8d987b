package userRoutes

import (
	userController "github.com/Teja3804/asset-reddy/controllers/user"
	"github.com/Teja3804/asset-reddy/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api")

	userGroup.Get("/profile", middleware.JWTMiddleware, userController.Profile)
}
