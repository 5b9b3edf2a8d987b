package fundRoutes

import (
	fundController "github.com/Teja3804/asset-reddy/controllers/funds"
	"github.com/Teja3804/asset-reddy/middleware"
	walletValidator "github.com/Teja3804/asset-reddy/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupFundRoutes(app *fiber.App) {
	fundGroup := app.Group("/api")

	// The catalog is public; positions and investing require a token
	fundGroup.Get("/funds", fundController.FundList)
	fundGroup.Get("/user-investments", middleware.JWTMiddleware, fundController.UserInvestments)
	fundGroup.Post("/invest", walletValidator.Invest(), middleware.JWTMiddleware, fundController.Invest)
}
