package walletRoutes

import (
	walletController "github.com/Teja3804/asset-reddy/controllers/wallet"
	"github.com/Teja3804/asset-reddy/middleware"
	walletValidator "github.com/Teja3804/asset-reddy/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/api")

	walletGroup.Get("/available-funds", middleware.JWTMiddleware, walletController.AvailableFunds)
	walletGroup.Post("/add-funds", walletValidator.Amount(), middleware.JWTMiddleware, walletController.AddFunds)
	walletGroup.Post("/withdraw", walletValidator.Amount(), middleware.JWTMiddleware, walletController.Withdraw)
	walletGroup.Get("/transactions", middleware.JWTMiddleware, walletController.TransactionHistory)
}
