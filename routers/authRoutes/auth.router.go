package authRoutes

import (
	authControllers "github.com/Teja3804/asset-reddy/controllers/auth"
	"github.com/Teja3804/asset-reddy/middleware"
	authValidators "github.com/Teja3804/asset-reddy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/send-email-otp", authValidators.SendEmailOTP(), authControllers.SendEmailOTP)
	authGroup.Post("/verify-email-otp", authValidators.VerifyEmailOTP(), authControllers.VerifyEmailOTP)
	authGroup.Post("/send-phone-otp", authValidators.SendPhoneOTP(), authControllers.SendPhoneOTP)
	authGroup.Post("/verify-phone-otp", authValidators.VerifyPhoneOTP(), authControllers.VerifyPhoneOTP)
	authGroup.Get("/login-history", middleware.JWTMiddleware, authControllers.LoginHistoryList)
}
