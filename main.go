package main

import (
	"log"

	"github.com/Teja3804/asset-reddy/config"
	"github.com/Teja3804/asset-reddy/database"
	authRoutes "github.com/Teja3804/asset-reddy/routers/authRoutes"
	fundRoutes "github.com/Teja3804/asset-reddy/routers/fundRoutes"
	supportRoutes "github.com/Teja3804/asset-reddy/routers/supportRoutes"
	userRoutes "github.com/Teja3804/asset-reddy/routers/userRoutes"
	walletRoutes "github.com/Teja3804/asset-reddy/routers/walletRoutes"
	"github.com/Teja3804/asset-reddy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	fundRoutes.SetupFundRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	utils.StartOtpCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
